package config

import (
	"errors"
	"strconv"
	"strings"

	"github.com/pajkicdj/POC-user-product-flow/common"
)

const (
	DefaultViewID  = "131733103"
	DefaultKeyFile = "./client_secrets.json"

	AnalyticsReadonlyScope = "https://www.googleapis.com/auth/analytics.readonly"
)

const (
	envViewID        = "GA_VIEW_ID"
	envKeyFile       = "GA_KEY_FILE"
	envKeySecret     = "GA_KEY_SECRET"
	envOutputDir     = "EXPORT_DIR"
	envBucket        = "EXPORT_BUCKET"
	envPrintResponse = "GA_PRINT_RESPONSE"
)

var (
	ErrMissingViewID     = errors.New("view id is required")
	ErrMissingFields     = errors.New("at least one dimension and one metric are required")
	ErrMissingCredential = errors.New("either a key file or a key secret is required")
)

// Config holds everything one export run needs to know.
type Config struct {
	ViewID string

	// KeyFile is the service account key path. KeySecret, when set, takes precedence
	// and names a Secret Manager secret holding the same JSON key.
	KeyFile   string
	KeySecret string
	Scopes    []string

	Dimensions []string
	Metrics    []string

	OutputDir string
	Bucket    string

	PrintResponse bool
}

// Default returns the fixed product funnel export.
func Default() Config {
	return Config{
		ViewID:  DefaultViewID,
		KeyFile: DefaultKeyFile,
		Scopes:  []string{AnalyticsReadonlyScope},
		Dimensions: []string{
			"ga:productSku",
			"ga:dimension1",
		},
		Metrics: []string{
			"ga:productDetailViews",
			"ga:metric2",
			"ga:productAddsToCart",
			"ga:productCheckouts",
			"ga:productRemovesFromCart",
		},
		OutputDir: ".",
	}
}

// FromEnv returns Default with any environment overrides applied.
func FromEnv() (Config, error) {
	cfg := Default()

	cfg.ViewID = strings.TrimSpace(common.GetEnv(envViewID, cfg.ViewID))
	cfg.KeyFile = common.GetEnv(envKeyFile, cfg.KeyFile)
	cfg.KeySecret = common.GetEnv(envKeySecret, cfg.KeySecret)
	cfg.OutputDir = common.GetEnv(envOutputDir, cfg.OutputDir)
	cfg.Bucket = common.GetEnv(envBucket, cfg.Bucket)

	printResponse, err := strconv.ParseBool(common.GetEnv(envPrintResponse, strconv.FormatBool(cfg.PrintResponse)))
	if err != nil {
		return Config{}, err
	}

	cfg.PrintResponse = printResponse

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.ViewID == "" {
		return ErrMissingViewID
	}

	if len(c.Dimensions) == 0 || len(c.Metrics) == 0 {
		return ErrMissingFields
	}

	if c.KeyFile == "" && c.KeySecret == "" {
		return ErrMissingCredential
	}

	return nil
}
