package dal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/analyticsreporting/v4"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/pajkicdj/POC-user-product-flow/analytics/config"
	"github.com/pajkicdj/POC-user-product-flow/analytics/domain"
	"github.com/pajkicdj/POC-user-product-flow/secretmanager"
)

type reportingClient struct {
	reports *analyticsreporting.ReportsService
}

// NewReportingClient authenticates with the configured service account key and
// returns a client for the Analytics Reporting API v4.
func NewReportingClient(ctx context.Context, cfg config.Config) (ReportClient, error) {
	key, err := loadKey(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return NewReportingClientFromKey(ctx, key, cfg.Scopes...)
}

// NewReportingClientFromKey builds the client from raw service account JSON.
func NewReportingClientFromKey(ctx context.Context, key []byte, scopes ...string) (ReportClient, error) {
	serviceConfig, err := google.JWTConfigFromJSON(key, scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid service account key: %w", domain.ErrAuth, err)
	}

	c, err := newReportingClient(ctx, option.WithHTTPClient(serviceConfig.Client(ctx)))
	if err != nil {
		return nil, err
	}

	return c, nil
}

func newReportingClient(ctx context.Context, opts ...option.ClientOption) (*reportingClient, error) {
	svc, err := analyticsreporting.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAuth, err)
	}

	return &reportingClient{reports: svc.Reports}, nil
}

func loadKey(ctx context.Context, cfg config.Config) ([]byte, error) {
	if cfg.KeySecret != "" {
		key, err := secretmanager.AccessSecretLatestVersion(ctx, secretmanager.SecretName(cfg.KeySecret))
		if err != nil {
			return nil, fmt.Errorf("%w: could not access secret %s: %w", domain.ErrAuth, cfg.KeySecret, err)
		}

		return key, nil
	}

	key, err := os.ReadFile(cfg.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read key file: %w", domain.ErrAuth, err)
	}

	return key, nil
}

func (c *reportingClient) BatchGet(ctx context.Context, req *analyticsreporting.GetReportsRequest) (*analyticsreporting.GetReportsResponse, error) {
	res, err := c.reports.BatchGet(req).Context(ctx).Do()
	if err != nil {
		return nil, classify(err)
	}

	return res, nil
}

// classify maps credential exchange and permission failures to ErrAuth and
// everything else to ErrTransport.
func classify(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return fmt.Errorf("%w: %w", domain.ErrAuth, err)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %w", domain.ErrAuth, err)
		}
	}

	return fmt.Errorf("%w: %w", domain.ErrTransport, err)
}
