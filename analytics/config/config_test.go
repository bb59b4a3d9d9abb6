package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvWithoutOverridesIsDefault(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "131733103", cfg.ViewID)
	assert.Equal(t, "./client_secrets.json", cfg.KeyFile)
	assert.Equal(t, []string{AnalyticsReadonlyScope}, cfg.Scopes)
	assert.Len(t, cfg.Dimensions, 2)
	assert.Len(t, cfg.Metrics, 5)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv(envViewID, " 42 ")
	t.Setenv(envKeySecret, "ga-key")
	t.Setenv(envOutputDir, "/tmp/exports")
	t.Setenv(envBucket, "exports-bucket")
	t.Setenv(envPrintResponse, "true")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "42", cfg.ViewID)
	assert.Equal(t, "ga-key", cfg.KeySecret)
	assert.Equal(t, "/tmp/exports", cfg.OutputDir)
	assert.Equal(t, "exports-bucket", cfg.Bucket)
	assert.True(t, cfg.PrintResponse)
}

func TestFromEnvInvalidBool(t *testing.T) {
	t.Setenv(envPrintResponse, "maybe")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{
			name:   "default is valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing view",
			mutate:  func(c *Config) { c.ViewID = "" },
			wantErr: ErrMissingViewID,
		},
		{
			name:    "no metrics",
			mutate:  func(c *Config) { c.Metrics = nil },
			wantErr: ErrMissingFields,
		},
		{
			name:    "no credentials",
			mutate:  func(c *Config) { c.KeyFile = "" },
			wantErr: ErrMissingCredential,
		},
		{
			name: "secret only",
			mutate: func(c *Config) {
				c.KeyFile = ""
				c.KeySecret = "ga-key"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			assert.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}
