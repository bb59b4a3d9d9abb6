package common

import (
	"os"
)

var (
	ProjectID string

	// ServiceName and ServiceVersion label log entries and error reports
	ServiceName string

	ServiceVersion string

	Env string

	// Production flag indicating if the export runs against the production project
	Production bool

	// IsLocalhost flag indicating if the export runs outside of a managed GCP runtime
	IsLocalhost bool
)

const (
	productionEnv = "production"

	defaultServiceName = "analytics-export"
)

func initEnvVariables() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "")
	ServiceName = GetEnv("K_SERVICE", GetEnv("GAE_SERVICE", defaultServiceName))
	ServiceVersion = GetEnv("K_REVISION", GetEnv("GAE_VERSION", "localhost"))

	_, onCloudRun := os.LookupEnv("K_SERVICE")
	_, onAppEngine := os.LookupEnv("GAE_ENV")
	IsLocalhost = !onCloudRun && !onAppEngine

	Env = GetEnv("ENV", "development")
	Production = Env == productionEnv && ProjectID != ""
}

func init() {
	initEnvVariables()
}

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
