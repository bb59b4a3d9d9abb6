package logger

import (
	"context"
	"fmt"
	"strconv"

	"cloud.google.com/go/logging"
	"google.golang.org/genproto/googleapis/api/monitoredres"

	"github.com/pajkicdj/POC-user-product-flow/common"
)

type ctxKey string

const (
	// ctxLoggerKey is how the run logger is stored/retrieved.
	ctxLoggerKey ctxKey = "app-logger"

	// parentLogID is the name of the log for run summaries.
	parentLogID = "parent_logger"

	// childLogID is the name of the log for individual entries.
	childLogID = "child_logger"

	// labels keys for monitored resource definition
	serviceNameField = "service_name"
	projectIDField   = "project_id"
	revisionField    = "revision_name"

	cloudRunJobType = "cloud_run_revision"

	gcpLogging = "GCP_LOGGING"
)

var (
	parentLogger *logging.Logger
	childLogger  *logging.Logger
	resource     *monitoredres.MonitoredResource
	cloudLogging bool
)

type Provider func(ctx context.Context) ILogger

type Logging struct {
	client *logging.Client
}

// NewLogging initializes parent & child google cloud logging clients.
// Cloud logging stays disabled when no project is configured or when running on
// localhost, unless GCP_LOGGING says otherwise.
func NewLogging(ctx context.Context) (*Logging, error) {
	enabled := !common.IsLocalhost && common.ProjectID != ""

	enabled, err := strconv.ParseBool(common.GetEnv(gcpLogging, strconv.FormatBool(enabled)))
	if err != nil {
		return nil, err
	}

	if !enabled || common.ProjectID == "" {
		cloudLogging = false
		return &Logging{}, nil
	}

	client, err := logging.NewClient(ctx, common.ProjectID)
	if err != nil {
		return nil, err
	}

	parentLogger = client.Logger(parentLogID)
	childLogger = client.Logger(childLogID)
	cloudLogging = true

	resource = &monitoredres.MonitoredResource{
		Labels: map[string]string{
			serviceNameField: common.ServiceName,
			projectIDField:   common.ProjectID,
			revisionField:    common.ServiceVersion,
		},
		Type: cloudRunJobType,
	}

	return &Logging{client: client}, nil
}

// Logger returns the logger that was stored inside the context.
func (l *Logging) Logger(ctx context.Context) ILogger {
	return FromContext(ctx)
}

// Close flushes pending entries to cloud logging.
func (l *Logging) Close() error {
	if l == nil || l.client == nil {
		return nil
	}

	return l.client.Close()
}

// NewLogger returns a child context carrying a new run logger.
func NewLogger(ctx context.Context) (context.Context, *Logger) {
	l := newDefaultLogger()

	return context.WithValue(ctx, ctxLoggerKey, l), l
}

// FromContext returns the logger that was stored in context.
// If there isn't logger stored, returns a new logger.
func FromContext(ctx context.Context) ILogger {
	if l, ok := ctx.Value(ctxLoggerKey).(*Logger); ok {
		return l
	}

	return newDefaultLogger()
}

func getTrace(id string) string {
	return fmt.Sprintf("projects/%s/traces/%s", common.ProjectID, id)
}
