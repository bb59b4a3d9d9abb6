package logger

import (
	"fmt"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/logging"
	"github.com/google/uuid"

	"github.com/pajkicdj/POC-user-product-flow/common"
)

// Logger stores the needed functionality to print a log.
type Logger struct {
	trace    string
	started  time.Time
	severity logging.Severity
	labels   map[string]string
}

func newDefaultLogger() *Logger {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")

	return &Logger{
		started: time.Now(),
		trace:   getTrace(id),
		labels:  make(map[string]string),
	}
}

// Trace returns the trace stored in logger.
func (l *Logger) Trace() string {
	return l.trace
}

// SetLabel allows to optionally specify key/value labels for log entry.
func (l *Logger) SetLabel(key, value string) {
	l.labels[key] = value
}

// SetLabels allows to optionally add additional labels for log entry.
func (l *Logger) SetLabels(labels map[string]string) {
	for key, value := range labels {
		l.SetLabel(key, value)
	}
}

// End writes the summarized run entry to the parent log.
func (l *Logger) End() {
	msg := fmt.Sprintf("run finished in %s", time.Since(l.started).Round(time.Millisecond))

	if !cloudLogging || parentLogger == nil {
		echo(l.severity, msg)
		return
	}

	parentLogger.Log(logging.Entry{
		Payload:  msg,
		Trace:    l.trace,
		Severity: l.severity,
		Labels:   l.labels,
		Resource: resource,
	})
}

func logEntry(s logging.Severity, l *Logger, msg string) {
	if s > l.severity {
		l.severity = s
	}

	if cloudLogging && childLogger != nil {
		childLogger.Log(logging.Entry{
			Payload:  msg,
			Severity: s,
			Trace:    l.trace,
			Labels:   l.labels,
			Resource: resource,
		})
	}

	if !cloudLogging || common.IsLocalhost {
		echo(s, msg)
	}
}

func echo(s logging.Severity, msg string) {
	log.Printf("[%s] %s\n", strings.ToLower(s.String()), msg)
}

func (l *Logger) Debug(v ...interface{}) {
	logEntry(logging.Debug, l, fmt.Sprint(v...))
}

func (l *Logger) Info(v ...interface{}) {
	logEntry(logging.Info, l, fmt.Sprint(v...))
}

func (l *Logger) Warning(v ...interface{}) {
	logEntry(logging.Warning, l, fmt.Sprint(v...))
}

func (l *Logger) Error(v ...interface{}) {
	logEntry(logging.Error, l, fmt.Sprint(v...))
}

func (l *Logger) Fatal(v ...interface{}) {
	logEntry(logging.Critical, l, fmt.Sprint(v...))
	panic(fmt.Sprint(v...))
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	logEntry(logging.Debug, l, fmt.Sprintf(format, v...))
}

func (l *Logger) Infof(format string, v ...interface{}) {
	logEntry(logging.Info, l, fmt.Sprintf(format, v...))
}

func (l *Logger) Warningf(format string, v ...interface{}) {
	logEntry(logging.Warning, l, fmt.Sprintf(format, v...))
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	logEntry(logging.Error, l, fmt.Sprintf(format, v...))
}

func (l *Logger) Fatalf(format string, v ...interface{}) {
	logEntry(logging.Critical, l, fmt.Sprintf(format, v...))
	panic(fmt.Sprintf(format, v...))
}
