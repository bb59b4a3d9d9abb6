package service

import (
	"context"
	"path/filepath"
	"time"

	"google.golang.org/api/analyticsreporting/v4"

	"github.com/pajkicdj/POC-user-product-flow/analytics/config"
	"github.com/pajkicdj/POC-user-product-flow/analytics/dal"
	"github.com/pajkicdj/POC-user-product-flow/analytics/schema"
	"github.com/pajkicdj/POC-user-product-flow/logger"
)

type ExportService struct {
	loggerProvider logger.Provider
	cfg            config.Config
	client         dal.ReportClient
	writer         dal.RowWriter
	archive        dal.Archive
	flattener      *Flattener
}

func NewExportService(ctx context.Context, log logger.Provider, cfg config.Config) (*ExportService, error) {
	client, err := dal.NewReportingClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var archive dal.Archive
	if cfg.Bucket != "" {
		archive = dal.NewGCSArchive(cfg.Bucket)
	}

	return &ExportService{
		loggerProvider: log,
		cfg:            cfg,
		client:         client,
		writer:         dal.NewCSVFileWriter(),
		archive:        archive,
		flattener:      NewFlattener(log, schema.Default()),
	}, nil
}

// Run requests yesterday..today's report, writes it as CSV and returns the file path.
// Nothing is written unless the whole response was fetched and flattened.
func (s *ExportService) Run(ctx context.Context, now time.Time) (string, error) {
	l := s.loggerProvider(ctx)

	req := BuildRequest(s.cfg, now)
	path := filepath.Join(s.cfg.OutputDir, req.DateRange.FileName())

	l.SetLabels(map[string]string{
		"view_id": req.ViewID,
		"file":    filepath.Base(path),
	})

	l.Infof("requesting report for view %s from %s to %s", req.ViewID, req.DateRange.Start, req.DateRange.End)

	res, err := s.client.BatchGet(ctx, req.ToAPI())
	if err != nil {
		return "", err
	}

	if s.cfg.PrintResponse {
		printResponse(l, res)
	}

	rows, err := s.flattener.Flatten(ctx, res)
	if err != nil {
		return "", err
	}

	if err := s.writer.WriteRows(path, rows); err != nil {
		return "", err
	}

	l.Infof("wrote %d rows to %s", len(rows), path)

	if s.archive != nil {
		uri, err := s.archive.Upload(ctx, path)
		if err != nil {
			return "", err
		}

		l.Infof("archived %s", uri)
	}

	return path, nil
}

// printResponse dumps every returned value as "field: value" lines.
func printResponse(l logger.ILogger, res *analyticsreporting.GetReportsResponse) {
	for _, report := range res.Reports {
		if report == nil || report.Data == nil {
			continue
		}

		dimensionHeaders, metricHeaders := headersOf(report)

		for _, row := range report.Data.Rows {
			if row == nil {
				continue
			}

			for i := 0; i < min(len(dimensionHeaders), len(row.Dimensions)); i++ {
				l.Debugf("%s: %s", dimensionHeaders[i], row.Dimensions[i])
			}

			for rangeIndex, values := range row.Metrics {
				if values == nil {
					continue
				}

				l.Debugf("Date range: %d", rangeIndex)

				for i := 0; i < min(len(metricHeaders), len(values.Values)); i++ {
					l.Debugf("%s: %s", metricHeaders[i], values.Values[i])
				}
			}
		}
	}
}
