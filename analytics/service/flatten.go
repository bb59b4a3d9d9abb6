package service

import (
	"context"
	"fmt"

	"google.golang.org/api/analyticsreporting/v4"

	"github.com/pajkicdj/POC-user-product-flow/analytics/domain"
	"github.com/pajkicdj/POC-user-product-flow/analytics/schema"
	"github.com/pajkicdj/POC-user-product-flow/logger"
)

// skipColumn marks a returned field that has no output column.
const skipColumn = -1

// Flattener turns a columnar report response into schema aligned rows.
//
// Fields the schema does not know are skipped with a warning, unless Strict is set,
// in which case they fail with domain.ErrUnknownField. When a row carries values for
// more than one date range, later ranges overwrite earlier ones.
type Flattener struct {
	loggerProvider logger.Provider
	schema         *schema.Schema
	Strict         bool
}

func NewFlattener(log logger.Provider, s *schema.Schema) *Flattener {
	return &Flattener{
		loggerProvider: log,
		schema:         s,
	}
}

// Flatten returns, per report, one header row followed by one row per data row.
func (f *Flattener) Flatten(ctx context.Context, res *analyticsreporting.GetReportsResponse) ([]domain.Row, error) {
	if res == nil {
		return nil, nil
	}

	var rows []domain.Row

	for reportIndex, report := range res.Reports {
		if report == nil {
			continue
		}

		dimensionHeaders, metricHeaders := headersOf(report)

		dimensionColumns, err := f.columns(ctx, dimensionHeaders)
		if err != nil {
			return nil, fmt.Errorf("report %d: %w", reportIndex, err)
		}

		metricColumns, err := f.columns(ctx, metricHeaders)
		if err != nil {
			return nil, fmt.Errorf("report %d: %w", reportIndex, err)
		}

		header := domain.NewRow(f.schema.Width())
		fill(header, dimensionColumns, labelsOf(f.schema, dimensionHeaders))
		fill(header, metricColumns, labelsOf(f.schema, metricHeaders))

		rows = append(rows, header)

		if report.Data == nil {
			continue
		}

		for rowIndex, reportRow := range report.Data.Rows {
			if reportRow == nil {
				continue
			}

			row := domain.NewRow(f.schema.Width())

			if len(reportRow.Dimensions) != len(dimensionColumns) {
				return nil, fmt.Errorf("%w: report %d row %d has %d dimension values for %d headers",
					domain.ErrMalformedResponse, reportIndex, rowIndex, len(reportRow.Dimensions), len(dimensionColumns))
			}

			fill(row, dimensionColumns, reportRow.Dimensions)

			for rangeIndex, values := range reportRow.Metrics {
				if values == nil {
					continue
				}

				if len(values.Values) != len(metricColumns) {
					return nil, fmt.Errorf("%w: report %d row %d date range %d has %d metric values for %d headers",
						domain.ErrMalformedResponse, reportIndex, rowIndex, rangeIndex, len(values.Values), len(metricColumns))
				}

				fill(row, metricColumns, values.Values)
			}

			rows = append(rows, row)
		}
	}

	return rows, nil
}

// columns resolves returned field ids to output column indexes.
func (f *Flattener) columns(ctx context.Context, ids []string) ([]int, error) {
	columns := make([]int, len(ids))

	for i, id := range ids {
		index, err := f.schema.IndexOf(id)
		if err != nil {
			if f.Strict {
				return nil, err
			}

			f.loggerProvider(ctx).Warningf("skipping field %s: no output column", id)

			index = skipColumn
		}

		columns[i] = index
	}

	return columns, nil
}

func fill(row domain.Row, columns []int, values []string) {
	for i, column := range columns {
		if column == skipColumn {
			continue
		}

		row[column] = values[i]
	}
}

func headersOf(report *analyticsreporting.Report) (dimensions []string, metrics []string) {
	if report.ColumnHeader == nil {
		return nil, nil
	}

	dimensions = report.ColumnHeader.Dimensions

	if report.ColumnHeader.MetricHeader != nil {
		entries := report.ColumnHeader.MetricHeader.MetricHeaderEntries
		metrics = make([]string, len(entries))

		for i, entry := range entries {
			if entry != nil {
				metrics[i] = entry.Name
			}
		}
	}

	return dimensions, metrics
}

func labelsOf(s *schema.Schema, ids []string) []string {
	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = s.LabelOf(id)
	}

	return labels
}
