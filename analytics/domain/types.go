package domain

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"google.golang.org/api/analyticsreporting/v4"

	"github.com/pajkicdj/POC-user-product-flow/times"
)

// ZeroValue fills output cells no field populates.
const ZeroValue = "0"

type DateRange struct {
	Start civil.Date
	End   civil.Date
}

// NewDateRange returns yesterday..today for the calendar day now falls on.
func NewDateRange(now time.Time) DateRange {
	return DateRange{
		Start: times.PreviousDay(now),
		End:   times.CurrentDay(now),
	}
}

// FileName is the output file name of the range, "{start} - {end}.csv".
func (r DateRange) FileName() string {
	return fmt.Sprintf("%s - %s.csv", times.FormatDay(r.Start), times.FormatDay(r.End))
}

// ReportRequest is one fixed report query, immutable once built.
type ReportRequest struct {
	ViewID     string
	DateRange  DateRange
	Metrics    []string
	Dimensions []string
}

// ToAPI converts the request into a single-report batchGet body.
func (r *ReportRequest) ToAPI() *analyticsreporting.GetReportsRequest {
	metrics := make([]*analyticsreporting.Metric, 0, len(r.Metrics))
	for _, expression := range r.Metrics {
		metrics = append(metrics, &analyticsreporting.Metric{Expression: expression})
	}

	dimensions := make([]*analyticsreporting.Dimension, 0, len(r.Dimensions))
	for _, name := range r.Dimensions {
		dimensions = append(dimensions, &analyticsreporting.Dimension{Name: name})
	}

	return &analyticsreporting.GetReportsRequest{
		ReportRequests: []*analyticsreporting.ReportRequest{
			{
				ViewId: r.ViewID,
				DateRanges: []*analyticsreporting.DateRange{
					{
						StartDate: times.FormatDay(r.DateRange.Start),
						EndDate:   times.FormatDay(r.DateRange.End),
					},
				},
				Metrics:    metrics,
				Dimensions: dimensions,
			},
		},
	}
}

// Row is one output line, positionally aligned to the column schema.
type Row []string

// NewRow returns a row of width cells holding ZeroValue.
func NewRow(width int) Row {
	row := make(Row, width)
	for i := range row {
		row[i] = ZeroValue
	}

	return row
}
