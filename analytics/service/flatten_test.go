package service

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/analyticsreporting/v4"

	"github.com/pajkicdj/POC-user-product-flow/analytics/domain"
	"github.com/pajkicdj/POC-user-product-flow/analytics/schema"
	"github.com/pajkicdj/POC-user-product-flow/logger"
)

var (
	allDimensions = []string{"ga:productSku", "ga:dimension1"}
	allMetrics    = []string{
		"ga:productDetailViews",
		"ga:metric2",
		"ga:productAddsToCart",
		"ga:productCheckouts",
		"ga:productRemovesFromCart",
	}
	fullHeader = domain.Row{
		"Product SKU",
		"UserId",
		"View pdp",
		"Add to wishlist",
		"Add to cart",
		"Checkout product",
		"Removes product from cart",
	}
)

func metricEntries(names ...string) []*analyticsreporting.MetricHeaderEntry {
	entries := make([]*analyticsreporting.MetricHeaderEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, &analyticsreporting.MetricHeaderEntry{Name: name, Type: "INTEGER"})
	}

	return entries
}

func dateRanges(values ...[]string) []*analyticsreporting.DateRangeValues {
	ranges := make([]*analyticsreporting.DateRangeValues, 0, len(values))
	for _, v := range values {
		ranges = append(ranges, &analyticsreporting.DateRangeValues{Values: v})
	}

	return ranges
}

func newReport(dimensions, metrics []string, rows ...*analyticsreporting.ReportRow) *analyticsreporting.Report {
	return &analyticsreporting.Report{
		ColumnHeader: &analyticsreporting.ColumnHeader{
			Dimensions:   dimensions,
			MetricHeader: &analyticsreporting.MetricHeader{MetricHeaderEntries: metricEntries(metrics...)},
		},
		Data: &analyticsreporting.ReportData{Rows: rows},
	}
}

func newResponse(reports ...*analyticsreporting.Report) *analyticsreporting.GetReportsResponse {
	return &analyticsreporting.GetReportsResponse{Reports: reports}
}

func newTestFlattener() *Flattener {
	return NewFlattener(logger.FromContext, schema.Default())
}

func TestFlattener_Flatten(t *testing.T) {
	tests := []struct {
		name string
		res  *analyticsreporting.GetReportsResponse
		want []domain.Row
	}{
		{
			name: "full row",
			res: newResponse(newReport(allDimensions, allMetrics, &analyticsreporting.ReportRow{
				Dimensions: []string{"SKU123", "user42"},
				Metrics:    dateRanges([]string{"5", "1", "2", "0", "1"}),
			})),
			want: []domain.Row{
				fullHeader,
				{"SKU123", "user42", "5", "1", "2", "0", "1"},
			},
		},
		{
			name: "no data rows",
			res:  newResponse(newReport(allDimensions, allMetrics)),
			want: []domain.Row{fullHeader},
		},
		{
			name: "response order does not change column order",
			res: newResponse(newReport(
				[]string{"ga:dimension1", "ga:productSku"},
				[]string{"ga:productRemovesFromCart", "ga:productDetailViews"},
				&analyticsreporting.ReportRow{
					Dimensions: []string{"user7", "SKU9"},
					Metrics:    dateRanges([]string{"4", "11"}),
				},
			)),
			want: []domain.Row{
				{"Product SKU", "UserId", "View pdp", "0", "0", "0", "Removes product from cart"},
				{"SKU9", "user7", "11", "0", "0", "0", "4"},
			},
		},
		{
			name: "missing metric headers keep zero default",
			res: newResponse(newReport(allDimensions, []string{"ga:productDetailViews", "ga:productAddsToCart"},
				&analyticsreporting.ReportRow{
					Dimensions: []string{"SKU1", "u1"},
					Metrics:    dateRanges([]string{"8", "3"}),
				},
			)),
			want: []domain.Row{
				{"Product SKU", "UserId", "View pdp", "0", "Add to cart", "0", "0"},
				{"SKU1", "u1", "8", "0", "3", "0", "0"},
			},
		},
		{
			name: "later date range overwrites earlier one",
			res: newResponse(newReport(allDimensions, allMetrics, &analyticsreporting.ReportRow{
				Dimensions: []string{"SKU1", "u1"},
				Metrics: dateRanges(
					[]string{"1", "1", "1", "1", "1"},
					[]string{"2", "3", "4", "5", "6"},
				),
			})),
			want: []domain.Row{
				fullHeader,
				{"SKU1", "u1", "2", "3", "4", "5", "6"},
			},
		},
		{
			name: "unknown fields are skipped",
			res: newResponse(newReport(
				[]string{"ga:productSku", "ga:country"},
				[]string{"ga:sessions", "ga:metric2"},
				&analyticsreporting.ReportRow{
					Dimensions: []string{"SKU1", "Serbia"},
					Metrics:    dateRanges([]string{"99", "7"}),
				},
			)),
			want: []domain.Row{
				{"Product SKU", "0", "0", "Add to wishlist", "0", "0", "0"},
				{"SKU1", "0", "0", "7", "0", "0", "0"},
			},
		},
		{
			name: "nil header and data",
			res:  newResponse(&analyticsreporting.Report{}),
			want: []domain.Row{{"0", "0", "0", "0", "0", "0", "0"}},
		},
		{
			name: "no reports",
			res:  newResponse(),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newTestFlattener().Flatten(context.Background(), tt.res)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Flatten() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlattener_RowCountAndWidth(t *testing.T) {
	for _, n := range []int{0, 1, 7, 100} {
		rows := make([]*analyticsreporting.ReportRow, 0, n)
		for i := 0; i < n; i++ {
			rows = append(rows, &analyticsreporting.ReportRow{
				Dimensions: []string{"SKU", "user"},
				Metrics:    dateRanges([]string{"1", "2"}),
			})
		}

		got, err := newTestFlattener().Flatten(context.Background(),
			newResponse(newReport(allDimensions, []string{"ga:metric2", "ga:productCheckouts"}, rows...)))
		require.NoError(t, err)

		assert.Len(t, got, n+1)

		for _, row := range got {
			assert.Len(t, row, 7)
		}
	}
}

func TestFlattener_Strict(t *testing.T) {
	f := newTestFlattener()
	f.Strict = true

	_, err := f.Flatten(context.Background(), newResponse(newReport([]string{"ga:country"}, allMetrics)))
	assert.ErrorIs(t, err, domain.ErrUnknownField)

	got, err := f.Flatten(context.Background(), newResponse(newReport(allDimensions, allMetrics)))
	require.NoError(t, err)
	assert.Equal(t, []domain.Row{fullHeader}, got)
}

func TestFlattener_MalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		row  *analyticsreporting.ReportRow
	}{
		{
			name: "too few dimension values",
			row: &analyticsreporting.ReportRow{
				Dimensions: []string{"SKU1"},
				Metrics:    dateRanges([]string{"1", "2", "3", "4", "5"}),
			},
		},
		{
			name: "too many metric values",
			row: &analyticsreporting.ReportRow{
				Dimensions: []string{"SKU1", "u1"},
				Metrics:    dateRanges([]string{"1", "2", "3", "4", "5", "6"}),
			},
		},
		{
			name: "second date range is short",
			row: &analyticsreporting.ReportRow{
				Dimensions: []string{"SKU1", "u1"},
				Metrics:    dateRanges([]string{"1", "2", "3", "4", "5"}, []string{"1"}),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestFlattener().Flatten(context.Background(), newResponse(newReport(allDimensions, allMetrics, tt.row)))
			assert.ErrorIs(t, err, domain.ErrMalformedResponse)
		})
	}
}

func TestFlattener_NilResponse(t *testing.T) {
	got, err := newTestFlattener().Flatten(context.Background(), nil)
	assert.NoError(t, err)
	assert.Nil(t, got)
}
