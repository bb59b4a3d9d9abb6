//go:generate mockery --output=./mocks --all

package dal

import (
	"context"

	"google.golang.org/api/analyticsreporting/v4"

	"github.com/pajkicdj/POC-user-product-flow/analytics/domain"
)

type ReportClient interface {
	BatchGet(ctx context.Context, req *analyticsreporting.GetReportsRequest) (*analyticsreporting.GetReportsResponse, error)
}

type RowWriter interface {
	WriteRows(path string, rows []domain.Row) error
}

type Archive interface {
	Upload(ctx context.Context, path string) (string, error)
}
