package service

import (
	"slices"
	"time"

	"github.com/pajkicdj/POC-user-product-flow/analytics/config"
	"github.com/pajkicdj/POC-user-product-flow/analytics/domain"
)

// BuildRequest returns the report request for yesterday..today relative to now.
func BuildRequest(cfg config.Config, now time.Time) *domain.ReportRequest {
	return &domain.ReportRequest{
		ViewID:     cfg.ViewID,
		DateRange:  domain.NewDateRange(now),
		Metrics:    slices.Clone(cfg.Metrics),
		Dimensions: slices.Clone(cfg.Dimensions),
	}
}
