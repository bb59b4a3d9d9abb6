package service

import (
	"context"
	"time"
)

type Exporter interface {
	Run(ctx context.Context, now time.Time) (string, error)
}
