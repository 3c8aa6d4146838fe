package planner

import (
	"context"

	"github.com/yanqian/travel-planner/pkg/metrics"
)

// TrendingStore counts how often destinations are planned.
type TrendingStore interface {
	Increment(ctx context.Context, key, label string) error
	Top(ctx context.Context, limit int) ([]metrics.Counter, error)
}
