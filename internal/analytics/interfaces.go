package analytics

import (
	"context"

	"curtail/internal/model"
)

// RollupSource defines the counter operations the aggregator needs (for testing)
type RollupSource interface {
	GetRollup(ctx context.Context, code string) (*model.Rollup, error)
	ResetRollup(ctx context.Context, code string) error
	IncrRollup(ctx context.Context, ev *model.ClickEvent) error
}

// EventLog defines the authoritative log reads (for testing)
type EventLog interface {
	GetClickEvents(ctx context.Context, code string, limit int) ([]model.ClickEvent, error)
}

// AggregatorInterface defines the interface for analytics operations
type AggregatorInterface interface {
	Rollup(ctx context.Context, code string) (*model.Rollup, error)
	Rebuild(ctx context.Context, code string) (*model.Rollup, error)
}
