package resolver

import (
	"context"
	"time"

	"curtail/internal/model"
)

// Cache defines the cache operations the resolver needs (for testing)
type Cache interface {
	GetDestination(ctx context.Context, code string) (string, error)
	SaveDestination(ctx context.Context, code, destinationURL string, ttl time.Duration) error
	MarkMiss(ctx context.Context, code string, ttl time.Duration) error
	IsMiss(ctx context.Context, code string) (bool, error)
}

// ClickDispatcher accepts clicks for asynchronous recording. Enqueue
// reports false when the event was dropped.
type ClickDispatcher interface {
	Enqueue(click model.Click) bool
}

// ResolverInterface defines the interface for resolve operations
type ResolverInterface interface {
	Resolve(ctx context.Context, req ResolveRequest) (string, error)
}
