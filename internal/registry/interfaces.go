package registry

import (
	"context"
	"time"

	"curtail/internal/model"
)

// LinkStore defines the store operations the registry needs (for testing)
type LinkStore interface {
	InsertLink(ctx context.Context, link *model.Link) error
	GetLinkByCode(ctx context.Context, code string) (*model.Link, error)
	DeleteLink(ctx context.Context, code string) (int64, error)
	ListLinksByOwner(ctx context.Context, ownerID string) ([]model.Link, error)
}

// DestinationCache defines the cache operations the registry needs (for testing)
type DestinationCache interface {
	SaveDestination(ctx context.Context, code, destinationURL string, ttl time.Duration) error
	DeleteDestination(ctx context.Context, code string) error
}

// BloomFilterInterface defines the Bloom Filter operations (for testing)
type BloomFilterInterface interface {
	Add(ctx context.Context, code string) error
	Exists(ctx context.Context, code string) (bool, error)
}

// RegistryInterface defines the interface for registry operations
type RegistryInterface interface {
	Create(ctx context.Context, ownerID, destinationURL, alias string) (*model.Link, error)
	Lookup(ctx context.Context, code string) (*model.Link, error)
	Delete(ctx context.Context, code, requesterID string) error
	ListByOwner(ctx context.Context, ownerID string) ([]model.Link, error)
}
