package repository

import (
	"context"
	"time"

	"curtail/internal/model"
)

// MySQLRepositoryInterface defines the interface for MySQL operations
type MySQLRepositoryInterface interface {
	InsertLink(ctx context.Context, link *model.Link) error
	GetLinkByCode(ctx context.Context, code string) (*model.Link, error)
	CheckExistsByCode(ctx context.Context, code string) (bool, error)
	DeleteLink(ctx context.Context, code string) (int64, error)
	ListLinksByOwner(ctx context.Context, ownerID string) ([]model.Link, error)
	SaveClickEvent(ctx context.Context, ev *model.ClickEvent) error
	GetClickEvents(ctx context.Context, code string, limit int) ([]model.ClickEvent, error)
	CountClickEvents(ctx context.Context, code string) (int64, error)
	Close() error
}

// RedisRepositoryInterface defines the interface for Redis operations
type RedisRepositoryInterface interface {
	SaveDestination(ctx context.Context, code, destinationURL string, ttl time.Duration) error
	GetDestination(ctx context.Context, code string) (string, error)
	DeleteDestination(ctx context.Context, code string) error
	MarkMiss(ctx context.Context, code string, ttl time.Duration) error
	IsMiss(ctx context.Context, code string) (bool, error)
	IncrRollup(ctx context.Context, ev *model.ClickEvent) error
	GetRollup(ctx context.Context, code string) (*model.Rollup, error)
	ResetRollup(ctx context.Context, code string) error
	Close() error
}
