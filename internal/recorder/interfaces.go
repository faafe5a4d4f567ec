package recorder

import (
	"context"

	"curtail/internal/model"
	"curtail/internal/mq"
)

// ClickStore defines the store operations the recorder needs (for testing)
type ClickStore interface {
	SaveClickEvent(ctx context.Context, ev *model.ClickEvent) error
	CheckExistsByCode(ctx context.Context, code string) (bool, error)
}

// RollupSink receives counter nudges as events are persisted (for testing)
type RollupSink interface {
	IncrRollup(ctx context.Context, ev *model.ClickEvent) error
}

// Publisher forwards enriched events to the message queue (for testing)
type Publisher interface {
	SendClick(ctx context.Context, msg *mq.ClickMessage) error
}
