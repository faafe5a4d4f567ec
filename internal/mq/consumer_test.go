package mq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsumer_Subscribe_AlreadyStarted(t *testing.T) {
	t.Run("subscribe when already started returns nil", func(t *testing.T) {
		c := &Consumer{
			started: true,
		}

		err := c.Subscribe()
		assert.NoError(t, err)
	})
}

func TestConsumer_Close(t *testing.T) {
	t.Run("nil consumer close returns nil", func(t *testing.T) {
		var c *Consumer
		err := c.Close()
		assert.NoError(t, err)
	})

	t.Run("consumer with nil client close returns nil", func(t *testing.T) {
		c := &Consumer{
			client: nil,
		}
		err := c.Close()
		assert.NoError(t, err)
	})
}

func TestClickHandler(t *testing.T) {
	t.Run("handler processes message", func(t *testing.T) {
		processed := false
		var handler ClickHandler = func(_ context.Context, msg *ClickMessage) error {
			processed = true
			assert.Equal(t, "aB3xY9", msg.LinkCode)
			return nil
		}

		err := handler(context.Background(), &ClickMessage{LinkCode: "aB3xY9"})
		assert.NoError(t, err)
		assert.True(t, processed)
	})

	t.Run("handler error propagates", func(t *testing.T) {
		var handler ClickHandler = func(context.Context, *ClickMessage) error {
			return assert.AnError
		}

		err := handler(context.Background(), &ClickMessage{})
		assert.Error(t, err)
	})
}
