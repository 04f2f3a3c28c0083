package eventbus

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// ClickEventsTopic carries one message per served redirect.
const ClickEventsTopic = "link.clicks"

// Event is anything that can be published on the bus.
type Event interface {
	EventID() string
	EventName() string
	// PartitionKey groups related events; clicks use their short code.
	PartitionKey() string
	OccurredAt() time.Time
}

// EventBus is the in-process transport between redirects and analytics.
// Publish returns only after every subscriber acked the message, so a
// successful publish means the event was handled.
type EventBus struct {
	channel *gochannel.GoChannel
	logger  watermill.LoggerAdapter
}

func NewEventBus(logger watermill.LoggerAdapter) *EventBus {
	return &EventBus{
		channel: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer:            100,
			BlockPublishUntilSubscriberAck: true,
		}, logger),
		logger: logger.With(watermill.LogFields{"component": "eventbus"}),
	}
}

// ProvideEventBus creates the bus and closes it on cleanup.
func ProvideEventBus(logger watermill.LoggerAdapter) (*EventBus, func()) {
	bus := NewEventBus(logger)
	return bus, func() {
		if err := bus.Close(); err != nil {
			bus.logger.Error("failed to close event bus", err, nil)
		}
	}
}

func (b *EventBus) Publisher() message.Publisher {
	return b.channel
}

func (b *EventBus) Subscriber() message.Subscriber {
	return b.channel
}

// Publish encodes e and sends it on topic. The request id found in ctx, if
// any, travels with the message as its correlation id.
func (b *EventBus) Publish(ctx context.Context, topic string, e Event) error {
	msg, err := Encode(ctx, e)
	if err != nil {
		return err
	}
	if err := b.channel.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish %s to %s: %w", e.EventName(), topic, err)
	}
	return nil
}

func (b *EventBus) Close() error {
	return b.channel.Close()
}
