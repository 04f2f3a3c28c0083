package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"shortlink/internal/shared/events"
)

// ClickSink stores click events.
type ClickSink interface {
	RecordClick(ctx context.Context, event events.ClickEvent) error
}

// ClickPublisher records clicks by publishing them on the bus. Publishing
// waits until the router is running and returns once the click is handled.
type ClickPublisher struct {
	bus     *EventBus
	running <-chan struct{}
}

func NewClickPublisher(bus *EventBus, router *Router) *ClickPublisher {
	return &ClickPublisher{bus: bus, running: router.Running()}
}

func (p *ClickPublisher) RecordClick(ctx context.Context, event events.ClickEvent) error {
	select {
	case <-p.running:
	case <-ctx.Done():
		return ctx.Err()
	}
	return p.bus.Publish(ctx, ClickEventsTopic, event)
}

// ClickHandler hands click events from the bus to a sink.
type ClickHandler struct {
	sink ClickSink
}

func NewClickHandler(sink ClickSink) *ClickHandler {
	return &ClickHandler{sink: sink}
}

func (h *ClickHandler) HandlerName() string {
	return "analytics.record_click"
}

func (h *ClickHandler) EventName() string {
	return events.ClickEventName
}

func (h *ClickHandler) Handle(ctx context.Context, env *Envelope) error {
	var event events.ClickEvent
	if err := json.Unmarshal(env.Payload, &event); err != nil {
		return fmt.Errorf("decode click event %s: %w", env.ID, err)
	}
	return h.sink.RecordClick(ctx, event)
}
