package eventbus

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

// EventHandler consumes one kind of event from a topic. HandlerName must be
// unique within a router.
type EventHandler interface {
	HandlerName() string
	EventName() string
	Handle(ctx context.Context, env *Envelope) error
}

// Router routes bus messages to event handlers. It satisfies the kratos
// transport.Server interface so the application starts and stops it.
type Router struct {
	router   *message.Router
	eventBus *EventBus
	handlers []EventHandler
	logger   watermill.LoggerAdapter

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewRouter creates a new event router. Failed handlers are retried a few
// times, then the message is acknowledged and the failure logged so a
// blocking publisher is never stuck on redelivery.
func NewRouter(eventBus *EventBus, logger watermill.LoggerAdapter) (*Router, error) {
	router, err := message.NewRouter(message.RouterConfig{
		CloseTimeout: 5 * time.Second,
	}, logger)
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(
		middleware.CorrelationID,
		ackAfterFailure(logger),
		middleware.Retry{
			MaxRetries:      2,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2,
			Logger:          logger,
		}.Middleware,
		middleware.Recoverer,
	)

	return &Router{
		router:   router,
		eventBus: eventBus,
		handlers: make([]EventHandler, 0),
		logger:   logger,
	}, nil
}

// AddHandler registers an event handler for topic. Handlers must be added
// before Start.
func (r *Router) AddHandler(topic string, handler EventHandler) {
	r.handlers = append(r.handlers, handler)

	r.router.AddNoPublisherHandler(
		handler.HandlerName(),
		topic,
		r.eventBus.Subscriber(),
		r.createHandlerFunc(handler),
	)
}

// createHandlerFunc decodes the envelope and hands it to handler when the
// event name matches. Undecodable messages are acked without retry.
func (r *Router) createHandlerFunc(handler EventHandler) message.NoPublishHandlerFunc {
	return func(msg *message.Message) error {
		env, err := Decode(msg)
		if err != nil {
			r.logger.Error("skipping undecodable message", err, watermill.LogFields{"message_uuid": msg.UUID})
			return nil
		}
		if env.Name != handler.EventName() {
			return nil
		}

		if err := handler.Handle(msg.Context(), env); err != nil {
			r.logger.Error("event handler failed", err, watermill.LogFields{
				"handler":        handler.HandlerName(),
				"event_name":     env.Name,
				"event_id":       env.ID,
				"correlation_id": middleware.MessageCorrelationID(msg),
			})
			return err
		}
		return nil
	}
}

// Start runs the router until Stop is called or ctx is cancelled.
func (r *Router) Start(ctx context.Context) error {
	r.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.mu.Unlock()

	err := r.router.Run(runCtx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Stop closes the router and waits for in-flight handlers.
func (r *Router) Stop(context.Context) error {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	r.mu.Unlock()
	return r.router.Close()
}

// Running returns a channel that is closed when the router is running.
func (r *Router) Running() chan struct{} {
	return r.router.Running()
}

// ackAfterFailure logs a message whose handling failed after retries and
// acknowledges it.
func ackAfterFailure(logger watermill.LoggerAdapter) message.HandlerMiddleware {
	return func(h message.HandlerFunc) message.HandlerFunc {
		return func(msg *message.Message) ([]*message.Message, error) {
			msgs, err := h(msg)
			if err != nil {
				logger.Error("dropping message after retries", err, watermill.LogFields{
					"message_uuid": msg.UUID,
					"event_name":   msg.Metadata.Get(MetadataName),
					"key":          msg.Metadata.Get(MetadataKey),
				})
				return nil, nil
			}
			return msgs, nil
		}
	}
}
