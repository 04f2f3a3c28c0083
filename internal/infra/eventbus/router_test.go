package eventbus

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/suite"

	"shortlink/internal/shared/events"
)

type RouterTestSuite struct {
	suite.Suite
	eventBus *EventBus
	sut      *Router
	logger   watermill.LoggerAdapter
	done     chan error
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	s.logger = watermill.NopLogger{}
	s.eventBus = NewEventBus(s.logger)

	var err error
	s.sut, err = NewRouter(s.eventBus, s.logger)
	s.Require().NoError(err)
	s.done = nil
}

func (s *RouterTestSuite) TearDownTest() {
	s.NoError(s.sut.Stop(context.Background()))
	if s.done != nil {
		s.NoError(<-s.done)
	}
	s.NoError(s.eventBus.Close())
}

func (s *RouterTestSuite) start() {
	s.done = make(chan error, 1)
	go func() { s.done <- s.sut.Start(context.Background()) }()
	select {
	case <-s.sut.Running():
	case <-time.After(2 * time.Second):
		s.FailNow("router did not start")
	}
}

// fakeSink records clicks and fails the first failures calls.
type fakeSink struct {
	mu       sync.Mutex
	clicks   []events.ClickEvent
	calls    int
	failures int
	panics   bool
}

func (f *fakeSink) RecordClick(_ context.Context, e events.ClickEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.calls <= f.failures {
		if f.panics {
			panic("sink exploded")
		}
		return errors.New("transient")
	}
	f.clicks = append(f.clicks, e)
	return nil
}

func (f *fakeSink) snapshot() (int, []events.ClickEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls, append([]events.ClickEvent(nil), f.clicks...)
}

func (s *RouterTestSuite) TestClickPipeline_PublishReturnsAfterHandled() {
	// Arrange
	sink := &fakeSink{}
	s.sut.AddHandler(ClickEventsTopic, NewClickHandler(sink))
	s.start()
	publisher := NewClickPublisher(s.eventBus, s.sut)
	evt := newClick("evt-1", "abc123")

	// Act
	err := publisher.RecordClick(context.Background(), evt)

	// Assert
	s.Require().NoError(err)
	_, clicks := sink.snapshot()
	s.Require().Len(clicks, 1)
	s.Equal("evt-1", clicks[0].ID)
	s.Equal("abc123", clicks[0].ShortCode)
	s.Equal("https://www.google.com/", clicks[0].Referer)
	s.True(evt.Timestamp.Equal(clicks[0].Timestamp))
}

func (s *RouterTestSuite) TestClickPipeline_TransientFailure_IsRetried() {
	sink := &fakeSink{failures: 1}
	s.sut.AddHandler(ClickEventsTopic, NewClickHandler(sink))
	s.start()

	err := NewClickPublisher(s.eventBus, s.sut).RecordClick(context.Background(), newClick("evt-1", "abc123"))

	s.Require().NoError(err)
	calls, clicks := sink.snapshot()
	s.Equal(2, calls)
	s.Len(clicks, 1)
}

func (s *RouterTestSuite) TestClickPipeline_PersistentFailure_IsAckedAndDropped() {
	sink := &fakeSink{failures: 100, panics: true}
	s.sut.AddHandler(ClickEventsTopic, NewClickHandler(sink))
	s.start()

	err := NewClickPublisher(s.eventBus, s.sut).RecordClick(context.Background(), newClick("evt-1", "abc123"))

	// the publisher is released even though the click was lost
	s.Require().NoError(err)
	calls, clicks := sink.snapshot()
	s.Equal(3, calls)
	s.Empty(clicks)
}

func (s *RouterTestSuite) TestRouterFiltersEventsByName() {
	// Arrange
	sink := &fakeSink{}
	other := &namedHandler{name: "other", eventName: "link.deleted"}
	s.sut.AddHandler(ClickEventsTopic, NewClickHandler(sink))
	s.sut.AddHandler(ClickEventsTopic, other)
	s.start()

	// Act
	err := s.eventBus.Publish(context.Background(), ClickEventsTopic, newClick("evt-1", "abc123"))

	// Assert
	s.Require().NoError(err)
	_, clicks := sink.snapshot()
	s.Len(clicks, 1)
	s.Zero(other.count())
}

func (s *RouterTestSuite) TestClickPublisher_RouterNotRunning_HonoursContext() {
	publisher := NewClickPublisher(s.eventBus, s.sut)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := publisher.RecordClick(ctx, newClick("evt-1", "abc123"))

	s.ErrorIs(err, context.DeadlineExceeded)
}

type namedHandler struct {
	name      string
	eventName string
	mu        sync.Mutex
	received  int
}

func (h *namedHandler) HandlerName() string { return h.name }
func (h *namedHandler) EventName() string   { return h.eventName }

func (h *namedHandler) Handle(context.Context, *Envelope) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.received++
	return nil
}

func (h *namedHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.received
}

func TestClickHandler_MalformedPayload_ReturnsError(t *testing.T) {
	h := NewClickHandler(&fakeSink{})

	err := h.Handle(context.Background(), &Envelope{ID: "x", Payload: []byte(`{"timestamp":"nope"}`)})

	if err == nil {
		t.Fatal("expected decode error")
	}
}
