package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Metadata keys set on every message. They let middlewares and logs
// identify a message without decoding its payload.
const (
	MetadataName = "event_name"
	MetadataKey  = "partition_key"
)

// Envelope is the wire form of an event: a small header plus the event
// itself as raw JSON.
type Envelope struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Key           string          `json:"key"`
	OccurredAt    time.Time       `json:"occurred_at"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

// Encode wraps e in an envelope and returns it as a message. Events without
// an id get a fresh one.
func Encode(ctx context.Context, e Event) (*message.Message, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", e.EventName(), err)
	}

	env := Envelope{
		ID:            e.EventID(),
		Name:          e.EventName(),
		Key:           e.PartitionKey(),
		OccurredAt:    e.OccurredAt(),
		CorrelationID: chimiddleware.GetReqID(ctx),
		Payload:       payload,
	}
	if env.ID == "" {
		env.ID = watermill.NewUUID()
	}

	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encode %s envelope: %w", e.EventName(), err)
	}

	msg := message.NewMessage(env.ID, data)
	msg.Metadata.Set(MetadataName, env.Name)
	msg.Metadata.Set(MetadataKey, env.Key)
	if env.CorrelationID != "" {
		middleware.SetCorrelationID(env.CorrelationID, msg)
	}
	msg.SetContext(ctx)
	return msg, nil
}

// Decode reads the envelope carried by msg.
func Decode(msg *message.Message) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(msg.Payload, &env); err != nil {
		return nil, fmt.Errorf("decode message %s: %w", msg.UUID, err)
	}
	return &env, nil
}
