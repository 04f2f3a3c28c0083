package events

import "time"

// ClickEventName identifies click messages on the event bus.
const ClickEventName = "link.clicked"

// ClickEvent is a raw redirect observation. The analytics context turns it
// into labelled click records.
type ClickEvent struct {
	ID        string    `json:"id"`
	ShortCode string    `json:"short_code"`
	Timestamp time.Time `json:"timestamp"`
	ClientIP  string    `json:"client_ip"`
	UserAgent string    `json:"user_agent"`
	Referer   string    `json:"referer"`
}

func (e ClickEvent) EventID() string       { return e.ID }
func (e ClickEvent) EventName() string     { return ClickEventName }
func (e ClickEvent) PartitionKey() string  { return e.ShortCode }
func (e ClickEvent) OccurredAt() time.Time { return e.Timestamp }
