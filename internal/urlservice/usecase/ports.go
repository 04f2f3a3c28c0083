package usecase

import (
	"context"
	"time"

	"shortlink/internal/shared/events"
	"shortlink/internal/urlservice/domain"
)

// ClickRecorder accepts a click observed during a redirect.
type ClickRecorder interface {
	RecordClick(ctx context.Context, event events.ClickEvent) error
}

// ClickCounter reports how many clicks a code received since a point in time.
type ClickCounter interface {
	CountSince(ctx context.Context, code string, since time.Time) (int64, error)
}

// CodeAllocator claims a fresh short code for a URL.
type CodeAllocator interface {
	Allocate(ctx context.Context, originalURL string) (*domain.ShortLink, error)
}
