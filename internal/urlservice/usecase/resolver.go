package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shortlink/internal/shared/events"
	"shortlink/internal/urlservice/domain"
	"shortlink/internal/urlservice/shortcode"
)

// Visit carries the request context a click is enriched from.
type Visit struct {
	ClientIP  string
	UserAgent string
	Referer   string
}

// Resolver turns a short code into its redirect target and records the click.
type Resolver struct {
	repo     URLRepository
	recorder ClickRecorder
	logger   *zap.Logger
	now      func() time.Time
}

func NewResolver(repo URLRepository, recorder ClickRecorder, logger *zap.Logger) *Resolver {
	return &Resolver{
		repo:     repo,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// Resolve returns the original URL for code. A code that could never have
// been issued is reported as not found without a store lookup. Click
// recording failures are logged and never fail the redirect.
func (r *Resolver) Resolve(ctx context.Context, code string, visit Visit) (string, error) {
	if !shortcode.Valid(code) {
		return "", domain.ErrURLNotFound
	}

	link, err := r.repo.FindByCode(ctx, code)
	if err != nil {
		return "", err
	}

	event := events.ClickEvent{
		ID:        newEventID(),
		ShortCode: link.Code,
		Timestamp: r.now().UTC(),
		ClientIP:  visit.ClientIP,
		UserAgent: visit.UserAgent,
		Referer:   visit.Referer,
	}
	if err := r.recorder.RecordClick(ctx, event); err != nil {
		r.logger.Error("failed to record click",
			zap.String("short_code", link.Code),
			zap.Error(err),
		)
	}

	return link.OriginalURL, nil
}

// newEventID prefers time-ordered v7 UUIDs so click ids sort by creation.
func newEventID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
