package shortcode

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"

	"shortlink/internal/conf"
	"shortlink/internal/urlservice/domain"
)

// MaxLength bounds any code the service will look up.
const MaxLength = 32

// Store is the slice of the mapping store the generator needs to claim a code.
type Store interface {
	CodeTaken(ctx context.Context, code string, retiredSince time.Time) (bool, error)
	Insert(ctx context.Context, code, originalURL string, retiredSince time.Time) (*domain.ShortLink, error)
}

// DrawFunc returns a random string of size characters taken from alphabet.
type DrawFunc func(alphabet string, size int) (string, error)

// Generator issues fresh short codes. A code is fresh when no live link uses
// it and it was not retired within the retention window.
type Generator struct {
	store       Store
	alphabet    string
	length      int
	maxAttempts int
	retention   time.Duration
	draw        DrawFunc
	now         func() time.Time
	logger      *zap.Logger
}

func NewGenerator(c *conf.Shortcode, store Store, logger *zap.Logger) *Generator {
	return &Generator{
		store:       store,
		alphabet:    c.Alphabet,
		length:      c.Length,
		maxAttempts: c.MaxAttempts,
		retention:   c.Retention.Std(),
		draw:        gonanoid.Generate,
		now:         time.Now,
		logger:      logger,
	}
}

// WithDraw replaces the random source. Used by tests to force collisions.
func (g *Generator) WithDraw(draw DrawFunc) *Generator {
	g.draw = draw
	return g
}

// RetiredSince is the oldest retirement time that still blocks reissue.
func (g *Generator) RetiredSince() time.Time {
	return g.now().Add(-g.retention)
}

// Allocate draws codes until one can be claimed for originalURL. A draw that
// is already taken, or loses the insert race, counts as one attempt.
func (g *Generator) Allocate(ctx context.Context, originalURL string) (*domain.ShortLink, error) {
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		code, err := g.draw(g.alphabet, g.length)
		if err != nil {
			return nil, fmt.Errorf("failed to generate short code: %w", err)
		}

		if Reserved(code) {
			g.logger.Debug("short code shadows a route", zap.String("short_code", code), zap.Int("attempt", attempt))
			continue
		}

		since := g.RetiredSince()
		taken, err := g.store.CodeTaken(ctx, code, since)
		if err != nil {
			return nil, err
		}
		if taken {
			g.logger.Debug("short code collision", zap.String("short_code", code), zap.Int("attempt", attempt))
			continue
		}

		link, err := g.store.Insert(ctx, code, originalURL, since)
		if errors.Is(err, domain.ErrDuplicateCode) {
			g.logger.Debug("short code lost insert race", zap.String("short_code", code), zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return nil, err
		}
		return link, nil
	}

	g.logger.Warn("short code space exhausted", zap.Int("max_attempts", g.maxAttempts))
	return nil, domain.ErrCapacityExhausted
}

// reserved holds the first path segments of the service's own routes. A
// code equal to one of them would be shadowed by that route.
var reserved = map[string]struct{}{
	"api":     {},
	"healthz": {},
	"readyz":  {},
	"shorten": {},
	"stats":   {},
}

// Reserved reports whether code collides with a fixed route.
func Reserved(code string) bool {
	_, ok := reserved[code]
	return ok
}

// Valid reports whether code could ever have been issued.
func Valid(code string) bool {
	if code == "" || len(code) > MaxLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if strings.IndexByte(conf.CodeCharset, code[i]) < 0 {
			return false
		}
	}
	return true
}
