package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"shortlink/internal/conf"
	"shortlink/internal/urlservice/domain"
)

const (
	defaultPage    = 1
	defaultPerPage = 20
	maxPerPage     = 100
)

// ErrInvalidOrder is returned when a listing asks for a sort order other than asc or desc.
var ErrInvalidOrder = errors.New("order must be asc or desc")

// URLService implements the core business logic for URL shortening
type URLService struct {
	repo      URLRepository
	allocator CodeAllocator
	counter   ClickCounter
	logger    *zap.Logger
	baseURL   string
}

// NewURLService creates a new URL service
func NewURLService(repo URLRepository, allocator CodeAllocator, counter ClickCounter, logger *zap.Logger, c *conf.Server) *URLService {
	return &URLService{
		repo:      repo,
		allocator: allocator,
		counter:   counter,
		logger:    logger,
		baseURL:   strings.TrimRight(c.BaseURL, "/"),
	}
}

// LinkWithClicks is a link enriched with its click total.
type LinkWithClicks struct {
	Code        string    `json:"code"`
	ShortURL    string    `json:"shortUrl"`
	OriginalURL string    `json:"originalUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	TotalClicks int64     `json:"totalClicks"`
}

// LinkListResult represents paginated list of links
type LinkListResult struct {
	Links      []LinkWithClicks `json:"links"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PerPage    int              `json:"perPage"`
	TotalPages int              `json:"totalPages"`
}

// ListLinksParams represents parameters for listing links
type ListLinksParams struct {
	Page    int
	PerPage int
	Order   string // "asc" or "desc"
	Search  string
}

// ShortURL is the public redirect address for code.
func (s *URLService) ShortURL(code string) string {
	return s.baseURL + "/" + code
}

// Shorten validates originalURL and stores it under a freshly issued code.
// Every call issues a new code, even for a URL seen before.
func (s *URLService) Shorten(ctx context.Context, originalURL string) (*domain.ShortLink, error) {
	if err := ValidateURL(originalURL); err != nil {
		return nil, err
	}

	link, err := s.allocator.Allocate(ctx, originalURL)
	if err != nil {
		return nil, err
	}

	s.logger.Info("short link created",
		zap.String("short_code", link.Code),
		zap.String("original_url", link.OriginalURL),
	)
	return link, nil
}

// ShortenBatch shortens up to MaxBatchSize URLs. The batch is all-or-nothing:
// if any entry is invalid nothing is stored, and if an allocation fails the
// links already created for the batch are deleted before the error returns.
func (s *URLService) ShortenBatch(ctx context.Context, urls []string) ([]*domain.ShortLink, error) {
	if err := validateBatch(urls); err != nil {
		return nil, err
	}

	links := make([]*domain.ShortLink, 0, len(urls))
	for _, u := range urls {
		link, err := s.allocator.Allocate(ctx, u)
		if err != nil {
			s.rollbackBatch(ctx, links)
			return nil, err
		}
		links = append(links, link)
	}

	s.logger.Info("short link batch created", zap.Int("count", len(links)))
	return links, nil
}

// rollbackBatch removes links created by a batch that failed part way. The
// caller never saw these codes, so they are retired like any deleted link.
func (s *URLService) rollbackBatch(ctx context.Context, links []*domain.ShortLink) {
	ctx = context.WithoutCancel(ctx)
	for _, l := range links {
		if err := s.repo.Delete(ctx, l.Code); err != nil {
			s.logger.Error("failed to roll back batch link",
				zap.String("short_code", l.Code),
				zap.Error(err),
			)
		}
	}
	if len(links) > 0 {
		s.logger.Warn("short link batch rolled back", zap.Int("count", len(links)))
	}
}

// GetByCode retrieves a link by its short code
func (s *URLService) GetByCode(ctx context.Context, code string) (*domain.ShortLink, error) {
	return s.repo.FindByCode(ctx, code)
}

// ListLinks retrieves paginated list of links with click counts
func (s *URLService) ListLinks(ctx context.Context, params ListLinksParams) (*LinkListResult, error) {
	if params.Page < 1 {
		params.Page = defaultPage
	}
	if params.PerPage < 1 || params.PerPage > maxPerPage {
		params.PerPage = defaultPerPage
	}
	if params.Order == "" {
		params.Order = "desc"
	}
	if params.Order != "asc" && params.Order != "desc" {
		return nil, fmt.Errorf("%w, got: %s", ErrInvalidOrder, params.Order)
	}

	links, err := s.repo.FindAll(ctx, FindAllParams{
		Search:    params.Search,
		SortOrder: params.Order,
		Limit:     params.PerPage,
		Offset:    (params.Page - 1) * params.PerPage,
	})
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx, CountParams{Search: params.Search})
	if err != nil {
		return nil, err
	}

	return &LinkListResult{
		Links: lo.Map(links, func(l *domain.ShortLink, _ int) LinkWithClicks {
			return s.withClicks(ctx, l)
		}),
		Total:      total,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: int(math.Ceil(float64(total) / float64(params.PerPage))),
	}, nil
}

// GetLinkDetail retrieves a single link with click count
func (s *URLService) GetLinkDetail(ctx context.Context, code string) (*LinkWithClicks, error) {
	link, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	detail := s.withClicks(ctx, link)
	return &detail, nil
}

// DeleteLink removes a link and retires its code. Deleting an unknown code succeeds.
func (s *URLService) DeleteLink(ctx context.Context, code string) error {
	if err := s.repo.Delete(ctx, code); err != nil {
		return err
	}
	s.logger.Info("short link deleted", zap.String("short_code", code))
	return nil
}

// withClicks reports zero clicks when the count is unavailable rather than
// failing the listing.
func (s *URLService) withClicks(ctx context.Context, l *domain.ShortLink) LinkWithClicks {
	total, err := s.counter.CountSince(ctx, l.Code, l.CreatedAt)
	if err != nil {
		s.logger.Warn("failed to count clicks",
			zap.String("short_code", l.Code),
			zap.Error(err),
		)
		total = 0
	}
	return LinkWithClicks{
		Code:        l.Code,
		ShortURL:    s.ShortURL(l.Code),
		OriginalURL: l.OriginalURL,
		CreatedAt:   l.CreatedAt,
		TotalClicks: total,
	}
}
