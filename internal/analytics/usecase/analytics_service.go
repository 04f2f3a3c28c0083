package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"shortlink/internal/shared/events"
	"shortlink/internal/urlservice/domain"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

var ErrInvalidRange = errors.New("from must not be after to")

type AnalyticsService struct {
	repo    ClickRepository
	links   LinkLookup
	geoIP   GeoIPResolver
	device  DeviceDetector
	referer RefererClassifier
	logger  *zap.Logger
	now     func() time.Time
}

func NewAnalyticsService(
	repo ClickRepository,
	links LinkLookup,
	geoIP GeoIPResolver,
	device DeviceDetector,
	referer RefererClassifier,
	logger *zap.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		repo:    repo,
		links:   links,
		geoIP:   geoIP,
		device:  device,
		referer: referer,
		logger:  logger,
		now:     time.Now,
	}
}

// ClickView is the public shape of one recorded click.
type ClickView struct {
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Location  string    `json:"location"`
	Device    string    `json:"device"`
}

// StatsResult is one page of a code's click history plus its total.
type StatsResult struct {
	Code        string      `json:"code"`
	TotalClicks int64       `json:"totalClicks"`
	Clicks      []ClickView `json:"clicks"`
	NextCursor  string      `json:"nextCursor,omitempty"`
	HasMore     bool        `json:"hasMore"`
}

// BreakdownItem is one group of a summary breakdown.
type BreakdownItem struct {
	Value      string  `json:"value"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// SummaryResult holds click breakdowns for a time range.
type SummaryResult struct {
	Code        string          `json:"code"`
	From        time.Time       `json:"from"`
	To          time.Time       `json:"to"`
	TotalClicks int64           `json:"totalClicks"`
	Sources     []BreakdownItem `json:"sources"`
	Locations   []BreakdownItem `json:"locations"`
	Devices     []BreakdownItem `json:"devices"`
}

// RecordClick enriches event and stores it. A click for a code that is not
// live is dropped with a warning.
func (s *AnalyticsService) RecordClick(ctx context.Context, event events.ClickEvent) error {
	if _, err := s.links.FindByCode(ctx, event.ShortCode); err != nil {
		if errors.Is(err, domain.ErrURLNotFound) {
			s.logger.Warn("dropping click for unknown code", zap.String("short_code", event.ShortCode))
			return nil
		}
		return fmt.Errorf("verify code: %w", err)
	}

	click := Click{
		ID:        event.ID,
		Code:      event.ShortCode,
		ClickedAt: event.Timestamp,
		Source:    s.referer.ClassifySource(event.Referer),
		Location:  s.geoIP.ResolveLocation(event.ClientIP),
		Device:    s.device.DetectDevice(event.UserAgent),
	}
	if click.ID == "" {
		click.ID = uuid.NewString()
	}
	if click.ClickedAt.IsZero() {
		click.ClickedAt = s.now()
	}
	click.ClickedAt = click.ClickedAt.UTC()

	if err := s.repo.Insert(ctx, click); err != nil {
		return err
	}

	s.logger.Debug("click recorded",
		zap.String("short_code", click.Code),
		zap.String("source", click.Source),
		zap.String("device", click.Device),
	)
	return nil
}

// CountSince returns the number of clicks for code at or after since.
func (s *AnalyticsService) CountSince(ctx context.Context, code string, since time.Time) (int64, error) {
	return s.repo.CountSince(ctx, code, since)
}

// Stats returns the click total and one page of clicks for a live code.
// Clicks recorded before the link was created are never reported.
func (s *AnalyticsService) Stats(ctx context.Context, code string, cursor string, limit int) (*StatsResult, error) {
	after, err := DecodeCursor(cursor)
	if err != nil {
		return nil, err
	}
	limit = clampLimit(limit)

	link, err := s.links.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountSince(ctx, code, link.CreatedAt)
	if err != nil {
		return nil, err
	}

	page, err := s.repo.List(ctx, ListClicksParams{
		Code:  code,
		Since: link.CreatedAt,
		After: after,
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	return &StatsResult{
		Code:        link.Code,
		TotalClicks: total,
		Clicks: lo.Map(page.Clicks, func(c Click, _ int) ClickView {
			return ClickView{Timestamp: c.ClickedAt, Source: c.Source, Location: c.Location, Device: c.Device}
		}),
		NextCursor: EncodeCursor(page.Next),
		HasMore:    page.HasMore,
	}, nil
}

// Summary breaks down a live code's clicks in [from, to) by source, location
// and device. A zero from means since creation; a zero to means now.
func (s *AnalyticsService) Summary(ctx context.Context, code string, from, to time.Time) (*SummaryResult, error) {
	if to.IsZero() {
		to = s.now()
	}
	if !from.IsZero() && from.After(to) {
		return nil, ErrInvalidRange
	}

	link, err := s.links.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if from.Before(link.CreatedAt) {
		from = link.CreatedAt
	}

	result := &SummaryResult{Code: link.Code, From: from.UTC(), To: to.UTC()}
	var sources, locations, devices []GroupCount

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		result.TotalClicks, err = s.repo.CountInRange(gctx, code, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		sources, err = s.repo.CountBySourceInRange(gctx, code, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		locations, err = s.repo.CountByLocationInRange(gctx, code, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		devices, err = s.repo.CountByDeviceInRange(gctx, code, from, to)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Sources = breakdown(sources, result.TotalClicks)
	result.Locations = breakdown(locations, result.TotalClicks)
	result.Devices = breakdown(devices, result.TotalClicks)
	return result, nil
}

// breakdown attaches percentages of total, rounded to one decimal place.
func breakdown(groups []GroupCount, total int64) []BreakdownItem {
	return lo.Map(groups, func(g GroupCount, _ int) BreakdownItem {
		var pct float64
		if total > 0 {
			pct = float64(int64(float64(g.Count)*1000/float64(total)+0.5)) / 10
		}
		return BreakdownItem{Value: g.Value, Count: g.Count, Percentage: pct}
	})
}

func clampLimit(limit int) int {
	switch {
	case limit < 1:
		return DefaultPageSize
	case limit > MaxPageSize:
		return MaxPageSize
	default:
		return limit
	}
}
