package usecase

import (
	"context"
	"time"

	"shortlink/internal/urlservice/domain"
)

// Click is a stored, enriched click event.
type Click struct {
	ID        string
	Code      string
	ClickedAt time.Time
	Source    string
	Location  string
	Device    string
}

// GroupCount represents a count for a single group value (source, location, device).
type GroupCount struct {
	Value string
	Count int64
}

// Cursor marks the last click of a page. Clicks are listed newest first and
// ties on timestamp are broken by id.
type Cursor struct {
	ClickedAt time.Time
	ID        string
}

// ListClicksParams selects one page of clicks for a code.
type ListClicksParams struct {
	Code string
	// Since excludes clicks recorded before the link was (re)issued.
	Since time.Time
	// After is nil for the first page.
	After *Cursor
	Limit int
}

// ClickPage holds a page of clicks and the cursor for the next one.
type ClickPage struct {
	Clicks  []Click
	Next    *Cursor
	HasMore bool
}

type ClickRepository interface {
	// Insert appends an enriched click.
	Insert(ctx context.Context, click Click) error
	// CountSince returns clicks recorded at or after since.
	CountSince(ctx context.Context, code string, since time.Time) (int64, error)
	// CountInRange returns clicks in [from, to).
	CountInRange(ctx context.Context, code string, from, to time.Time) (int64, error)
	CountBySourceInRange(ctx context.Context, code string, from, to time.Time) ([]GroupCount, error)
	CountByLocationInRange(ctx context.Context, code string, from, to time.Time) ([]GroupCount, error)
	CountByDeviceInRange(ctx context.Context, code string, from, to time.Time) ([]GroupCount, error)
	// List returns up to params.Limit clicks, newest first.
	List(ctx context.Context, params ListClicksParams) (*ClickPage, error)
}

// LinkLookup resolves a code to its live link.
type LinkLookup interface {
	FindByCode(ctx context.Context, code string) (*domain.ShortLink, error)
}

// GeoIPResolver maps a client IP to a location label.
type GeoIPResolver interface {
	ResolveLocation(ip string) string
}

// DeviceDetector maps a User-Agent to a device label.
type DeviceDetector interface {
	DetectDevice(userAgent string) string
}

// RefererClassifier maps a referer to a traffic source label.
type RefererClassifier interface {
	ClassifySource(referer string) string
}
