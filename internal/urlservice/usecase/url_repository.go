package usecase

import (
	"context"
	"time"

	"shortlink/internal/urlservice/domain"
)

// FindAllParams filters and pages a link listing.
type FindAllParams struct {
	Search    string
	SortOrder string // "asc" or "desc"
	Limit     int
	Offset    int
}

type CountParams struct {
	Search string
}

type URLRepository interface {
	// Insert claims code for originalURL. It fails with domain.ErrDuplicateCode
	// when the code is live or was retired at or after retiredSince.
	Insert(ctx context.Context, code, originalURL string, retiredSince time.Time) (*domain.ShortLink, error)
	FindByCode(ctx context.Context, code string) (*domain.ShortLink, error)
	CodeTaken(ctx context.Context, code string, retiredSince time.Time) (bool, error)
	// Delete removes the link and retires its code. Deleting an unknown code is a no-op.
	Delete(ctx context.Context, code string) error
	FindAll(ctx context.Context, params FindAllParams) ([]*domain.ShortLink, error)
	Count(ctx context.Context, params CountParams) (int64, error)
	PurgeRetired(ctx context.Context, before time.Time) (int64, error)
}
