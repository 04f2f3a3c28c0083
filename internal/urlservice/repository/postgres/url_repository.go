package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/samber/lo"

	"shortlink/internal/database"
	"shortlink/internal/database/pgdb"
	"shortlink/internal/urlservice/domain"
	"shortlink/internal/urlservice/usecase"
)

const uniqueViolation = pq.ErrorCode("23505")

// URLRepository implements usecase.URLRepository on PostgreSQL.
type URLRepository struct {
	db      *sql.DB
	queries *pgdb.Queries
	now     func() time.Time
}

func NewURLRepository(db *sql.DB) *URLRepository {
	return &URLRepository{
		db:      db,
		queries: pgdb.New(db),
		now:     time.Now,
	}
}

var _ usecase.URLRepository = (*URLRepository)(nil)

// Insert and Delete hold the same per-code advisory lock, so an insert that
// waits on a concurrent delete re-reads the tombstone that delete committed.
func (r *URLRepository) Insert(ctx context.Context, code, originalURL string, retiredSince time.Time) (*domain.ShortLink, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	q := r.queries.WithTx(tx)
	if err := q.LockCode(ctx, code); err != nil {
		return nil, fmt.Errorf("lock code: %w", err)
	}
	row, err := q.InsertLink(ctx, pgdb.InsertLinkParams{
		Code:        code,
		OriginalUrl: originalURL,
		CreatedAt:   r.now().UnixMilli(),
		RetiredAt:   retiredSince.UnixMilli(),
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.Is(err, sql.ErrNoRows) || (errors.As(err, &pqErr) && pqErr.Code == uniqueViolation) {
			return nil, domain.ErrDuplicateCode
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return toDomain(row), nil
}

func (r *URLRepository) FindByCode(ctx context.Context, code string) (*domain.ShortLink, error) {
	row, err := r.queries.GetLinkByCode(ctx, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrURLNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomain(row), nil
}

func (r *URLRepository) CodeTaken(ctx context.Context, code string, retiredSince time.Time) (bool, error) {
	return r.queries.LinkCodeTaken(ctx, pgdb.LinkCodeTakenParams{
		Code:      code,
		RetiredAt: retiredSince.UnixMilli(),
	})
}

func (r *URLRepository) Delete(ctx context.Context, code string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	q := r.queries.WithTx(tx)
	if err := q.LockCode(ctx, code); err != nil {
		return fmt.Errorf("lock code: %w", err)
	}
	n, err := q.DeleteLink(ctx, code)
	if err != nil || n == 0 {
		return err
	}
	if err := q.RetireCode(ctx, pgdb.RetireCodeParams{
		Code:      code,
		RetiredAt: r.now().UnixMilli(),
	}); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *URLRepository) FindAll(ctx context.Context, params usecase.FindAllParams) ([]*domain.ShortLink, error) {
	pattern := database.ContainsPattern(params.Search)

	var (
		rows []pgdb.ShortLink
		err  error
	)
	if params.SortOrder == "asc" {
		rows, err = r.queries.ListLinksAsc(ctx, pgdb.ListLinksAscParams{
			Lower: pattern, Limit: int64(params.Limit), Offset: int64(params.Offset),
		})
	} else {
		rows, err = r.queries.ListLinksDesc(ctx, pgdb.ListLinksDescParams{
			Lower: pattern, Limit: int64(params.Limit), Offset: int64(params.Offset),
		})
	}
	if err != nil {
		return nil, err
	}

	return lo.Map(rows, func(row pgdb.ShortLink, _ int) *domain.ShortLink {
		return toDomain(row)
	}), nil
}

func (r *URLRepository) Count(ctx context.Context, params usecase.CountParams) (int64, error) {
	return r.queries.CountLinks(ctx, database.ContainsPattern(params.Search))
}

func (r *URLRepository) PurgeRetired(ctx context.Context, before time.Time) (int64, error) {
	return r.queries.PurgeRetiredCodes(ctx, before.UnixMilli())
}

func toDomain(row pgdb.ShortLink) *domain.ShortLink {
	return &domain.ShortLink{
		ID:          row.ID,
		Code:        row.Code,
		OriginalURL: row.OriginalUrl,
		CreatedAt:   time.UnixMilli(row.CreatedAt).UTC(),
	}
}
