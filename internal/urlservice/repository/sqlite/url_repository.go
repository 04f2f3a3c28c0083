package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"shortlink/internal/database"
	"shortlink/internal/database/sqlitedb"
	"shortlink/internal/urlservice/domain"
	"shortlink/internal/urlservice/usecase"
)

// URLRepository implements the usecase.URLRepository interface using sqlc
type URLRepository struct {
	db      *sql.DB
	queries *sqlitedb.Queries
	now     func() time.Time
}

// NewURLRepository creates a new SQLite-backed URL repository
func NewURLRepository(db *sql.DB) *URLRepository {
	return &URLRepository{
		db:      db,
		queries: sqlitedb.New(db),
		now:     time.Now,
	}
}

// Ensure URLRepository implements usecase.URLRepository at compile time
var _ usecase.URLRepository = (*URLRepository)(nil)

func (r *URLRepository) Insert(ctx context.Context, code, originalURL string, retiredSince time.Time) (*domain.ShortLink, error) {
	row, err := r.queries.InsertLink(ctx, sqlitedb.InsertLinkParams{
		Code:        code,
		OriginalUrl: originalURL,
		CreatedAt:   r.now().UnixMilli(),
		RetiredAt:   retiredSince.UnixMilli(),
	})
	if err != nil {
		// no row back means the retired-code guard filtered the insert
		if errors.Is(err, sql.ErrNoRows) || isUniqueViolation(err) {
			return nil, domain.ErrDuplicateCode
		}
		return nil, err
	}
	return toDomain(row), nil
}

func (r *URLRepository) FindByCode(ctx context.Context, code string) (*domain.ShortLink, error) {
	row, err := r.queries.GetLinkByCode(ctx, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrURLNotFound
		}
		return nil, err
	}
	return toDomain(row), nil
}

func (r *URLRepository) CodeTaken(ctx context.Context, code string, retiredSince time.Time) (bool, error) {
	return r.queries.LinkCodeTaken(ctx, sqlitedb.LinkCodeTakenParams{
		Code:      code,
		RetiredAt: retiredSince.UnixMilli(),
	})
}

// Delete removes the link and writes its tombstone in one transaction.
func (r *URLRepository) Delete(ctx context.Context, code string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	q := r.queries.WithTx(tx)
	n, err := q.DeleteLink(ctx, code)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	if err := q.RetireCode(ctx, sqlitedb.RetireCodeParams{
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
		rows []sqlitedb.ShortLink
		err  error
	)
	if params.SortOrder == "asc" {
		rows, err = r.queries.ListLinksAsc(ctx, sqlitedb.ListLinksAscParams{
			Lower: pattern, Limit: int64(params.Limit), Offset: int64(params.Offset),
		})
	} else {
		rows, err = r.queries.ListLinksDesc(ctx, sqlitedb.ListLinksDescParams{
			Lower: pattern, Limit: int64(params.Limit), Offset: int64(params.Offset),
		})
	}
	if err != nil {
		return nil, err
	}

	return lo.Map(rows, func(row sqlitedb.ShortLink, _ int) *domain.ShortLink {
		return toDomain(row)
	}), nil
}

func (r *URLRepository) Count(ctx context.Context, params usecase.CountParams) (int64, error) {
	return r.queries.CountLinks(ctx, database.ContainsPattern(params.Search))
}

func (r *URLRepository) PurgeRetired(ctx context.Context, before time.Time) (int64, error) {
	return r.queries.PurgeRetiredCodes(ctx, before.UnixMilli())
}

func toDomain(row sqlitedb.ShortLink) *domain.ShortLink {
	return &domain.ShortLink{
		ID:          row.ID,
		Code:        row.Code,
		OriginalURL: row.OriginalUrl,
		CreatedAt:   time.UnixMilli(row.CreatedAt).UTC(),
	}
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
