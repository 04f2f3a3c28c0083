package sqlite

import (
	"context"
	"database/sql"
	"math"
	"time"

	"github.com/samber/lo"

	"shortlink/internal/analytics/usecase"
	"shortlink/internal/database/sqlitedb"
)

// ClickRepository implements the usecase.ClickRepository interface using sqlc
type ClickRepository struct {
	queries *sqlitedb.Queries
}

// NewClickRepository creates a new SQLite-backed click repository
func NewClickRepository(db *sql.DB) *ClickRepository {
	return &ClickRepository{
		queries: sqlitedb.New(db),
	}
}

// Ensure ClickRepository implements usecase.ClickRepository at compile time
var _ usecase.ClickRepository = (*ClickRepository)(nil)

// Insert stores a click event with enrichment data in the database
func (r *ClickRepository) Insert(ctx context.Context, click usecase.Click) error {
	return r.queries.InsertClick(ctx, sqlitedb.InsertClickParams{
		ID:        click.ID,
		Code:      click.Code,
		ClickedAt: click.ClickedAt.UnixMilli(),
		Source:    click.Source,
		Location:  click.Location,
		Device:    click.Device,
	})
}

// CountSince returns the number of clicks for a code at or after since
func (r *ClickRepository) CountSince(ctx context.Context, code string, since time.Time) (int64, error) {
	return r.queries.CountClicksSince(ctx, sqlitedb.CountClicksSinceParams{
		Code:      code,
		ClickedAt: since.UnixMilli(),
	})
}

// CountInRange returns total clicks within [from, to)
func (r *ClickRepository) CountInRange(ctx context.Context, code string, from, to time.Time) (int64, error) {
	return r.queries.CountClicksInRange(ctx, sqlitedb.CountClicksInRangeParams{
		Code:        code,
		ClickedAt:   from.UnixMilli(),
		ClickedAt_2: to.UnixMilli(),
	})
}

func (r *ClickRepository) CountBySourceInRange(ctx context.Context, code string, from, to time.Time) ([]usecase.GroupCount, error) {
	rows, err := r.queries.CountBySourceInRange(ctx, sqlitedb.CountBySourceInRangeParams{
		Code:        code,
		ClickedAt:   from.UnixMilli(),
		ClickedAt_2: to.UnixMilli(),
	})
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(row sqlitedb.CountBySourceInRangeRow, _ int) usecase.GroupCount {
		return usecase.GroupCount{Value: row.Value, Count: row.Count}
	}), nil
}

func (r *ClickRepository) CountByLocationInRange(ctx context.Context, code string, from, to time.Time) ([]usecase.GroupCount, error) {
	rows, err := r.queries.CountByLocationInRange(ctx, sqlitedb.CountByLocationInRangeParams{
		Code:        code,
		ClickedAt:   from.UnixMilli(),
		ClickedAt_2: to.UnixMilli(),
	})
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(row sqlitedb.CountByLocationInRangeRow, _ int) usecase.GroupCount {
		return usecase.GroupCount{Value: row.Value, Count: row.Count}
	}), nil
}

func (r *ClickRepository) CountByDeviceInRange(ctx context.Context, code string, from, to time.Time) ([]usecase.GroupCount, error) {
	rows, err := r.queries.CountByDeviceInRange(ctx, sqlitedb.CountByDeviceInRangeParams{
		Code:        code,
		ClickedAt:   from.UnixMilli(),
		ClickedAt_2: to.UnixMilli(),
	})
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(row sqlitedb.CountByDeviceInRangeRow, _ int) usecase.GroupCount {
		return usecase.GroupCount{Value: row.Value, Count: row.Count}
	}), nil
}

// List returns one page of clicks, newest first
func (r *ClickRepository) List(ctx context.Context, params usecase.ListClicksParams) (*usecase.ClickPage, error) {
	// no cursor starts from the newest click
	cursorTs, cursorID := int64(math.MaxInt64), ""
	if params.After != nil {
		cursorTs, cursorID = params.After.ClickedAt.UnixMilli(), params.After.ID
	}

	// Fetch limit+1 to detect if there are more results
	rows, err := r.queries.ListClicks(ctx, sqlitedb.ListClicksParams{
		Code:        params.Code,
		ClickedAt:   params.Since.UnixMilli(),
		ClickedAt_2: cursorTs,
		ID:          cursorID,
		Limit:       int64(params.Limit + 1),
	})
	if err != nil {
		return nil, err
	}

	hasMore := len(rows) > params.Limit
	if hasMore {
		rows = rows[:params.Limit]
	}

	clicks := lo.Map(rows, func(row sqlitedb.ClickEvent, _ int) usecase.Click {
		return usecase.Click{
			ID:        row.ID,
			Code:      row.Code,
			ClickedAt: time.UnixMilli(row.ClickedAt).UTC(),
			Source:    row.Source,
			Location:  row.Location,
			Device:    row.Device,
		}
	})

	page := &usecase.ClickPage{Clicks: clicks, HasMore: hasMore}
	if hasMore && len(clicks) > 0 {
		last := clicks[len(clicks)-1]
		page.Next = &usecase.Cursor{ClickedAt: last.ClickedAt, ID: last.ID}
	}
	return page, nil
}
