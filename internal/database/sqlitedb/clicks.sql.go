package sqlitedb

import (
	"context"
)

const countByDeviceInRange = `-- name: CountByDeviceInRange :many
SELECT device AS value, COUNT(*) AS count FROM click_events
WHERE code = ?1 AND clicked_at >= ?2 AND clicked_at < ?3
GROUP BY device ORDER BY count DESC, value ASC;
`

type CountByDeviceInRangeParams struct {
	Code        string
	ClickedAt   int64
	ClickedAt_2 int64
}

type CountByDeviceInRangeRow struct {
	Value string
	Count int64
}

func (q *Queries) CountByDeviceInRange(ctx context.Context, arg CountByDeviceInRangeParams) ([]CountByDeviceInRangeRow, error) {
	rows, err := q.db.QueryContext(ctx, countByDeviceInRange, arg.Code, arg.ClickedAt, arg.ClickedAt_2)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CountByDeviceInRangeRow
	for rows.Next() {
		var i CountByDeviceInRangeRow
		if err := rows.Scan(&i.Value, &i.Count); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countByLocationInRange = `-- name: CountByLocationInRange :many
SELECT location AS value, COUNT(*) AS count FROM click_events
WHERE code = ?1 AND clicked_at >= ?2 AND clicked_at < ?3
GROUP BY location ORDER BY count DESC, value ASC;
`

type CountByLocationInRangeParams struct {
	Code        string
	ClickedAt   int64
	ClickedAt_2 int64
}

type CountByLocationInRangeRow struct {
	Value string
	Count int64
}

func (q *Queries) CountByLocationInRange(ctx context.Context, arg CountByLocationInRangeParams) ([]CountByLocationInRangeRow, error) {
	rows, err := q.db.QueryContext(ctx, countByLocationInRange, arg.Code, arg.ClickedAt, arg.ClickedAt_2)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CountByLocationInRangeRow
	for rows.Next() {
		var i CountByLocationInRangeRow
		if err := rows.Scan(&i.Value, &i.Count); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countBySourceInRange = `-- name: CountBySourceInRange :many
SELECT source AS value, COUNT(*) AS count FROM click_events
WHERE code = ?1 AND clicked_at >= ?2 AND clicked_at < ?3
GROUP BY source ORDER BY count DESC, value ASC;
`

type CountBySourceInRangeParams struct {
	Code        string
	ClickedAt   int64
	ClickedAt_2 int64
}

type CountBySourceInRangeRow struct {
	Value string
	Count int64
}

func (q *Queries) CountBySourceInRange(ctx context.Context, arg CountBySourceInRangeParams) ([]CountBySourceInRangeRow, error) {
	rows, err := q.db.QueryContext(ctx, countBySourceInRange, arg.Code, arg.ClickedAt, arg.ClickedAt_2)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CountBySourceInRangeRow
	for rows.Next() {
		var i CountBySourceInRangeRow
		if err := rows.Scan(&i.Value, &i.Count); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countClicksInRange = `-- name: CountClicksInRange :one
SELECT COUNT(*) FROM click_events WHERE code = ?1 AND clicked_at >= ?2 AND clicked_at < ?3;
`

type CountClicksInRangeParams struct {
	Code        string
	ClickedAt   int64
	ClickedAt_2 int64
}

func (q *Queries) CountClicksInRange(ctx context.Context, arg CountClicksInRangeParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, countClicksInRange, arg.Code, arg.ClickedAt, arg.ClickedAt_2)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countClicksSince = `-- name: CountClicksSince :one
SELECT COUNT(*) FROM click_events WHERE code = ?1 AND clicked_at >= ?2;
`

type CountClicksSinceParams struct {
	Code      string
	ClickedAt int64
}

func (q *Queries) CountClicksSince(ctx context.Context, arg CountClicksSinceParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, countClicksSince, arg.Code, arg.ClickedAt)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const insertClick = `-- name: InsertClick :exec
INSERT INTO click_events (id, code, clicked_at, source, location, device)
VALUES (?1, ?2, ?3, ?4, ?5, ?6);
`

type InsertClickParams struct {
	ID        string
	Code      string
	ClickedAt int64
	Source    string
	Location  string
	Device    string
}

func (q *Queries) InsertClick(ctx context.Context, arg InsertClickParams) error {
	_, err := q.db.ExecContext(ctx, insertClick,
		arg.ID,
		arg.Code,
		arg.ClickedAt,
		arg.Source,
		arg.Location,
		arg.Device,
	)
	return err
}

const listClicks = `-- name: ListClicks :many
SELECT id, code, clicked_at, source, location, device FROM click_events
WHERE code = ?1 AND clicked_at >= ?2
  AND (clicked_at < ?3 OR (clicked_at = ?3 AND id < ?4))
ORDER BY clicked_at DESC, id DESC
LIMIT ?5;
`

type ListClicksParams struct {
	Code        string
	ClickedAt   int64
	ClickedAt_2 int64
	ID          string
	Limit       int64
}

func (q *Queries) ListClicks(ctx context.Context, arg ListClicksParams) ([]ClickEvent, error) {
	rows, err := q.db.QueryContext(ctx, listClicks,
		arg.Code,
		arg.ClickedAt,
		arg.ClickedAt_2,
		arg.ID,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ClickEvent
	for rows.Next() {
		var i ClickEvent
		if err := rows.Scan(
			&i.ID,
			&i.Code,
			&i.ClickedAt,
			&i.Source,
			&i.Location,
			&i.Device,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
