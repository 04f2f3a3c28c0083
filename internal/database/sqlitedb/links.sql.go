package sqlitedb

import (
	"context"
)

const countLinks = `-- name: CountLinks :one
SELECT COUNT(*) FROM short_links WHERE LOWER(original_url) LIKE LOWER(?1) ESCAPE '\';
`

func (q *Queries) CountLinks(ctx context.Context, lower string) (int64, error) {
	row := q.db.QueryRowContext(ctx, countLinks, lower)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const deleteLink = `-- name: DeleteLink :execrows
DELETE FROM short_links WHERE code = ?1;
`

func (q *Queries) DeleteLink(ctx context.Context, code string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteLink, code)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const getLinkByCode = `-- name: GetLinkByCode :one
SELECT id, code, original_url, created_at FROM short_links WHERE code = ?1;
`

func (q *Queries) GetLinkByCode(ctx context.Context, code string) (ShortLink, error) {
	row := q.db.QueryRowContext(ctx, getLinkByCode, code)
	var i ShortLink
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.OriginalUrl,
		&i.CreatedAt,
	)
	return i, err
}

const insertLink = `-- name: InsertLink :one
INSERT INTO short_links (code, original_url, created_at)
SELECT ?1, ?2, ?3
WHERE NOT EXISTS (
    SELECT 1 FROM retired_codes WHERE retired_codes.code = ?1 AND retired_codes.retired_at >= ?4
)
RETURNING id, code, original_url, created_at;
`

type InsertLinkParams struct {
	Code        string
	OriginalUrl string
	CreatedAt   int64
	RetiredAt   int64
}

func (q *Queries) InsertLink(ctx context.Context, arg InsertLinkParams) (ShortLink, error) {
	row := q.db.QueryRowContext(ctx, insertLink,
		arg.Code,
		arg.OriginalUrl,
		arg.CreatedAt,
		arg.RetiredAt,
	)
	var i ShortLink
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.OriginalUrl,
		&i.CreatedAt,
	)
	return i, err
}

const linkCodeTaken = `-- name: LinkCodeTaken :one
SELECT EXISTS (SELECT 1 FROM short_links WHERE short_links.code = ?1)
    OR EXISTS (SELECT 1 FROM retired_codes WHERE retired_codes.code = ?1 AND retired_codes.retired_at >= ?2);
`

type LinkCodeTakenParams struct {
	Code      string
	RetiredAt int64
}

func (q *Queries) LinkCodeTaken(ctx context.Context, arg LinkCodeTakenParams) (bool, error) {
	row := q.db.QueryRowContext(ctx, linkCodeTaken, arg.Code, arg.RetiredAt)
	var column_1 bool
	err := row.Scan(&column_1)
	return column_1, err
}

const listLinksAsc = `-- name: ListLinksAsc :many
SELECT id, code, original_url, created_at FROM short_links
WHERE LOWER(original_url) LIKE LOWER(?1) ESCAPE '\'
ORDER BY created_at ASC, id ASC
LIMIT ?2 OFFSET ?3;
`

type ListLinksAscParams struct {
	Lower  string
	Limit  int64
	Offset int64
}

func (q *Queries) ListLinksAsc(ctx context.Context, arg ListLinksAscParams) ([]ShortLink, error) {
	rows, err := q.db.QueryContext(ctx, listLinksAsc, arg.Lower, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ShortLink
	for rows.Next() {
		var i ShortLink
		if err := rows.Scan(
			&i.ID,
			&i.Code,
			&i.OriginalUrl,
			&i.CreatedAt,
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

const listLinksDesc = `-- name: ListLinksDesc :many
SELECT id, code, original_url, created_at FROM short_links
WHERE LOWER(original_url) LIKE LOWER(?1) ESCAPE '\'
ORDER BY created_at DESC, id DESC
LIMIT ?2 OFFSET ?3;
`

type ListLinksDescParams struct {
	Lower  string
	Limit  int64
	Offset int64
}

func (q *Queries) ListLinksDesc(ctx context.Context, arg ListLinksDescParams) ([]ShortLink, error) {
	rows, err := q.db.QueryContext(ctx, listLinksDesc, arg.Lower, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ShortLink
	for rows.Next() {
		var i ShortLink
		if err := rows.Scan(
			&i.ID,
			&i.Code,
			&i.OriginalUrl,
			&i.CreatedAt,
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

const purgeRetiredCodes = `-- name: PurgeRetiredCodes :execrows
DELETE FROM retired_codes WHERE retired_at < ?1;
`

func (q *Queries) PurgeRetiredCodes(ctx context.Context, retiredAt int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, purgeRetiredCodes, retiredAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const retireCode = `-- name: RetireCode :exec
INSERT INTO retired_codes (code, retired_at) VALUES (?1, ?2)
ON CONFLICT (code) DO UPDATE SET retired_at = excluded.retired_at;
`

type RetireCodeParams struct {
	Code      string
	RetiredAt int64
}

func (q *Queries) RetireCode(ctx context.Context, arg RetireCodeParams) error {
	_, err := q.db.ExecContext(ctx, retireCode, arg.Code, arg.RetiredAt)
	return err
}
