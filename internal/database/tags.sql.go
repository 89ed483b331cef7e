package database

import (
	"context"
)

const listTags = `-- name: ListTags :many
SELECT id, name, color, slug FROM tags ORDER BY id
`

func (q *Queries) ListTags(ctx context.Context) ([]Tag, error) {
	rows, err := q.db.Query(ctx, listTags)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Tag
	for rows.Next() {
		var i Tag
		if err := rows.Scan(&i.ID, &i.Name, &i.Color, &i.Slug); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getTag = `-- name: GetTag :one
SELECT id, name, color, slug FROM tags WHERE id = $1
`

func (q *Queries) GetTag(ctx context.Context, id int64) (Tag, error) {
	row := q.db.QueryRow(ctx, getTag, id)
	var i Tag
	err := row.Scan(&i.ID, &i.Name, &i.Color, &i.Slug)
	return i, err
}

const getTagsByIDs = `-- name: GetTagsByIDs :many
SELECT id, name, color, slug FROM tags WHERE id = ANY($1::bigint[]) ORDER BY id
`

func (q *Queries) GetTagsByIDs(ctx context.Context, ids []int64) ([]Tag, error) {
	rows, err := q.db.Query(ctx, getTagsByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Tag
	for rows.Next() {
		var i Tag
		if err := rows.Scan(&i.ID, &i.Name, &i.Color, &i.Slug); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createTag = `-- name: CreateTag :one
INSERT INTO tags (name, color, slug)
VALUES ($1, $2, $3)
RETURNING id, name, color, slug
`

type CreateTagParams struct {
	Name  string
	Color string
	Slug  string
}

func (q *Queries) CreateTag(ctx context.Context, arg CreateTagParams) (Tag, error) {
	row := q.db.QueryRow(ctx, createTag, arg.Name, arg.Color, arg.Slug)
	var i Tag
	err := row.Scan(&i.ID, &i.Name, &i.Color, &i.Slug)
	return i, err
}

const updateTag = `-- name: UpdateTag :one
UPDATE tags SET name = $2, color = $3, slug = $4
WHERE id = $1
RETURNING id, name, color, slug
`

type UpdateTagParams struct {
	ID    int64
	Name  string
	Color string
	Slug  string
}

func (q *Queries) UpdateTag(ctx context.Context, arg UpdateTagParams) (Tag, error) {
	row := q.db.QueryRow(ctx, updateTag, arg.ID, arg.Name, arg.Color, arg.Slug)
	var i Tag
	err := row.Scan(&i.ID, &i.Name, &i.Color, &i.Slug)
	return i, err
}

const deleteTag = `-- name: DeleteTag :execrows
DELETE FROM tags WHERE id = $1
`

func (q *Queries) DeleteTag(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.Exec(ctx, deleteTag, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
