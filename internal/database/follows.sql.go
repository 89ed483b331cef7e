package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createFollow = `-- name: CreateFollow :one
INSERT INTO follows (user_id, author_id)
VALUES ($1, $2)
RETURNING id, user_id, author_id, created_at
`

type CreateFollowParams struct {
	UserID   int64
	AuthorID int64
}

func (q *Queries) CreateFollow(ctx context.Context, arg CreateFollowParams) (Follow, error) {
	row := q.db.QueryRow(ctx, createFollow, arg.UserID, arg.AuthorID)
	var i Follow
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.AuthorID,
		&i.CreatedAt,
	)
	return i, err
}

const deleteFollow = `-- name: DeleteFollow :execrows
DELETE FROM follows WHERE user_id = $1 AND author_id = $2
`

type DeleteFollowParams struct {
	UserID   int64
	AuthorID int64
}

func (q *Queries) DeleteFollow(ctx context.Context, arg DeleteFollowParams) (int64, error) {
	result, err := q.db.Exec(ctx, deleteFollow, arg.UserID, arg.AuthorID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listFollowedAuthors = `-- name: ListFollowedAuthors :many
SELECT u.id, u.email, u.username, u.first_name, u.last_name,
    (SELECT COUNT(*) FROM recipes r WHERE r.author_id = u.id) AS recipes_count
FROM follows f
JOIN users u ON u.id = f.author_id
WHERE f.user_id = $1
ORDER BY f.created_at DESC, f.id DESC
LIMIT $2 OFFSET $3
`

type ListFollowedAuthorsParams struct {
	UserID int64
	Limit  int32
	Offset int32
}

type ListFollowedAuthorsRow struct {
	ID           int64
	Email        string
	Username     string
	FirstName    string
	LastName     string
	RecipesCount int64
}

func (q *Queries) ListFollowedAuthors(ctx context.Context, arg ListFollowedAuthorsParams) ([]ListFollowedAuthorsRow, error) {
	rows, err := q.db.Query(ctx, listFollowedAuthors, arg.UserID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListFollowedAuthorsRow
	for rows.Next() {
		var i ListFollowedAuthorsRow
		if err := rows.Scan(
			&i.ID,
			&i.Email,
			&i.Username,
			&i.FirstName,
			&i.LastName,
			&i.RecipesCount,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countFollowedAuthors = `-- name: CountFollowedAuthors :one
SELECT COUNT(*) FROM follows WHERE user_id = $1
`

func (q *Queries) CountFollowedAuthors(ctx context.Context, userID int64) (int64, error) {
	row := q.db.QueryRow(ctx, countFollowedAuthors, userID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countAuthorRecipes = `-- name: CountAuthorRecipes :one
SELECT COUNT(*) FROM recipes WHERE author_id = $1
`

func (q *Queries) CountAuthorRecipes(ctx context.Context, authorID int64) (int64, error) {
	row := q.db.QueryRow(ctx, countAuthorRecipes, authorID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const listRecipesByAuthors = `-- name: ListRecipesByAuthors :many
SELECT id, author_id, name, image_key, text, cooking_time, pub_date
FROM (
    SELECT r.*, ROW_NUMBER() OVER (
        PARTITION BY r.author_id ORDER BY r.pub_date DESC, r.id DESC
    ) AS position
    FROM recipes r
    WHERE r.author_id = ANY($1::bigint[])
) ranked
WHERE $2::integer IS NULL OR position <= $2::integer
ORDER BY author_id, position
`

type ListRecipesByAuthorsParams struct {
	AuthorIDs []int64
	PerAuthor pgtype.Int4
}

func (q *Queries) ListRecipesByAuthors(ctx context.Context, arg ListRecipesByAuthorsParams) ([]Recipe, error) {
	rows, err := q.db.Query(ctx, listRecipesByAuthors, arg.AuthorIDs, arg.PerAuthor)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Recipe
	for rows.Next() {
		var i Recipe
		if err := rows.Scan(
			&i.ID,
			&i.AuthorID,
			&i.Name,
			&i.ImageKey,
			&i.Text,
			&i.CookingTime,
			&i.PubDate,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
