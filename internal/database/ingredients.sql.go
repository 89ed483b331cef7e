package database

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const searchIngredients = `-- name: SearchIngredients :many
SELECT id, name, measurement_unit
FROM ingredients
WHERE LOWER(name) LIKE LOWER($1::text) || '%'
ORDER BY name, id
`

// SearchIngredients expects an already escaped LIKE prefix.
func (q *Queries) SearchIngredients(ctx context.Context, prefix string) ([]Ingredient, error) {
	rows, err := q.db.Query(ctx, searchIngredients, prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Ingredient
	for rows.Next() {
		var i Ingredient
		if err := rows.Scan(&i.ID, &i.Name, &i.MeasurementUnit); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getIngredient = `-- name: GetIngredient :one
SELECT id, name, measurement_unit FROM ingredients WHERE id = $1
`

func (q *Queries) GetIngredient(ctx context.Context, id int64) (Ingredient, error) {
	row := q.db.QueryRow(ctx, getIngredient, id)
	var i Ingredient
	err := row.Scan(&i.ID, &i.Name, &i.MeasurementUnit)
	return i, err
}

const getIngredientsByIDs = `-- name: GetIngredientsByIDs :many
SELECT id, name, measurement_unit FROM ingredients WHERE id = ANY($1::bigint[])
`

func (q *Queries) GetIngredientsByIDs(ctx context.Context, ids []int64) ([]Ingredient, error) {
	rows, err := q.db.Query(ctx, getIngredientsByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Ingredient
	for rows.Next() {
		var i Ingredient
		if err := rows.Scan(&i.ID, &i.Name, &i.MeasurementUnit); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type CreateIngredientsParams struct {
	Name            string
	MeasurementUnit string
}

// CreateIngredients bulk loads the catalog with COPY.
func (q *Queries) CreateIngredients(ctx context.Context, arg []CreateIngredientsParams) (int64, error) {
	return q.db.CopyFrom(ctx,
		pgx.Identifier{"ingredients"},
		[]string{"name", "measurement_unit"},
		pgx.CopyFromSlice(len(arg), func(i int) ([]any, error) {
			return []any{arg[i].Name, arg[i].MeasurementUnit}, nil
		}),
	)
}
