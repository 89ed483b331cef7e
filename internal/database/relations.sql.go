package database

import (
	"context"
)

const createFavorite = `-- name: CreateFavorite :exec
INSERT INTO favorites (user_id, recipe_id) VALUES ($1, $2)
`

type CreateFavoriteParams struct {
	UserID   int64
	RecipeID int64
}

func (q *Queries) CreateFavorite(ctx context.Context, arg CreateFavoriteParams) error {
	_, err := q.db.Exec(ctx, createFavorite, arg.UserID, arg.RecipeID)
	return err
}

const deleteFavorite = `-- name: DeleteFavorite :execrows
DELETE FROM favorites WHERE user_id = $1 AND recipe_id = $2
`

type DeleteFavoriteParams struct {
	UserID   int64
	RecipeID int64
}

func (q *Queries) DeleteFavorite(ctx context.Context, arg DeleteFavoriteParams) (int64, error) {
	result, err := q.db.Exec(ctx, deleteFavorite, arg.UserID, arg.RecipeID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const createCartItem = `-- name: CreateCartItem :exec
INSERT INTO carts (user_id, recipe_id) VALUES ($1, $2)
`

type CreateCartItemParams struct {
	UserID   int64
	RecipeID int64
}

func (q *Queries) CreateCartItem(ctx context.Context, arg CreateCartItemParams) error {
	_, err := q.db.Exec(ctx, createCartItem, arg.UserID, arg.RecipeID)
	return err
}

const deleteCartItem = `-- name: DeleteCartItem :execrows
DELETE FROM carts WHERE user_id = $1 AND recipe_id = $2
`

type DeleteCartItemParams struct {
	UserID   int64
	RecipeID int64
}

func (q *Queries) DeleteCartItem(ctx context.Context, arg DeleteCartItemParams) (int64, error) {
	result, err := q.db.Exec(ctx, deleteCartItem, arg.UserID, arg.RecipeID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getCartIngredients = `-- name: GetCartIngredients :many
SELECT ri.recipe_id, i.id, i.name, i.measurement_unit, ri.amount
FROM carts c
JOIN recipe_ingredients ri ON ri.recipe_id = c.recipe_id
JOIN ingredients i ON i.id = ri.ingredient_id
WHERE c.user_id = $1
ORDER BY ri.recipe_id, ri.id
`

// GetCartIngredients returns one row per ingredient line of every recipe in
// the user's cart. Summing is left to the caller.
func (q *Queries) GetCartIngredients(ctx context.Context, userID int64) ([]GetRecipeIngredientsRow, error) {
	rows, err := q.db.Query(ctx, getCartIngredients, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetRecipeIngredientsRow
	for rows.Next() {
		var i GetRecipeIngredientsRow
		if err := rows.Scan(&i.RecipeID, &i.ID, &i.Name, &i.MeasurementUnit, &i.Amount); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
