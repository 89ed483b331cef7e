package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const createRecipe = `-- name: CreateRecipe :one
INSERT INTO recipes (author_id, name, image_key, text, cooking_time)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, author_id, name, image_key, text, cooking_time, pub_date
`

type CreateRecipeParams struct {
	AuthorID    int64
	Name        string
	ImageKey    pgtype.Text
	Text        string
	CookingTime int32
}

func (q *Queries) CreateRecipe(ctx context.Context, arg CreateRecipeParams) (Recipe, error) {
	row := q.db.QueryRow(ctx, createRecipe,
		arg.AuthorID,
		arg.Name,
		arg.ImageKey,
		arg.Text,
		arg.CookingTime,
	)
	var i Recipe
	err := row.Scan(
		&i.ID,
		&i.AuthorID,
		&i.Name,
		&i.ImageKey,
		&i.Text,
		&i.CookingTime,
		&i.PubDate,
	)
	return i, err
}

const updateRecipe = `-- name: UpdateRecipe :one
UPDATE recipes
SET name = $2,
    image_key = COALESCE($3, image_key),
    text = $4,
    cooking_time = $5
WHERE id = $1
RETURNING id, author_id, name, image_key, text, cooking_time, pub_date
`

// UpdateRecipeParams leaves the stored image untouched when ImageKey is NULL.
type UpdateRecipeParams struct {
	ID          int64
	Name        string
	ImageKey    pgtype.Text
	Text        string
	CookingTime int32
}

func (q *Queries) UpdateRecipe(ctx context.Context, arg UpdateRecipeParams) (Recipe, error) {
	row := q.db.QueryRow(ctx, updateRecipe,
		arg.ID,
		arg.Name,
		arg.ImageKey,
		arg.Text,
		arg.CookingTime,
	)
	var i Recipe
	err := row.Scan(
		&i.ID,
		&i.AuthorID,
		&i.Name,
		&i.ImageKey,
		&i.Text,
		&i.CookingTime,
		&i.PubDate,
	)
	return i, err
}

const getRecipe = `-- name: GetRecipe :one
SELECT id, author_id, name, image_key, text, cooking_time, pub_date
FROM recipes
WHERE id = $1
`

func (q *Queries) GetRecipe(ctx context.Context, id int64) (Recipe, error) {
	row := q.db.QueryRow(ctx, getRecipe, id)
	var i Recipe
	err := row.Scan(
		&i.ID,
		&i.AuthorID,
		&i.Name,
		&i.ImageKey,
		&i.Text,
		&i.CookingTime,
		&i.PubDate,
	)
	return i, err
}

const deleteRecipe = `-- name: DeleteRecipe :execrows
DELETE FROM recipes WHERE id = $1
`

func (q *Queries) DeleteRecipe(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.Exec(ctx, deleteRecipe, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

type CreateRecipeIngredientsParams struct {
	RecipeID     int64
	IngredientID int64
	Amount       int32
}

func (q *Queries) CreateRecipeIngredients(ctx context.Context, arg []CreateRecipeIngredientsParams) (int64, error) {
	return q.db.CopyFrom(ctx,
		pgx.Identifier{"recipe_ingredients"},
		[]string{"recipe_id", "ingredient_id", "amount"},
		pgx.CopyFromSlice(len(arg), func(i int) ([]any, error) {
			return []any{arg[i].RecipeID, arg[i].IngredientID, arg[i].Amount}, nil
		}),
	)
}

const deleteRecipeIngredients = `-- name: DeleteRecipeIngredients :exec
DELETE FROM recipe_ingredients WHERE recipe_id = $1
`

func (q *Queries) DeleteRecipeIngredients(ctx context.Context, recipeID int64) error {
	_, err := q.db.Exec(ctx, deleteRecipeIngredients, recipeID)
	return err
}

const addRecipeTags = `-- name: AddRecipeTags :exec
INSERT INTO recipe_tags (recipe_id, tag_id)
SELECT $1::bigint, UNNEST($2::bigint[])
`

type AddRecipeTagsParams struct {
	RecipeID int64
	TagIDs   []int64
}

func (q *Queries) AddRecipeTags(ctx context.Context, arg AddRecipeTagsParams) error {
	_, err := q.db.Exec(ctx, addRecipeTags, arg.RecipeID, arg.TagIDs)
	return err
}

const deleteRecipeTags = `-- name: DeleteRecipeTags :exec
DELETE FROM recipe_tags WHERE recipe_id = $1
`

func (q *Queries) DeleteRecipeTags(ctx context.Context, recipeID int64) error {
	_, err := q.db.Exec(ctx, deleteRecipeTags, recipeID)
	return err
}

// recipeFilter is shared by ListRecipes and CountRecipes. A NULL author, an
// empty slug list or a NULL favorited/cart owner disables that criterion.
const recipeFilter = `
WHERE ($1::bigint IS NULL OR r.author_id = $1::bigint)
  AND (CARDINALITY($2::text[]) = 0 OR EXISTS (
        SELECT 1 FROM recipe_tags rt
        JOIN tags t ON t.id = rt.tag_id
        WHERE rt.recipe_id = r.id AND t.slug = ANY($2::text[])
  ))
  AND ($3::bigint IS NULL OR EXISTS (
        SELECT 1 FROM favorites f WHERE f.recipe_id = r.id AND f.user_id = $3::bigint
  ))
  AND ($4::bigint IS NULL OR EXISTS (
        SELECT 1 FROM carts c WHERE c.recipe_id = r.id AND c.user_id = $4::bigint
  ))
`

const recipeDetailColumns = `
    r.id, r.author_id, r.name, r.image_key, r.text, r.cooking_time, r.pub_date,
    u.email, u.username, u.first_name, u.last_name,
    EXISTS (SELECT 1 FROM follows fo WHERE fo.author_id = r.author_id AND fo.user_id = $%[1]d::bigint) AS author_is_subscribed,
    EXISTS (SELECT 1 FROM favorites fa WHERE fa.recipe_id = r.id AND fa.user_id = $%[1]d::bigint) AS is_favorited,
    EXISTS (SELECT 1 FROM carts ca WHERE ca.recipe_id = r.id AND ca.user_id = $%[1]d::bigint) AS is_in_shopping_cart
`

// recipeDetailSelect binds the viewer id to the given positional parameter.
func recipeDetailSelect(viewerParam int) string {
	return fmt.Sprintf(recipeDetailColumns, viewerParam)
}

var listRecipes = `-- name: ListRecipes :many
SELECT` + recipeDetailSelect(5) + `
FROM recipes r
JOIN users u ON u.id = r.author_id` + recipeFilter + `
ORDER BY r.pub_date DESC, r.id DESC
LIMIT $6 OFFSET $7
`

type ListRecipesParams struct {
	AuthorID    pgtype.Int8
	TagSlugs    []string
	FavoritedBy pgtype.Int8
	InCartOf    pgtype.Int8
	ViewerID    pgtype.Int8
	Limit       int32
	Offset      int32
}

// RecipeDetailRow is a recipe joined with its author and the viewer-relative flags.
type RecipeDetailRow struct {
	ID                 int64
	AuthorID           int64
	Name               string
	ImageKey           pgtype.Text
	Text               string
	CookingTime        int32
	PubDate            pgtype.Timestamptz
	AuthorEmail        string
	AuthorUsername     string
	AuthorFirstName    string
	AuthorLastName     string
	AuthorIsSubscribed bool
	IsFavorited        bool
	IsInShoppingCart   bool
}

func scanRecipeDetailRow(row pgx.Row) (RecipeDetailRow, error) {
	var i RecipeDetailRow
	err := row.Scan(
		&i.ID,
		&i.AuthorID,
		&i.Name,
		&i.ImageKey,
		&i.Text,
		&i.CookingTime,
		&i.PubDate,
		&i.AuthorEmail,
		&i.AuthorUsername,
		&i.AuthorFirstName,
		&i.AuthorLastName,
		&i.AuthorIsSubscribed,
		&i.IsFavorited,
		&i.IsInShoppingCart,
	)
	return i, err
}

func (q *Queries) ListRecipes(ctx context.Context, arg ListRecipesParams) ([]RecipeDetailRow, error) {
	tagSlugs := arg.TagSlugs
	if tagSlugs == nil {
		tagSlugs = []string{}
	}
	rows, err := q.db.Query(ctx, listRecipes,
		arg.AuthorID,
		tagSlugs,
		arg.FavoritedBy,
		arg.InCartOf,
		arg.ViewerID,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RecipeDetailRow
	for rows.Next() {
		i, err := scanRecipeDetailRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

var countRecipes = `-- name: CountRecipes :one
SELECT COUNT(*)
FROM recipes r` + recipeFilter

type CountRecipesParams struct {
	AuthorID    pgtype.Int8
	TagSlugs    []string
	FavoritedBy pgtype.Int8
	InCartOf    pgtype.Int8
}

func (q *Queries) CountRecipes(ctx context.Context, arg CountRecipesParams) (int64, error) {
	tagSlugs := arg.TagSlugs
	if tagSlugs == nil {
		tagSlugs = []string{}
	}
	row := q.db.QueryRow(ctx, countRecipes,
		arg.AuthorID,
		tagSlugs,
		arg.FavoritedBy,
		arg.InCartOf,
	)
	var count int64
	err := row.Scan(&count)
	return count, err
}

var getRecipeDetail = `-- name: GetRecipeDetail :one
SELECT` + recipeDetailSelect(2) + `
FROM recipes r
JOIN users u ON u.id = r.author_id
WHERE r.id = $1
`

type GetRecipeDetailParams struct {
	ID       int64
	ViewerID pgtype.Int8
}

func (q *Queries) GetRecipeDetail(ctx context.Context, arg GetRecipeDetailParams) (RecipeDetailRow, error) {
	row := q.db.QueryRow(ctx, getRecipeDetail, arg.ID, arg.ViewerID)
	return scanRecipeDetailRow(row)
}

const getRecipeTags = `-- name: GetRecipeTags :many
SELECT rt.recipe_id, t.id, t.name, t.color, t.slug
FROM recipe_tags rt
JOIN tags t ON t.id = rt.tag_id
WHERE rt.recipe_id = ANY($1::bigint[])
ORDER BY rt.recipe_id, t.id
`

type GetRecipeTagsRow struct {
	RecipeID int64
	ID       int64
	Name     string
	Color    string
	Slug     string
}

func (q *Queries) GetRecipeTags(ctx context.Context, recipeIDs []int64) ([]GetRecipeTagsRow, error) {
	rows, err := q.db.Query(ctx, getRecipeTags, recipeIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetRecipeTagsRow
	for rows.Next() {
		var i GetRecipeTagsRow
		if err := rows.Scan(&i.RecipeID, &i.ID, &i.Name, &i.Color, &i.Slug); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getRecipeIngredients = `-- name: GetRecipeIngredients :many
SELECT ri.recipe_id, i.id, i.name, i.measurement_unit, ri.amount
FROM recipe_ingredients ri
JOIN ingredients i ON i.id = ri.ingredient_id
WHERE ri.recipe_id = ANY($1::bigint[])
ORDER BY ri.recipe_id, ri.id
`

type GetRecipeIngredientsRow struct {
	RecipeID        int64
	ID              int64
	Name            string
	MeasurementUnit string
	Amount          int32
}

func (q *Queries) GetRecipeIngredients(ctx context.Context, recipeIDs []int64) ([]GetRecipeIngredientsRow, error) {
	rows, err := q.db.Query(ctx, getRecipeIngredients, recipeIDs)
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
