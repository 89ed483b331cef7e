package database

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes of the constraint violations the services translate.
const (
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
	codeForeignKeyViolation = "23503"
)

// Constraint names from internal/sql/schema.sql.
const (
	ConstraintUsersUniqueEmail       = "users_unique_email"
	ConstraintUsersUniqueUsername    = "users_unique_username"
	ConstraintFollowsUniquePair      = "follows_unique_pair"
	ConstraintFollowsNoSelf          = "follows_no_self"
	ConstraintTagsUniqueSlug         = "tags_unique_slug"
	ConstraintRecipeIngredientExists = "recipe_ingredient_exists"
	ConstraintAmountGte1             = "amount_gte_1"
	ConstraintCookingTimeGte1        = "recipes_cooking_time_gte_1"
	ConstraintRecipeTagsPK           = "recipe_tags_pk"
	ConstraintUniqueFavorites        = "unique_favorites"
	ConstraintUniqueCart             = "unique_cart"
)

func isViolation(err error, code, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != code {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// IsUniqueViolation reports whether err is a unique violation of the named
// constraint. An empty constraint matches any unique violation.
func IsUniqueViolation(err error, constraint string) bool {
	return isViolation(err, codeUniqueViolation, constraint)
}

// IsCheckViolation reports whether err is a check violation of the named constraint.
func IsCheckViolation(err error, constraint string) bool {
	return isViolation(err, codeCheckViolation, constraint)
}

// IsForeignKeyViolation reports whether err is a foreign key violation.
func IsForeignKeyViolation(err error, constraint string) bool {
	return isViolation(err, codeForeignKeyViolation, constraint)
}

// IsNotFound reports whether a :one query found no row.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
