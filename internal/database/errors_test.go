package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestConstraintViolations(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: ConstraintUniqueFavorites}
	check := &pgconn.PgError{Code: "23514", ConstraintName: ConstraintFollowsNoSelf}
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "recipe_ingredients_ingredient_id_fkey"}

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"unique matches constraint", IsUniqueViolation(unique, ConstraintUniqueFavorites), true},
		{"unique matches any", IsUniqueViolation(unique, ""), true},
		{"unique other constraint", IsUniqueViolation(unique, ConstraintUniqueCart), false},
		{"unique wrapped", IsUniqueViolation(fmt.Errorf("creating favorite: %w", unique), ConstraintUniqueFavorites), true},
		{"check is not unique", IsUniqueViolation(check, ""), false},
		{"check matches", IsCheckViolation(check, ConstraintFollowsNoSelf), true},
		{"foreign key any", IsForeignKeyViolation(fk, ""), true},
		{"plain error", IsUniqueViolation(errors.New("boom"), ""), false},
		{"nil error", IsCheckViolation(nil, ""), false},
		{"no rows", IsNotFound(fmt.Errorf("getting recipe: %w", pgx.ErrNoRows)), true},
		{"not no rows", IsNotFound(unique), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}
