// Package ingredient reads and loads the ingredient catalog.
package ingredient

import (
	"context"
	"fmt"
	"strings"

	"github.com/matt-dz/foodgram/internal/apperr"
	"github.com/matt-dz/foodgram/internal/database"
)

const MaxFieldLength = 200

type Ingredient struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

type Service struct {
	store database.Store
}

func NewService(store database.Store) *Service {
	return &Service{store: store}
}

// List returns the ingredients whose name starts with prefix, ignoring case,
// ordered by name. An empty prefix matches everything.
func (s *Service) List(ctx context.Context, prefix string) ([]Ingredient, error) {
	rows, err := s.store.SearchIngredients(ctx, escapeLike(strings.TrimSpace(prefix)))
	if err != nil {
		return nil, fmt.Errorf("searching ingredients: %w", err)
	}
	out := make([]Ingredient, 0, len(rows))
	for _, row := range rows {
		out = append(out, Ingredient(row))
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Ingredient, error) {
	row, err := s.store.GetIngredient(ctx, id)
	if database.IsNotFound(err) {
		return Ingredient{}, apperr.NotFound(apperr.CodeIngredientNotFound, "ingredient %d not found", id)
	} else if err != nil {
		return Ingredient{}, fmt.Errorf("getting ingredient: %w", err)
	}
	return Ingredient(row), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
