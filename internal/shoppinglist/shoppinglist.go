// Package shoppinglist sums the ingredients of every recipe in a user's cart
// and renders the result.
package shoppinglist

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/matt-dz/foodgram/internal/apperr"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/viewer"
)

// Item is one line of a shopping list.
type Item struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	TotalAmount     int64  `json:"total_amount"`
}

type key struct {
	name string
	unit string
}

// Aggregate groups rows by ingredient name and unit and sums their amounts.
// Items are sorted by name, then unit, ignoring case.
func Aggregate(rows []database.GetRecipeIngredientsRow) []Item {
	totals := make(map[key]*Item, len(rows))
	for _, row := range rows {
		k := key{name: row.Name, unit: row.MeasurementUnit}
		item, ok := totals[k]
		if !ok {
			item = &Item{Name: row.Name, MeasurementUnit: row.MeasurementUnit}
			totals[k] = item
		}
		item.TotalAmount += int64(row.Amount)
	}

	items := make([]Item, 0, len(totals))
	for _, item := range totals {
		items = append(items, *item)
	}
	slices.SortFunc(items, func(a, b Item) int {
		return cmp.Or(
			cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
			cmp.Compare(strings.ToLower(a.MeasurementUnit), strings.ToLower(b.MeasurementUnit)),
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(a.MeasurementUnit, b.MeasurementUnit),
		)
	})
	return items
}

type Service struct {
	store database.Querier
}

func NewService(store database.Querier) *Service {
	return &Service{store: store}
}

// Build returns the aggregated shopping list of the viewer's cart.
func (s *Service) Build(ctx context.Context, v viewer.Viewer) ([]Item, error) {
	if !v.Authenticated() {
		return nil, apperr.Unauthenticated(apperr.CodeAuthenticationRequired, "authentication credentials were not provided")
	}
	rows, err := s.store.GetCartIngredients(ctx, v.UserID)
	if err != nil {
		return nil, fmt.Errorf("getting cart ingredients: %w", err)
	}
	return Aggregate(rows), nil
}
