package recipe

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/pagination"
	"github.com/matt-dz/foodgram/internal/viewer"
)

// Criteria narrows a recipe listing. Criteria combine with AND; Tags match
// when a recipe carries any of the slugs. IsFavorited and IsInShoppingCart
// only restrict when true and the viewer is authenticated.
type Criteria struct {
	Author           *int64
	Tags             []string
	IsFavorited      bool
	IsInShoppingCart bool
}

func (c Criteria) filter(v viewer.Viewer) database.CountRecipesParams {
	params := database.CountRecipesParams{TagSlugs: c.Tags}
	if c.Author != nil {
		params.AuthorID = pgtype.Int8{Int64: *c.Author, Valid: true}
	}
	if v.Authenticated() {
		if c.IsFavorited {
			params.FavoritedBy = v.NullableID()
		}
		if c.IsInShoppingCart {
			params.InCartOf = v.NullableID()
		}
	}
	return params
}

// List returns the recipes matching c, newest first.
func (s *Service) List(ctx context.Context, v viewer.Viewer, c Criteria, page pagination.Page) (pagination.Result[Detail], error) {
	filter := c.filter(v)

	count, err := s.store.CountRecipes(ctx, filter)
	if err != nil {
		return pagination.Result[Detail]{}, fmt.Errorf("counting recipes: %w", err)
	}

	rows, err := s.store.ListRecipes(ctx, database.ListRecipesParams{
		AuthorID:    filter.AuthorID,
		TagSlugs:    filter.TagSlugs,
		FavoritedBy: filter.FavoritedBy,
		InCartOf:    filter.InCartOf,
		ViewerID:    v.NullableID(),
		Limit:       page.SQLLimit(),
		Offset:      page.Offset(),
	})
	if err != nil {
		return pagination.Result[Detail]{}, fmt.Errorf("listing recipes: %w", err)
	}

	details, err := s.hydrate(ctx, rows)
	if err != nil {
		return pagination.Result[Detail]{}, err
	}
	return pagination.NewResult(count, details), nil
}
