// Package relation manages the favorite and shopping cart markers a user
// places on recipes.
package relation

import (
	"context"
	"fmt"

	"github.com/matt-dz/foodgram/internal/apperr"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/filestore"
	"github.com/matt-dz/foodgram/internal/recipe"
	"github.com/matt-dz/foodgram/internal/viewer"
)

type Kind int

const (
	Favorite Kind = iota + 1
	Cart
)

func (k Kind) String() string {
	switch k {
	case Favorite:
		return "favorite"
	case Cart:
		return "cart"
	default:
		return "unknown"
	}
}

type Service struct {
	store database.Store
	files filestore.Store
}

func NewService(store database.Store, files filestore.Store) *Service {
	return &Service{store: store, files: files}
}

// Add marks the recipe for the viewer and returns its short projection.
func (s *Service) Add(ctx context.Context, v viewer.Viewer, kind Kind, recipeID int64) (recipe.Summary, error) {
	if !v.Authenticated() {
		return recipe.Summary{}, errAuthRequired()
	}

	var summary recipe.Summary
	err := s.store.ExecTx(ctx, func(q database.Querier) error {
		rec, err := q.GetRecipe(ctx, recipeID)
		if database.IsNotFound(err) {
			return errRecipeNotFound(recipeID)
		} else if err != nil {
			return fmt.Errorf("getting recipe: %w", err)
		}

		switch kind {
		case Favorite:
			err = q.CreateFavorite(ctx, database.CreateFavoriteParams{UserID: v.UserID, RecipeID: recipeID})
		case Cart:
			err = q.CreateCartItem(ctx, database.CreateCartItemParams{UserID: v.UserID, RecipeID: recipeID})
		default:
			return fmt.Errorf("unknown relation kind %d", kind)
		}
		if err != nil {
			return translate(err, kind, recipeID)
		}

		summary = recipe.ToSummary(rec, s.files)
		return nil
	})
	if err != nil {
		return recipe.Summary{}, err
	}
	return summary, nil
}

func (s *Service) Remove(ctx context.Context, v viewer.Viewer, kind Kind, recipeID int64) error {
	if !v.Authenticated() {
		return errAuthRequired()
	}

	return s.store.ExecTx(ctx, func(q database.Querier) error {
		if _, err := q.GetRecipe(ctx, recipeID); database.IsNotFound(err) {
			return errRecipeNotFound(recipeID)
		} else if err != nil {
			return fmt.Errorf("getting recipe: %w", err)
		}

		var (
			n   int64
			err error
		)
		switch kind {
		case Favorite:
			n, err = q.DeleteFavorite(ctx, database.DeleteFavoriteParams{UserID: v.UserID, RecipeID: recipeID})
		case Cart:
			n, err = q.DeleteCartItem(ctx, database.DeleteCartItemParams{UserID: v.UserID, RecipeID: recipeID})
		default:
			return fmt.Errorf("unknown relation kind %d", kind)
		}
		if err != nil {
			return fmt.Errorf("deleting %s: %w", kind, err)
		}
		if n == 0 {
			if kind == Favorite {
				return apperr.NotFound(apperr.CodeNotFavorited, "recipe is not in favorites")
			}
			return apperr.NotFound(apperr.CodeNotInCart, "recipe is not in the shopping cart")
		}
		return nil
	})
}

func translate(err error, kind Kind, recipeID int64) error {
	switch {
	case database.IsUniqueViolation(err, database.ConstraintUniqueFavorites):
		return apperr.Conflict(apperr.CodeAlreadyFavorited, "already favorited")
	case database.IsUniqueViolation(err, database.ConstraintUniqueCart):
		return apperr.Conflict(apperr.CodeAlreadyInCart, "already in cart")
	case database.IsForeignKeyViolation(err, ""):
		return errRecipeNotFound(recipeID)
	}
	return fmt.Errorf("creating %s: %w", kind, err)
}

func errRecipeNotFound(id int64) error {
	return apperr.NotFound(apperr.CodeRecipeNotFound, "recipe %d not found", id)
}

func errAuthRequired() error {
	return apperr.Unauthenticated(apperr.CodeAuthenticationRequired, "authentication credentials were not provided")
}
