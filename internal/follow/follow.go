// Package follow manages subscriptions between users and authors.
package follow

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/matt-dz/foodgram/internal/apperr"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/filestore"
	"github.com/matt-dz/foodgram/internal/pagination"
	"github.com/matt-dz/foodgram/internal/recipe"
	"github.com/matt-dz/foodgram/internal/user"
	"github.com/matt-dz/foodgram/internal/viewer"
)

// Following is a followed author together with a preview of their recipes.
type Following struct {
	user.Profile
	Recipes      []recipe.Summary `json:"recipes"`
	RecipesCount int64            `json:"recipes_count"`
}

type Service struct {
	store database.Store
	files filestore.Store
}

func NewService(store database.Store, files filestore.Store) *Service {
	return &Service{store: store, files: files}
}

// Follow subscribes the viewer to authorID. recipesLimit caps the recipe
// preview in the result; nil means every recipe.
func (s *Service) Follow(ctx context.Context, v viewer.Viewer, authorID int64, recipesLimit *int) (Following, error) {
	if !v.Authenticated() {
		return Following{}, errAuthRequired()
	}
	if v.UserID == authorID {
		return Following{}, errSelfFollow()
	}
	perAuthor, err := previewLimit(recipesLimit)
	if err != nil {
		return Following{}, err
	}

	var out Following
	err = s.store.ExecTx(ctx, func(q database.Querier) error {
		author, err := q.GetUser(ctx, authorID)
		if database.IsNotFound(err) {
			return errUserNotFound(authorID)
		} else if err != nil {
			return fmt.Errorf("getting author: %w", err)
		}

		if _, err := q.CreateFollow(ctx, database.CreateFollowParams{
			UserID:   v.UserID,
			AuthorID: authorID,
		}); err != nil {
			return translate(err, authorID)
		}

		count, err := q.CountAuthorRecipes(ctx, authorID)
		if err != nil {
			return fmt.Errorf("counting recipes: %w", err)
		}
		recipes, err := q.ListRecipesByAuthors(ctx, database.ListRecipesByAuthorsParams{
			AuthorIDs: []int64{authorID},
			PerAuthor: perAuthor,
		})
		if err != nil {
			return fmt.Errorf("listing recipes: %w", err)
		}

		out = Following{
			Profile: user.Profile{
				ID:           author.ID,
				Email:        author.Email,
				Username:     author.Username,
				FirstName:    author.FirstName,
				LastName:     author.LastName,
				IsSubscribed: true,
			},
			Recipes:      s.summaries(recipes),
			RecipesCount: count,
		}
		return nil
	})
	if err != nil {
		return Following{}, err
	}
	return out, nil
}

func (s *Service) Unfollow(ctx context.Context, v viewer.Viewer, authorID int64) error {
	if !v.Authenticated() {
		return errAuthRequired()
	}

	return s.store.ExecTx(ctx, func(q database.Querier) error {
		if _, err := q.GetUser(ctx, authorID); database.IsNotFound(err) {
			return errUserNotFound(authorID)
		} else if err != nil {
			return fmt.Errorf("getting author: %w", err)
		}

		n, err := q.DeleteFollow(ctx, database.DeleteFollowParams{UserID: v.UserID, AuthorID: authorID})
		if err != nil {
			return fmt.Errorf("deleting follow: %w", err)
		}
		if n == 0 {
			return apperr.NotFound(apperr.CodeNotSubscribed, "you are not subscribed to this user")
		}
		return nil
	})
}

// ListFollowing pages through the authors the viewer follows, most recent
// subscription first.
func (s *Service) ListFollowing(
	ctx context.Context, v viewer.Viewer, recipesLimit *int, page pagination.Page,
) (pagination.Result[Following], error) {
	if !v.Authenticated() {
		return pagination.Result[Following]{}, errAuthRequired()
	}
	perAuthor, err := previewLimit(recipesLimit)
	if err != nil {
		return pagination.Result[Following]{}, err
	}

	count, err := s.store.CountFollowedAuthors(ctx, v.UserID)
	if err != nil {
		return pagination.Result[Following]{}, fmt.Errorf("counting followed authors: %w", err)
	}
	authors, err := s.store.ListFollowedAuthors(ctx, database.ListFollowedAuthorsParams{
		UserID: v.UserID,
		Limit:  page.SQLLimit(),
		Offset: page.Offset(),
	})
	if err != nil {
		return pagination.Result[Following]{}, fmt.Errorf("listing followed authors: %w", err)
	}
	if len(authors) == 0 {
		return pagination.NewResult[Following](count, nil), nil
	}

	ids := make([]int64, len(authors))
	for i, a := range authors {
		ids[i] = a.ID
	}
	recipes, err := s.store.ListRecipesByAuthors(ctx, database.ListRecipesByAuthorsParams{
		AuthorIDs: ids,
		PerAuthor: perAuthor,
	})
	if err != nil {
		return pagination.Result[Following]{}, fmt.Errorf("listing recipes: %w", err)
	}

	byAuthor := make(map[int64][]database.Recipe, len(authors))
	for _, r := range recipes {
		byAuthor[r.AuthorID] = append(byAuthor[r.AuthorID], r)
	}

	results := make([]Following, 0, len(authors))
	for _, a := range authors {
		results = append(results, Following{
			Profile: user.Profile{
				ID:           a.ID,
				Email:        a.Email,
				Username:     a.Username,
				FirstName:    a.FirstName,
				LastName:     a.LastName,
				IsSubscribed: true,
			},
			Recipes:      s.summaries(byAuthor[a.ID]),
			RecipesCount: a.RecipesCount,
		})
	}
	return pagination.NewResult(count, results), nil
}

func (s *Service) summaries(recipes []database.Recipe) []recipe.Summary {
	out := make([]recipe.Summary, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, recipe.ToSummary(r, s.files))
	}
	return out
}

// previewLimit maps recipes_limit to the per-author row cap. No limit means
// every recipe; a limit above pagination.MaxLimit is clamped to it.
func previewLimit(limit *int) (pgtype.Int4, error) {
	if limit == nil {
		return pgtype.Int4{}, nil
	}
	if *limit < 0 {
		return pgtype.Int4{}, apperr.Invalid(apperr.CodeBadRequest, "recipes_limit", "recipes_limit must not be negative")
	}
	return pgtype.Int4{Int32: int32(min(*limit, pagination.MaxLimit)), Valid: true}, nil
}

func translate(err error, authorID int64) error {
	switch {
	case database.IsUniqueViolation(err, database.ConstraintFollowsUniquePair):
		return apperr.Conflict(apperr.CodeAlreadySubscribed, "you are already subscribed to this user")
	case database.IsCheckViolation(err, database.ConstraintFollowsNoSelf):
		return errSelfFollow()
	case database.IsForeignKeyViolation(err, ""):
		return errUserNotFound(authorID)
	}
	return fmt.Errorf("creating follow: %w", err)
}

func errSelfFollow() error {
	return apperr.Invalid(apperr.CodeSelfFollow, "author", "you cannot subscribe to yourself")
}

func errUserNotFound(id int64) error {
	return apperr.NotFound(apperr.CodeUserNotFound, "user %d not found", id)
}

func errAuthRequired() error {
	return apperr.Unauthenticated(apperr.CodeAuthenticationRequired, "authentication credentials were not provided")
}
