package recipe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/matt-dz/foodgram/internal/apperr"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/fileserver"
	"github.com/matt-dz/foodgram/internal/filestore"
	"github.com/matt-dz/foodgram/internal/viewer"
)

type Service struct {
	store  database.Store
	files  filestore.Store
	logger *slog.Logger
}

func NewService(store database.Store, files filestore.Store, logger *slog.Logger) *Service {
	return &Service{store: store, files: files, logger: logger}
}

func (s *Service) Create(ctx context.Context, v viewer.Viewer, in Input) (Detail, error) {
	if !v.Authenticated() {
		return Detail{}, errAuthRequired()
	}
	if err := validate(ctx, s.store, in); err != nil {
		return Detail{}, err
	}

	imageKey, err := s.storeImage(ctx, in)
	if err != nil {
		return Detail{}, err
	}

	var recipeID int64
	err = s.store.ExecTx(ctx, func(q database.Querier) error {
		rec, err := q.CreateRecipe(ctx, database.CreateRecipeParams{
			AuthorID:    v.UserID,
			Name:        strings.TrimSpace(in.Name),
			ImageKey:    imageKey,
			Text:        in.Text,
			CookingTime: int32(in.CookingTime),
		})
		if err != nil {
			return fmt.Errorf("creating recipe: %w", err)
		}
		recipeID = rec.ID
		return writeComposition(ctx, q, rec.ID, in)
	})
	if err != nil {
		s.discardImage(ctx, imageKey)
		return Detail{}, translateWriteError(err)
	}

	return s.Get(ctx, v, recipeID)
}

// Update replaces every field of the recipe. The ingredient lines and tags
// are deleted and inserted again; the stored image is kept unless a new one
// is supplied.
func (s *Service) Update(ctx context.Context, v viewer.Viewer, id int64, in Input) (Detail, error) {
	if !v.Authenticated() {
		return Detail{}, errAuthRequired()
	}
	current, err := s.authorize(ctx, v, id)
	if err != nil {
		return Detail{}, err
	}
	if err := validate(ctx, s.store, in); err != nil {
		return Detail{}, err
	}

	imageKey, err := s.storeImage(ctx, in)
	if err != nil {
		return Detail{}, err
	}

	err = s.store.ExecTx(ctx, func(q database.Querier) error {
		if _, err := q.UpdateRecipe(ctx, database.UpdateRecipeParams{
			ID:          id,
			Name:        strings.TrimSpace(in.Name),
			ImageKey:    imageKey,
			Text:        in.Text,
			CookingTime: int32(in.CookingTime),
		}); err != nil {
			return fmt.Errorf("updating recipe: %w", err)
		}
		if err := q.DeleteRecipeIngredients(ctx, id); err != nil {
			return fmt.Errorf("deleting ingredient lines: %w", err)
		}
		if err := q.DeleteRecipeTags(ctx, id); err != nil {
			return fmt.Errorf("deleting tags: %w", err)
		}
		return writeComposition(ctx, q, id, in)
	})
	if err != nil {
		s.discardImage(ctx, imageKey)
		return Detail{}, translateWriteError(err)
	}

	if imageKey.Valid {
		s.discardImage(ctx, current.ImageKey)
	}

	return s.Get(ctx, v, id)
}

func (s *Service) Delete(ctx context.Context, v viewer.Viewer, id int64) error {
	if !v.Authenticated() {
		return errAuthRequired()
	}
	current, err := s.authorize(ctx, v, id)
	if err != nil {
		return err
	}

	n, err := s.store.DeleteRecipe(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting recipe: %w", err)
	}
	if n == 0 {
		return errRecipeNotFound(id)
	}

	s.discardImage(ctx, current.ImageKey)
	return nil
}

func (s *Service) Get(ctx context.Context, v viewer.Viewer, id int64) (Detail, error) {
	row, err := s.store.GetRecipeDetail(ctx, database.GetRecipeDetailParams{
		ID:       id,
		ViewerID: v.NullableID(),
	})
	if database.IsNotFound(err) {
		return Detail{}, errRecipeNotFound(id)
	} else if err != nil {
		return Detail{}, fmt.Errorf("getting recipe: %w", err)
	}

	details, err := s.hydrate(ctx, []database.RecipeDetailRow{row})
	if err != nil {
		return Detail{}, err
	}
	return details[0], nil
}

// Summary returns the short projection of a recipe.
func (s *Service) Summary(ctx context.Context, id int64) (Summary, error) {
	rec, err := s.store.GetRecipe(ctx, id)
	if database.IsNotFound(err) {
		return Summary{}, errRecipeNotFound(id)
	} else if err != nil {
		return Summary{}, fmt.Errorf("getting recipe: %w", err)
	}
	return ToSummary(rec, s.files), nil
}

// authorize loads the recipe and checks that v may modify it.
func (s *Service) authorize(ctx context.Context, v viewer.Viewer, id int64) (database.Recipe, error) {
	rec, err := s.store.GetRecipe(ctx, id)
	if database.IsNotFound(err) {
		return database.Recipe{}, errRecipeNotFound(id)
	} else if err != nil {
		return database.Recipe{}, fmt.Errorf("getting recipe: %w", err)
	}
	if !v.CanModify(rec.AuthorID) {
		return database.Recipe{}, apperr.Forbidden(apperr.CodeRecipeNotOwned, "you do not have permission to modify this recipe")
	}
	return rec, nil
}

func (s *Service) hydrate(ctx context.Context, rows []database.RecipeDetailRow) ([]Detail, error) {
	details := make([]Detail, 0, len(rows))
	if len(rows) == 0 {
		return details, nil
	}

	ids := make([]int64, 0, len(rows))
	index := make(map[int64]int, len(rows))
	for i, row := range rows {
		ids = append(ids, row.ID)
		index[row.ID] = i
		details = append(details, toDetail(row, s.files))
	}

	tags, err := s.store.GetRecipeTags(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("getting recipe tags: %w", err)
	}
	for _, t := range tags {
		d := &details[index[t.RecipeID]]
		d.Tags = append(d.Tags, Tag{ID: t.ID, Name: t.Name, Color: t.Color, Slug: t.Slug})
	}

	lines, err := s.store.GetRecipeIngredients(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("getting recipe ingredients: %w", err)
	}
	for _, l := range lines {
		d := &details[index[l.RecipeID]]
		d.Ingredients = append(d.Ingredients, Ingredient{
			ID:              l.ID,
			Name:            l.Name,
			MeasurementUnit: l.MeasurementUnit,
			Amount:          l.Amount,
		})
	}

	return details, nil
}

func (s *Service) storeImage(ctx context.Context, in Input) (pgtype.Text, error) {
	if in.Image == nil {
		return pgtype.Text{}, nil
	}
	key, err := s.files.WriteRecipeImage(ctx, in.Image.Suffix, in.Image.Data)
	if err != nil {
		return pgtype.Text{}, fmt.Errorf("storing recipe image: %w", err)
	}
	return pgtype.Text{String: key, Valid: true}, nil
}

func (s *Service) discardImage(ctx context.Context, key pgtype.Text) {
	if !key.Valid || key.String == "" {
		return
	}
	if err := s.files.DeleteKey(ctx, key.String); err != nil && !errors.Is(err, fileserver.ErrNotExist) {
		s.logger.WarnContext(ctx, "failed to delete recipe image",
			slog.String("key", key.String), slog.Any("error", err))
	}
}

func writeComposition(ctx context.Context, q database.Querier, recipeID int64, in Input) error {
	lines := make([]database.CreateRecipeIngredientsParams, 0, len(in.Ingredients))
	for _, l := range in.Ingredients {
		lines = append(lines, database.CreateRecipeIngredientsParams{
			RecipeID:     recipeID,
			IngredientID: l.ID,
			Amount:       int32(l.Amount),
		})
	}
	if _, err := q.CreateRecipeIngredients(ctx, lines); err != nil {
		return fmt.Errorf("creating ingredient lines: %w", err)
	}
	if err := q.AddRecipeTags(ctx, database.AddRecipeTagsParams{
		RecipeID: recipeID,
		TagIDs:   in.Tags,
	}); err != nil {
		return fmt.Errorf("adding tags: %w", err)
	}
	return nil
}

// translateWriteError maps constraint violations raised by concurrent writers
// onto domain errors.
func translateWriteError(err error) error {
	switch {
	case database.IsUniqueViolation(err, database.ConstraintRecipeIngredientExists):
		return apperr.Conflict(apperr.CodeDuplicateIngredient, "an ingredient appears twice in the recipe")
	case database.IsUniqueViolation(err, database.ConstraintRecipeTagsPK):
		return apperr.Conflict(apperr.CodeDuplicateTag, "a tag appears twice in the recipe")
	case database.IsCheckViolation(err, database.ConstraintAmountGte1):
		return apperr.Invalid(apperr.CodeInvalidRecipe, "ingredients", "amount must be at least 1")
	case database.IsCheckViolation(err, database.ConstraintCookingTimeGte1):
		return apperr.Invalid(apperr.CodeInvalidRecipe, "cooking_time", "cooking time must be at least 1 minute")
	case database.IsForeignKeyViolation(err, ""):
		return apperr.NotFound(apperr.CodeRecipeNotFound, "a referenced ingredient, tag or recipe no longer exists")
	case database.IsNotFound(err):
		return apperr.NotFound(apperr.CodeRecipeNotFound, "recipe not found")
	}
	return err
}

func errRecipeNotFound(id int64) error {
	return apperr.NotFound(apperr.CodeRecipeNotFound, "recipe %d not found", id)
}

func errAuthRequired() error {
	return apperr.Unauthenticated(apperr.CodeAuthenticationRequired, "authentication credentials were not provided")
}
