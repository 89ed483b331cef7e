package recipe

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/matt-dz/foodgram/internal/apperr"
	"github.com/matt-dz/foodgram/internal/database"
)

const (
	MaxNameLength  = 200
	MinIngredients = 2
)

// validate runs every check against in before anything is written. All
// problems are collected; the first failing check is the headline message.
func validate(ctx context.Context, q database.Querier, in Input) error {
	verr := apperr.NewValidationError(apperr.CodeInvalidRecipe)

	if len(in.Tags) == 0 || len(in.Ingredients) == 0 {
		verr.SetMessage("missing ingredients/tags")
		if len(in.Ingredients) == 0 {
			verr.Add("ingredients", "this field is required")
		}
		if len(in.Tags) == 0 {
			verr.Add("tags", "this field is required")
		}
	} else if len(in.Ingredients) < MinIngredients {
		verr.Add("ingredients", "need at least two ingredients")
	}

	if err := validateLines(ctx, q, in.Ingredients, verr); err != nil {
		return err
	}

	switch {
	case in.CookingTime < 1:
		verr.Add("cooking_time", "cooking time must be at least 1 minute")
	case in.CookingTime > math.MaxInt32:
		verr.Add("cooking_time", "cooking time is too large")
	}

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		verr.Add("name", "this field is required")
	case utf8.RuneCountInString(name) > MaxNameLength:
		verr.Add("name", "ensure this field has no more than %d characters", MaxNameLength)
	}
	if strings.TrimSpace(in.Text) == "" {
		verr.Add("text", "this field is required")
	}

	if err := validateTags(ctx, q, in.Tags, verr); err != nil {
		return err
	}

	return verr.Err()
}

func validateLines(ctx context.Context, q database.Querier, lines []Line, verr *apperr.ValidationError) error {
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		switch {
		case line.Amount < 1:
			verr.Add("ingredients", "amount of ingredient %d must be at least 1", line.ID)
		case line.Amount > math.MaxInt32:
			verr.Add("ingredients", "amount of ingredient %d is too large", line.ID)
		}
		ids = append(ids, line.ID)
	}
	if len(ids) == 0 {
		return nil
	}

	found, err := q.GetIngredientsByIDs(ctx, uniqueIDs(ids))
	if err != nil {
		return fmt.Errorf("resolving ingredients: %w", err)
	}
	known := make(map[int64]bool, len(found))
	for _, ing := range found {
		known[ing.ID] = true
	}
	for _, id := range uniqueIDs(ids) {
		if !known[id] {
			verr.Add("ingredients", "ingredient %d does not exist", id)
		}
	}

	for _, id := range duplicateIDs(ids) {
		verr.Add("ingredients", "ingredient %d is listed more than once", id)
	}
	return nil
}

func validateTags(ctx context.Context, q database.Querier, tags []int64, verr *apperr.ValidationError) error {
	if len(tags) == 0 {
		return nil
	}
	for _, id := range duplicateIDs(tags) {
		verr.Add("tags", "tag %d is listed more than once", id)
	}

	found, err := q.GetTagsByIDs(ctx, uniqueIDs(tags))
	if err != nil {
		return fmt.Errorf("resolving tags: %w", err)
	}
	known := make(map[int64]bool, len(found))
	for _, tag := range found {
		known[tag.ID] = true
	}
	for _, id := range uniqueIDs(tags) {
		if !known[id] {
			verr.Add("tags", "tag %d does not exist", id)
		}
	}
	return nil
}

// uniqueIDs keeps the first occurrence of every id, in order.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func duplicateIDs(ids []int64) []int64 {
	counts := make(map[int64]int, len(ids))
	var dups []int64
	for _, id := range ids {
		counts[id]++
		if counts[id] == 2 {
			dups = append(dups, id)
		}
	}
	return dups
}
