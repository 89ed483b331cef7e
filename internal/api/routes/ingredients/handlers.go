// Package ingredients contains handlers for the ingredient catalog.
package ingredients

import (
	"log/slog"
	"net/http"

	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/params"
	"github.com/matt-dz/foodgram/internal/api/requestid"
	"github.com/matt-dz/foodgram/internal/env"
	mJson "github.com/matt-dz/foodgram/internal/json"
)

// HandleListIngredients godoc
//
//	@Summary		Search ingredients.
//	@Description	Case-insensitive name prefix match, ordered by name.
//	@Tags			Ingredients
//	@Produce		json
//	@Param			name	query	string	false	"Name prefix"
//	@Success		200		{array}	ingredient.Ingredient
//	@Router			/api/ingredients [GET]
func HandleListIngredients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	ingredients, err := env.Ingredients.List(ctx, r.URL.Query().Get("name"))
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	if err := mJson.WriteJSON(w, http.StatusOK, ingredients); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleGetIngredient godoc
//
//	@Summary	Get an ingredient.
//	@Tags		Ingredients
//	@Produce	json
//	@Param		id	path		int	true	"Ingredient ID"
//	@Success	200	{object}	ingredient.Ingredient
//	@Failure	404	{object}	apiError.Error	"Ingredient not found"
//	@Router		/api/ingredients/{id} [GET]
func HandleGetIngredient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	id, err := params.ID(r, "id")
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	ingredient, err := env.Ingredients.Get(ctx, id)
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	if err := mJson.WriteJSON(w, http.StatusOK, ingredient); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}
