// Package recipes contains handlers for the recipes endpoint.
package recipes

import (
	"bytes"
	"log/slog"
	"net/http"

	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/params"
	"github.com/matt-dz/foodgram/internal/api/requestid"
	"github.com/matt-dz/foodgram/internal/apperr"
	"github.com/matt-dz/foodgram/internal/env"
	mJson "github.com/matt-dz/foodgram/internal/json"
	"github.com/matt-dz/foodgram/internal/pagination"
	"github.com/matt-dz/foodgram/internal/recipe"
	"github.com/matt-dz/foodgram/internal/relation"
	"github.com/matt-dz/foodgram/internal/viewer"
)

const (
	formatPDF  = "pdf"
	formatText = "txt"
)

// HandleListRecipes godoc
//
//	@Summary		List recipes.
//	@Description	Filters combine with AND; tags match any of the given slugs.
//	@Description	is_favorited and is_in_shopping_cart are ignored for anonymous viewers.
//	@Tags			Recipes
//	@Produce		json
//	@Param			author				query		int			false	"Author ID"
//	@Param			tags				query		[]string	false	"Tag slugs"	collectionFormat(multi)
//	@Param			is_favorited		query		string		false	"1/0/true/false"
//	@Param			is_in_shopping_cart	query		string		false	"1/0/true/false"
//	@Param			page				query		int			false	"Page number"
//	@Param			limit				query		int			false	"Page size"
//	@Success		200					{object}	pagination.Result[recipe.Detail]
//	@Failure		400					{object}	apiError.Error	"Invalid filter"
//	@Router			/api/recipes [GET]
func HandleListRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	criteria, page, err := readListQuery(r, env.Config.Pagination.DefaultLimit)
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	result, err := env.Recipes.List(ctx, viewer.FromCtx(ctx), criteria, page)
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	result = result.WithLinks(params.RequestURL(r, env.Config.HostOrigin), page)
	if err := mJson.WriteJSON(w, http.StatusOK, result); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

func readListQuery(r *http.Request, defaultLimit int) (recipe.Criteria, pagination.Page, error) {
	query := r.URL.Query()

	page, err := pagination.FromQueryWithDefault(query, defaultLimit)
	if err != nil {
		return recipe.Criteria{}, pagination.Page{}, err
	}
	author, err := params.OptionalID(query, "author")
	if err != nil {
		return recipe.Criteria{}, pagination.Page{}, err
	}
	favorited, err := params.Bool(query, "is_favorited")
	if err != nil {
		return recipe.Criteria{}, pagination.Page{}, err
	}
	inCart, err := params.Bool(query, "is_in_shopping_cart")
	if err != nil {
		return recipe.Criteria{}, pagination.Page{}, err
	}

	return recipe.Criteria{
		Author:           author,
		Tags:             params.Strings(query, "tags"),
		IsFavorited:      favorited,
		IsInShoppingCart: inCart,
	}, page, nil
}

// HandleGetRecipe godoc
//
//	@Summary	Get a recipe.
//	@Tags		Recipes
//	@Produce	json
//	@Param		id	path		int	true	"Recipe ID"
//	@Success	200	{object}	recipe.Detail
//	@Failure	404	{object}	apiError.Error	"Recipe not found"
//	@Router		/api/recipes/{id} [GET]
func HandleGetRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	id, err := params.ID(r, "id")
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	detail, err := env.Recipes.Get(ctx, viewer.FromCtx(ctx), id)
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	if err := mJson.WriteJSON(w, http.StatusOK, detail); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleCreateRecipe godoc
//
//	@Summary		Create a recipe.
//	@Description	Accepts JSON with a data URI image, or multipart/form-data with
//	@Description	ingredients as a JSON array and an image file.
//	@Tags			Recipes
//	@Accept			json,mpfd
//	@Produce		json
//	@Param			request	body		RecipeRequest	true	"Recipe"
//	@Success		201		{object}	recipe.Detail
//	@Failure		400		{object}	apiError.Error	"Invalid recipe or image"
//	@Failure		401		{object}	apiError.Error	"Authentication required"
//	@Failure		409		{object}	apiError.Error	"Duplicate ingredient or tag"
//	@Security		TokenAuth
//	@Router			/api/recipes [POST]
func HandleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	env.Logger.DebugContext(ctx, "Reading request body")
	in, err := readInput(w, r)
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Creating recipe")
	detail, err := env.Recipes.Create(ctx, viewer.FromCtx(ctx), in)
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}
	env.Metrics.RecipeWrites.WithLabelValues("create").Inc()

	if err := mJson.WriteJSON(w, http.StatusCreated, detail); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleUpdateRecipe godoc
//
//	@Summary		Update a recipe.
//	@Description	Ingredients and tags are replaced, not merged. Omitting the image keeps it.
//	@Tags			Recipes
//	@Accept			json,mpfd
//	@Produce		json
//	@Param			id		path		int				true	"Recipe ID"
//	@Param			request	body		RecipeRequest	true	"Recipe"
//	@Success		200		{object}	recipe.Detail
//	@Failure		400		{object}	apiError.Error	"Invalid recipe or image"
//	@Failure		401		{object}	apiError.Error	"Authentication required"
//	@Failure		403		{object}	apiError.Error	"Not the author"
//	@Failure		404		{object}	apiError.Error	"Recipe not found"
//	@Security		TokenAuth
//	@Router			/api/recipes/{id} [PATCH]
func HandleUpdateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	id, err := params.ID(r, "id")
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	in, err := readInput(w, r)
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	detail, err := env.Recipes.Update(ctx, viewer.FromCtx(ctx), id, in)
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}
	env.Metrics.RecipeWrites.WithLabelValues("update").Inc()

	if err := mJson.WriteJSON(w, http.StatusOK, detail); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleDeleteRecipe godoc
//
//	@Summary	Delete a recipe.
//	@Tags		Recipes
//	@Param		id	path	int	true	"Recipe ID"
//	@Success	204	"Deleted"
//	@Failure	401	{object}	apiError.Error	"Authentication required"
//	@Failure	403	{object}	apiError.Error	"Not the author"
//	@Failure	404	{object}	apiError.Error	"Recipe not found"
//	@Security	TokenAuth
//	@Router		/api/recipes/{id} [DELETE]
func HandleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	id, err := params.ID(r, "id")
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	if err := env.Recipes.Delete(ctx, viewer.FromCtx(ctx), id); err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}
	env.Metrics.RecipeWrites.WithLabelValues("delete").Inc()

	w.WriteHeader(http.StatusNoContent)
}

// HandleAddFavorite godoc
//
//	@Summary	Add a recipe to favorites.
//	@Tags		Favorites
//	@Produce	json
//	@Param		id	path		int	true	"Recipe ID"
//	@Success	201	{object}	recipe.Summary
//	@Failure	401	{object}	apiError.Error	"Authentication required"
//	@Failure	404	{object}	apiError.Error	"Recipe not found"
//	@Failure	409	{object}	apiError.Error	"Already favorited"
//	@Security	TokenAuth
//	@Router		/api/recipes/{id}/favorite [POST]
func HandleAddFavorite(w http.ResponseWriter, r *http.Request) {
	addRelation(w, r, relation.Favorite)
}

// HandleRemoveFavorite godoc
//
//	@Summary	Remove a recipe from favorites.
//	@Tags		Favorites
//	@Param		id	path	int	true	"Recipe ID"
//	@Success	204	"Removed"
//	@Failure	401	{object}	apiError.Error	"Authentication required"
//	@Failure	404	{object}	apiError.Error	"Recipe not found or not favorited"
//	@Security	TokenAuth
//	@Router		/api/recipes/{id}/favorite [DELETE]
func HandleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	removeRelation(w, r, relation.Favorite)
}

// HandleAddToCart godoc
//
//	@Summary	Add a recipe to the shopping cart.
//	@Tags		Shopping cart
//	@Produce	json
//	@Param		id	path		int	true	"Recipe ID"
//	@Success	201	{object}	recipe.Summary
//	@Failure	401	{object}	apiError.Error	"Authentication required"
//	@Failure	404	{object}	apiError.Error	"Recipe not found"
//	@Failure	409	{object}	apiError.Error	"Already in the cart"
//	@Security	TokenAuth
//	@Router		/api/recipes/{id}/shopping_cart [POST]
func HandleAddToCart(w http.ResponseWriter, r *http.Request) {
	addRelation(w, r, relation.Cart)
}

// HandleRemoveFromCart godoc
//
//	@Summary	Remove a recipe from the shopping cart.
//	@Tags		Shopping cart
//	@Param		id	path	int	true	"Recipe ID"
//	@Success	204	"Removed"
//	@Failure	401	{object}	apiError.Error	"Authentication required"
//	@Failure	404	{object}	apiError.Error	"Recipe not found or not in the cart"
//	@Security	TokenAuth
//	@Router		/api/recipes/{id}/shopping_cart [DELETE]
func HandleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	removeRelation(w, r, relation.Cart)
}

func addRelation(w http.ResponseWriter, r *http.Request, kind relation.Kind) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	id, err := params.ID(r, "id")
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	summary, err := env.Relations.Add(ctx, viewer.FromCtx(ctx), kind, id)
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}
	env.Metrics.RelationChanges.WithLabelValues(kind.String(), "add").Inc()

	if err := mJson.WriteJSON(w, http.StatusCreated, summary); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

func removeRelation(w http.ResponseWriter, r *http.Request, kind relation.Kind) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	id, err := params.ID(r, "id")
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	if err := env.Relations.Remove(ctx, viewer.FromCtx(ctx), kind, id); err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}
	env.Metrics.RelationChanges.WithLabelValues(kind.String(), "remove").Inc()

	w.WriteHeader(http.StatusNoContent)
}

// HandleDownloadShoppingCart godoc
//
//	@Summary		Download the shopping list.
//	@Description	Ingredients of every recipe in the cart, summed per name and unit.
//	@Tags			Shopping cart
//	@Produce		application/pdf,plain
//	@Param			format	query	string	false	"pdf (default) or txt"
//	@Success		200		{file}	binary
//	@Failure		400		{object}	apiError.Error	"Unknown format"
//	@Failure		401		{object}	apiError.Error	"Authentication required"
//	@Security		TokenAuth
//	@Router			/api/recipes/download_shopping_cart [GET]
func HandleDownloadShoppingCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	format := r.URL.Query().Get("format")
	if format == "" {
		format = formatPDF
	}
	if format != formatPDF && format != formatText {
		err := apperr.Invalid(apperr.CodeBadRequest, "format", "expected %q or %q", formatPDF, formatText)
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	items, err := env.ShoppingList.Build(ctx, viewer.FromCtx(ctx))
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	var buf bytes.Buffer
	contentType := "application/pdf"
	if format == formatText {
		contentType = "text/plain; charset=utf-8"
		err = env.Renderer.RenderText(&buf, items)
	} else {
		err = env.Renderer.RenderPDF(&buf, items)
	}
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to render shopping list", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	env.Metrics.ShoppingLists.WithLabelValues(format).Inc()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="shopping_list.`+format+`"`)
	if _, err := buf.WriteTo(w); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}
