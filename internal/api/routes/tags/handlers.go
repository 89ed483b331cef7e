// Package tags contains handlers for the tag catalog.
package tags

import (
	"log/slog"
	"net/http"

	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/params"
	"github.com/matt-dz/foodgram/internal/api/requestid"
	"github.com/matt-dz/foodgram/internal/env"
	mJson "github.com/matt-dz/foodgram/internal/json"
	"github.com/matt-dz/foodgram/internal/tag"
	"github.com/matt-dz/foodgram/internal/viewer"
)

// HandleListTags godoc
//
//	@Summary	List tags.
//	@Tags		Tags
//	@Produce	json
//	@Success	200	{array}	tag.Tag
//	@Router		/api/tags [GET]
func HandleListTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	tags, err := env.Tags.List(ctx)
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	if err := mJson.WriteJSON(w, http.StatusOK, tags); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleGetTag godoc
//
//	@Summary	Get a tag.
//	@Tags		Tags
//	@Produce	json
//	@Param		id	path		int	true	"Tag ID"
//	@Success	200	{object}	tag.Tag
//	@Failure	404	{object}	apiError.Error	"Tag not found"
//	@Router		/api/tags/{id} [GET]
func HandleGetTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	id, err := params.ID(r, "id")
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	t, err := env.Tags.Get(ctx, id)
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	if err := mJson.WriteJSON(w, http.StatusOK, t); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleCreateTag godoc
//
//	@Summary		Create a tag.
//	@Description	color is a CSS color name or a hex value that has one.
//	@Tags			Tags
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tag.Input	true	"Tag"
//	@Success		201		{object}	tag.Tag
//	@Failure		400		{object}	apiError.Error	"Invalid tag"
//	@Failure		403		{object}	apiError.Error	"Not an administrator"
//	@Failure		409		{object}	apiError.Error	"Slug taken"
//	@Security		TokenAuth
//	@Router			/api/tags [POST]
func HandleCreateTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	var request tag.Input
	defer func() { _ = r.Body.Close() }()
	if err := mJson.DecodeJSON(&request, mJson.NewDecoder(w, r)); err != nil {
		env.Logger.DebugContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	t, err := env.Tags.Create(ctx, viewer.FromCtx(ctx), request)
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	if err := mJson.WriteJSON(w, http.StatusCreated, t); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleUpdateTag godoc
//
//	@Summary	Replace a tag.
//	@Tags		Tags
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int			true	"Tag ID"
//	@Param		request	body		tag.Input	true	"Tag"
//	@Success	200		{object}	tag.Tag
//	@Failure	400		{object}	apiError.Error	"Invalid tag"
//	@Failure	403		{object}	apiError.Error	"Not an administrator"
//	@Failure	404		{object}	apiError.Error	"Tag not found"
//	@Failure	409		{object}	apiError.Error	"Slug taken"
//	@Security	TokenAuth
//	@Router		/api/tags/{id} [PATCH]
func HandleUpdateTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	id, err := params.ID(r, "id")
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	var request tag.Input
	defer func() { _ = r.Body.Close() }()
	if err := mJson.DecodeJSON(&request, mJson.NewDecoder(w, r)); err != nil {
		env.Logger.DebugContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	t, err := env.Tags.Update(ctx, viewer.FromCtx(ctx), id, request)
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	if err := mJson.WriteJSON(w, http.StatusOK, t); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleDeleteTag godoc
//
//	@Summary	Delete a tag.
//	@Tags		Tags
//	@Param		id	path	int	true	"Tag ID"
//	@Success	204	"Deleted"
//	@Failure	403	{object}	apiError.Error	"Not an administrator"
//	@Failure	404	{object}	apiError.Error	"Tag not found"
//	@Security	TokenAuth
//	@Router		/api/tags/{id} [DELETE]
func HandleDeleteTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	id, err := params.ID(r, "id")
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	if err := env.Tags.Delete(ctx, viewer.FromCtx(ctx), id); err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
