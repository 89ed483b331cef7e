// Package users contains handlers for the user resource and subscriptions.
package users

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/params"
	"github.com/matt-dz/foodgram/internal/api/requestid"
	"github.com/matt-dz/foodgram/internal/env"
	mJson "github.com/matt-dz/foodgram/internal/json"
	"github.com/matt-dz/foodgram/internal/pagination"
	"github.com/matt-dz/foodgram/internal/user"
	"github.com/matt-dz/foodgram/internal/viewer"
)

const recipesLimitParam = "recipes_limit"

// HandleRegister godoc
//
//	@Summary	Register a user.
//	@Tags		Users
//
//	@Accept		json
//	@Produce	json
//	@Param		request	body		user.Registration	true	"Registration"
//
//	@Success	201		{object}	user.Profile
//	@Failure	400		{object}	apiError.Error	"Invalid fields or weak password"
//	@Failure	409		{object}	apiError.Error	"Email or username taken"
//	@Failure	429		{object}	apiError.Error	"Too many requests"
//	@Router		/api/users [POST]
func HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	var request user.Registration
	env.Logger.DebugContext(ctx, "Reading request body")
	defer func() { _ = r.Body.Close() }()
	if err := mJson.DecodeJSON(&request, mJson.NewDecoder(w, r)); err != nil {
		env.Logger.DebugContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Creating user")
	profile, err := env.Users.Register(ctx, request)
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	if err := mJson.WriteJSON(w, http.StatusCreated, profile); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleListUsers godoc
//
//	@Summary	List users.
//	@Tags		Users
//	@Produce	json
//	@Param		page	query		int	false	"Page number"
//	@Param		limit	query		int	false	"Page size"
//	@Success	200		{object}	pagination.Result[user.Profile]
//	@Failure	400		{object}	apiError.Error	"Invalid page"
//	@Router		/api/users [GET]
func HandleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	page, err := pagination.FromQueryWithDefault(r.URL.Query(), env.Config.Pagination.DefaultLimit)
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	result, err := env.Users.List(ctx, viewer.FromCtx(ctx), page)
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	result = result.WithLinks(params.RequestURL(r, env.Config.HostOrigin), page)
	if err := mJson.WriteJSON(w, http.StatusOK, result); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleGetUser godoc
//
//	@Summary	Get a user profile.
//	@Tags		Users
//	@Produce	json
//	@Param		id	path		int	true	"User ID"
//	@Success	200	{object}	user.Profile
//	@Failure	404	{object}	apiError.Error	"User not found"
//	@Router		/api/users/{id} [GET]
func HandleGetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	id, err := params.ID(r, "id")
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	profile, err := env.Users.Get(ctx, viewer.FromCtx(ctx), id)
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	if err := mJson.WriteJSON(w, http.StatusOK, profile); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleMe godoc
//
//	@Summary	Get the current user.
//	@Tags		Users
//	@Produce	json
//	@Success	200	{object}	user.Profile
//	@Failure	401	{object}	apiError.Error	"Authentication required"
//	@Security	TokenAuth
//	@Router		/api/users/me [GET]
func HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	profile, err := env.Users.Me(ctx, viewer.FromCtx(ctx))
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	if err := mJson.WriteJSON(w, http.StatusOK, profile); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleSetPassword godoc
//
//	@Summary	Change the current user's password.
//	@Tags		Users
//	@Accept		json
//	@Param		request	body	SetPasswordRequest	true	"Passwords"
//	@Success	204		"Password changed"
//	@Failure	400		{object}	apiError.Error	"Wrong current password or weak new password"
//	@Failure	401		{object}	apiError.Error	"Authentication required"
//	@Security	TokenAuth
//	@Router		/api/users/set_password [POST]
func HandleSetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	var request SetPasswordRequest
	defer func() { _ = r.Body.Close() }()
	if err := mJson.DecodeJSON(&request, mJson.NewDecoder(w, r)); err != nil {
		env.Logger.DebugContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(request); err != nil {
		env.Logger.DebugContext(ctx, "Failed to validate request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "current_password and new_password are required", requestID)
		return
	}

	err := env.Users.SetPassword(ctx, viewer.FromCtx(ctx), request.CurrentPassword, request.NewPassword)
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleListSubscriptions godoc
//
//	@Summary		List followed authors.
//	@Description	Each author carries up to recipes_limit of their newest recipes.
//	@Tags			Subscriptions
//	@Produce		json
//	@Param			page			query		int	false	"Page number"
//	@Param			limit			query		int	false	"Page size"
//	@Param			recipes_limit	query		int	false	"Recipes per author"
//	@Success		200				{object}	pagination.Result[follow.Following]
//	@Failure		400				{object}	apiError.Error	"Invalid parameters"
//	@Failure		401				{object}	apiError.Error	"Authentication required"
//	@Security		TokenAuth
//	@Router			/api/users/subscriptions [GET]
func HandleListSubscriptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)
	query := r.URL.Query()

	page, err := pagination.FromQueryWithDefault(query, env.Config.Pagination.DefaultLimit)
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}
	recipesLimit, err := params.OptionalInt(query, recipesLimitParam)
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	result, err := env.Follows.ListFollowing(ctx, viewer.FromCtx(ctx), recipesLimit, page)
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	result = result.WithLinks(params.RequestURL(r, env.Config.HostOrigin), page)
	if err := mJson.WriteJSON(w, http.StatusOK, result); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleSubscribe godoc
//
//	@Summary	Follow an author.
//	@Tags		Subscriptions
//	@Produce	json
//	@Param		id				path		int	true	"Author ID"
//	@Param		recipes_limit	query		int	false	"Recipes to include"
//	@Success	201				{object}	follow.Following
//	@Failure	400				{object}	apiError.Error	"Self subscription"
//	@Failure	401				{object}	apiError.Error	"Authentication required"
//	@Failure	404				{object}	apiError.Error	"Author not found"
//	@Failure	409				{object}	apiError.Error	"Already subscribed"
//	@Security	TokenAuth
//	@Router		/api/users/{id}/subscribe [POST]
func HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	authorID, err := params.ID(r, "id")
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}
	recipesLimit, err := params.OptionalInt(r.URL.Query(), recipesLimitParam)
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	following, err := env.Follows.Follow(ctx, viewer.FromCtx(ctx), authorID, recipesLimit)
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}
	env.Metrics.FollowChanges.WithLabelValues("follow").Inc()

	if err := mJson.WriteJSON(w, http.StatusCreated, following); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleUnsubscribe godoc
//
//	@Summary	Unfollow an author.
//	@Tags		Subscriptions
//	@Param		id	path	int	true	"Author ID"
//	@Success	204	"Unsubscribed"
//	@Failure	401	{object}	apiError.Error	"Authentication required"
//	@Failure	404	{object}	apiError.Error	"Author not found or not subscribed"
//	@Security	TokenAuth
//	@Router		/api/users/{id}/subscribe [DELETE]
func HandleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	authorID, err := params.ID(r, "id")
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	if err := env.Follows.Unfollow(ctx, viewer.FromCtx(ctx), authorID); err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}
	env.Metrics.FollowChanges.WithLabelValues("unfollow").Inc()

	w.WriteHeader(http.StatusNoContent)
}
