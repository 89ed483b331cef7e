// Package auth contains handlers for the auth endpoints
package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/requestid"
	"github.com/matt-dz/foodgram/internal/api/token"
	"github.com/matt-dz/foodgram/internal/env"
	mJson "github.com/matt-dz/foodgram/internal/json"
)

// HandleLogin godoc
//
//	@Summary		Obtain an auth token.
//	@Description	Exchanges an email and password for a token to send as
//	@Description	"Authorization: Token <auth_token>".
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	token.Response
//	@Failure		400		{object}	apiError.Error	"Invalid credentials"
//	@Failure		429		{object}	apiError.Error	"Too many requests"
//	@Failure		500		{object}	apiError.Error	"Internal server error"
//	@Router			/api/auth/token/login [post]
func HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	// Decode JSON
	var request LoginRequest
	env.Logger.DebugContext(ctx, "Reading request body")
	defer func() { _ = r.Body.Close() }()
	if err := mJson.DecodeJSON(&request, mJson.NewDecoder(w, r)); err != nil {
		env.Logger.DebugContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(request); err != nil {
		env.Logger.DebugContext(ctx, "Failed to validate request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidCredentials, "email and password are required", requestID)
		return
	}

	// Check credentials
	identity, err := env.Users.Authenticate(ctx, request.Email, request.Password)
	if err != nil {
		apiError.Respond(ctx, env.Logger, w, err, requestID)
		return
	}

	// Issue token
	accessToken, err := token.NewAccessToken(identity.ID, identity.Role, env.AppSecret())
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to create access token", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if err := mJson.WriteJSON(w, http.StatusOK, token.Response{AuthToken: accessToken}); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleLogout godoc
//
//	@Summary		Log out.
//	@Description	Tokens are stateless; the client discards its token.
//	@Tags			Auth
//	@Success		204	"Logged out"
//	@Failure		401	{object}	apiError.Error	"Authentication required"
//	@Security		TokenAuth
//	@Router			/api/auth/token/logout [post]
func HandleLogout(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
