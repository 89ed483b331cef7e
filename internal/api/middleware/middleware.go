// Package middleware contains middleware functions for the API
package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/httprate"
	"github.com/golang-jwt/jwt/v5"
	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/requestid"
	"github.com/matt-dz/foodgram/internal/api/token"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/log"
	"github.com/matt-dz/foodgram/internal/role"
	"github.com/matt-dz/foodgram/internal/viewer"
)

// InjectEnv injects an environment struct into the request context.
func InjectEnv(environment *env.Env) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(env.WithCtx(r.Context(), environment)))
		})
	}
}

func LogRequest(logger *slog.Logger) func(http.Handler) http.Handler {
	return httplog.RequestLogger(logger, &httplog.Options{
		LogExtraAttrs: func(r *http.Request, reqBody string, respStatus int) []slog.Attr {
			return []slog.Attr{slog.String("log_id", requestid.ExtractRequestID(r.Context()))}
		},
	})
}

// AddRequestID adds a request ID to the request context and the response.
func AddRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := requestid.New()
		w.Header().Set(requestid.Header, requestID)
		r = r.WithContext(log.AppendCtx(r.Context(), slog.String("log_id", requestID)))
		r = r.WithContext(requestid.InjectRequestID(r.Context(), requestID))
		next.ServeHTTP(w, r)
	})
}

// Cors allows browsers served from origins to call the API.
func Cors(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{requestid.Header, "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           86400,
	})
}

// Authenticate resolves the viewer from the Authorization header. Requests
// without the header continue as anonymous; a bad token is rejected.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		env := env.EnvFromCtx(ctx)
		requestID := requestid.ExtractRequestID(ctx)

		raw, err := token.FromRequest(r)
		if errors.Is(err, token.ErrNoToken) {
			next.ServeHTTP(w, r.WithContext(viewer.WithCtx(ctx, viewer.Anonymous())))
			return
		} else if err != nil {
			env.Logger.DebugContext(ctx, "malformed authorization header", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
			return
		}

		secret := env.AppSecret()
		if len(secret) == 0 {
			env.Logger.ErrorContext(ctx, "unable to validate token", slog.Any("error", ErrAppSecretNotConfigured))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}

		v, err := token.ParseAccessToken(raw, secret)
		if errors.Is(err, jwt.ErrTokenExpired) {
			env.Logger.DebugContext(ctx, "access token expired", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.ExpiredAccessToken, "access token expired", requestID)
			return
		} else if err != nil {
			env.Logger.DebugContext(ctx, "invalid access token", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
			return
		}

		ctx = log.AppendCtx(ctx, slog.Int64("user-id", v.UserID))
		next.ServeHTTP(w, r.WithContext(viewer.WithCtx(ctx, v)))
	})
}

// RequireRole rejects anonymous viewers and viewers below requiredRole.
// It must run after Authenticate.
func RequireRole(requiredRole role.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			env := env.EnvFromCtx(ctx)
			requestID := requestid.ExtractRequestID(ctx)

			v := viewer.FromCtx(ctx)
			if !v.Authenticated() {
				_ = apiError.EncodeError(w, apiError.AuthenticationRequired,
					"authentication credentials were not provided", requestID)
				return
			}
			if !v.Role.Satisfies(requiredRole) {
				env.Logger.DebugContext(ctx, "user does not have required role",
					slog.String("user-role", v.Role.String()),
					slog.String("required-role", requiredRole.String()))
				_ = apiError.EncodeError(w, apiError.InsufficientPermissions, "insufficient permissions", requestID)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit limits each client IP to requests per window on every endpoint
// it wraps.
func RateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			requestID := requestid.ExtractRequestID(r.Context())
			_ = apiError.EncodeError(w, apiError.TooManyRequests, "too many requests", requestID)
		}),
	)
}
