// Package api sets up and starts the API
// server with routing, middleware, and Swagger documentation.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/matt-dz/foodgram/docs"
	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/middleware"
	"github.com/matt-dz/foodgram/internal/api/requestid"
	"github.com/matt-dz/foodgram/internal/api/routes/auth"
	"github.com/matt-dz/foodgram/internal/api/routes/files"
	"github.com/matt-dz/foodgram/internal/api/routes/ingredients"
	"github.com/matt-dz/foodgram/internal/api/routes/ping"
	"github.com/matt-dz/foodgram/internal/api/routes/recipes"
	"github.com/matt-dz/foodgram/internal/api/routes/tags"
	"github.com/matt-dz/foodgram/internal/api/routes/users"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/filestore"
	"github.com/matt-dz/foodgram/internal/role"
)

const (
	serverPort = 8080

	readHeaderTimeout = 10 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 60 * time.Second
	shutdownTimeout   = 15 * time.Second

	loginRequestsPerMinute    = 10
	registerRequestsPerMinute = 5
)

func addDocs(r chi.Router, serverAddr string) {
	swagger := httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/api/swagger/doc.json", serverAddr)),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	)

	r.Mount("/api/swagger", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		// Handle preflight
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if req.Method == http.MethodGet {
			swagger.ServeHTTP(w, req)
			return
		}

		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}))
}

func addRoutes(router chi.Router) {
	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", ping.HandlePing)

		r.Route("/auth/token", func(r chi.Router) {
			r.With(middleware.RateLimit(loginRequestsPerMinute, time.Minute)).
				Post("/login", auth.HandleLogin)
			r.With(middleware.RequireRole(role.RoleUser)).
				Post("/logout", auth.HandleLogout)
		})

		r.Route("/users", func(r chi.Router) {
			r.With(middleware.RateLimit(registerRequestsPerMinute, time.Minute)).
				Post("/", users.HandleRegister)
			r.Get("/", users.HandleListUsers)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(role.RoleUser))
				r.Get("/me", users.HandleMe)
				r.Post("/set_password", users.HandleSetPassword)
				r.Get("/subscriptions", users.HandleListSubscriptions)
				r.Post("/{id}/subscribe", users.HandleSubscribe)
				r.Delete("/{id}/subscribe", users.HandleUnsubscribe)
			})

			r.Get("/{id}", users.HandleGetUser)
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", tags.HandleListTags)
			r.Get("/{id}", tags.HandleGetTag)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(role.RoleAdmin))
				r.Post("/", tags.HandleCreateTag)
				r.Patch("/{id}", tags.HandleUpdateTag)
				r.Delete("/{id}", tags.HandleDeleteTag)
			})
		})

		r.Route("/ingredients", func(r chi.Router) {
			r.Get("/", ingredients.HandleListIngredients)
			r.Get("/{id}", ingredients.HandleGetIngredient)
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", recipes.HandleListRecipes)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(role.RoleUser))
				r.Get("/download_shopping_cart", recipes.HandleDownloadShoppingCart)
				r.Post("/", recipes.HandleCreateRecipe)
				r.Patch("/{id}", recipes.HandleUpdateRecipe)
				r.Delete("/{id}", recipes.HandleDeleteRecipe)
				r.Post("/{id}/favorite", recipes.HandleAddFavorite)
				r.Delete("/{id}/favorite", recipes.HandleRemoveFavorite)
				r.Post("/{id}/shopping_cart", recipes.HandleAddToCart)
				r.Delete("/{id}/shopping_cart", recipes.HandleRemoveFromCart)
			})

			r.Get("/{id}", recipes.HandleGetRecipe)
		})
	})
}

// NewRouter builds the full handler tree for env.
func NewRouter(env *env.Env) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.InjectEnv(env))
	router.Use(middleware.AddRequestID)
	router.Use(middleware.LogRequest(env.Logger))
	router.Use(chiMiddleware.Recoverer)
	router.Use(middleware.Cors(env.Config.CORSOrigins))
	router.Use(env.Metrics.Instrument)
	router.Use(middleware.Authenticate)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = apiError.EncodeError(w, apiError.NotFound, "not found", requestid.ExtractRequestID(r.Context()))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = apiError.EncodeError(w, apiError.MethodNotAllowed, "method not allowed", requestid.ExtractRequestID(r.Context()))
	})

	addRoutes(router)
	addDocs(router, fmt.Sprintf("0.0.0.0:%d", serverPort))

	router.Method(http.MethodGet, "/metrics", env.Metrics.Handler())

	urlPrefix := filestore.DefaultURLPrefix
	if fs, ok := env.FileStore.(filestore.FileStore); ok {
		urlPrefix = fs.URLPrefix()
	}
	router.Get(urlPrefix+"/*", files.HandleGetFile)

	return router
}

// Start godoc
//
//	@title						Foodgram API
//	@version					1.0
//	@description				API Server for the Foodgram recipe sharing application.
//
//	@securityDefinitions.apikey	TokenAuth
//	@in							header
//	@name						Authorization
//	@description				"Token <jwt>" or "Bearer <jwt>"
//
//	@host						localhost:8080
//	@BasePath					/
func Start(ctx context.Context, env *env.Env) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", serverPort),
		Handler:           NewRouter(env),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
	}

	errs := make(chan error, 1)
	go func() {
		env.Logger.Info(fmt.Sprintf("Listening at 0.0.0.0:%d", serverPort))
		env.Logger.Info(fmt.Sprintf("Swagger UI available at http://0.0.0.0:%d/api/swagger/index.html", serverPort))
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	env.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
