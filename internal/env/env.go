// Package env provides a structure for managing application-wide dependencies.
package env

import (
	"context"
	"log/slog"

	"github.com/matt-dz/foodgram/internal/config"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/filestore"
	"github.com/matt-dz/foodgram/internal/follow"
	"github.com/matt-dz/foodgram/internal/ingredient"
	"github.com/matt-dz/foodgram/internal/log"
	"github.com/matt-dz/foodgram/internal/metrics"
	"github.com/matt-dz/foodgram/internal/recipe"
	"github.com/matt-dz/foodgram/internal/relation"
	"github.com/matt-dz/foodgram/internal/shoppinglist"
	"github.com/matt-dz/foodgram/internal/tag"
	"github.com/matt-dz/foodgram/internal/user"
)

type envKeyType struct{}

var envKey envKeyType

type Env struct {
	Logger    *slog.Logger
	Database  database.Store
	FileStore filestore.Store
	Config    config.Config
	Metrics   *metrics.Metrics

	Users        *user.Service
	Recipes      *recipe.Service
	Relations    *relation.Service
	Follows      *follow.Service
	ShoppingList *shoppinglist.Service
	Tags         *tag.Service
	Ingredients  *ingredient.Service
	Renderer     shoppinglist.Renderer
}

// New returns an Env with a null logger and fresh metrics. A nil cfg leaves
// the zero config in place.
func New(cfg *config.Config) *Env {
	e := &Env{
		Logger:  log.NullLogger(),
		Metrics: metrics.New(),
	}
	if cfg != nil {
		e.Config = *cfg
	}
	return e
}

// InitServices builds the domain services on top of Database and FileStore.
// It must be called again whenever either is replaced.
func (e *Env) InitServices() {
	e.Users = user.NewService(e.Database)
	e.Recipes = recipe.NewService(e.Database, e.FileStore, e.Logger)
	e.Relations = relation.NewService(e.Database, e.FileStore)
	e.Follows = follow.NewService(e.Database, e.FileStore)
	e.ShoppingList = shoppinglist.NewService(e.Database)
	e.Tags = tag.NewService(e.Database)
	e.Ingredients = ingredient.NewService(e.Database)
	e.Renderer = shoppinglist.Renderer{
		FontPath: e.Config.ShoppingList.FontPath,
		Title:    e.Config.ShoppingList.Title,
	}
}

// AppSecret returns the secret used to sign access tokens, or nil when none
// is configured.
func (e *Env) AppSecret() []byte {
	if e.Config.AppSecret.Value == nil {
		return nil
	}
	return []byte(*e.Config.AppSecret.Value)
}

func WithCtx(ctx context.Context, e *Env) context.Context {
	return context.WithValue(ctx, envKey, e)
}

// EnvFromCtx returns the Env stored in ctx, or a null Env when there is none.
func EnvFromCtx(ctx context.Context) *Env {
	if e, ok := ctx.Value(envKey).(*Env); ok {
		return e
	}
	return New(nil)
}
