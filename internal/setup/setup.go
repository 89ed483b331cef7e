// Package setup is responsible for setting up components.
package setup

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/matt-dz/foodgram/internal/argon2id"
	"github.com/matt-dz/foodgram/internal/config"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/fileserver"
	"github.com/matt-dz/foodgram/internal/filestore"
)

var ErrDatabaseNotConfigured = errors.New("database is not configured")

// ConnString builds a postgres URL from the database section.
func ConnString(cfg config.Database) (string, error) {
	if cfg.Database == "" || cfg.User == "" {
		return "", ErrDatabaseNotConfigured
	}
	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   cfg.Host + ":" + strconv.Itoa(int(cfg.Port)),
		Path:   "/" + cfg.Database,
	}
	return u.String(), nil
}

func Database(ctx context.Context, cfg config.Database) (*database.Database, error) {
	dbString, err := ConnString(cfg)
	if err != nil {
		return nil, err
	}

	// Creating DB connection
	pool, err := pgxpool.New(ctx, dbString)
	if err != nil {
		return nil, fmt.Errorf("creating database pool: %w", err)
	}

	db := database.NewDatabase(pool)
	if err := db.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	return db, nil
}

// Admin creates the configured admin user when no administrator exists yet.
// Requires env.Database.
func Admin(ctx context.Context, env *env.Env) error {
	admin := env.Config.Admin
	if admin.Email == "" || admin.Password == "" {
		env.Logger.InfoContext(ctx, "admin email and password not configured, skipping admin setup")
		return nil
	}

	// Check admin count
	count, err := env.Database.GetAdminCount(ctx)
	if err != nil {
		return fmt.Errorf("getting admin count: %w", err)
	}
	if count > 0 {
		env.Logger.InfoContext(ctx, "admin already setup, skipping setup")
		return nil
	}

	hashedPassword, err := argon2id.EncodeHash(string(admin.Password), argon2id.DefaultParams)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	// Create admin
	_, err = env.Database.CreateUser(ctx, database.CreateUserParams{
		Email:        strings.TrimSpace(admin.Email),
		Username:     admin.Username,
		FirstName:    admin.FirstName,
		LastName:     admin.LastName,
		PasswordHash: hashedPassword,
		Role:         database.RoleAdmin,
		IsStaff:      true,
	})
	if err != nil {
		return fmt.Errorf("creating admin: %w", err)
	}
	env.Logger.InfoContext(ctx, "successfully setup admin!")

	return nil
}

// FileBackend picks the S3 bucket when one is configured and the local
// volume otherwise.
func FileBackend(ctx context.Context, cfg config.Config) (fileserver.Backend, error) {
	if cfg.S3.Enabled() {
		bucket, err := fileserver.NewBucket(ctx, fileserver.BucketConfig{
			Endpoint:  cfg.S3.Endpoint,
			Bucket:    cfg.S3.Bucket,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			UseSSL:    cfg.S3.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("connecting to bucket: %w", err)
		}
		return bucket, nil
	}

	if cfg.Fileserver.Volume == "" {
		return nil, errors.New("fileserver volume not configured")
	}
	fileserverPath, err := filepath.Abs(cfg.Fileserver.Volume)
	if err != nil {
		return nil, fmt.Errorf("creating fileserver path: %w", err)
	}
	return fileserver.New(fileserverPath), nil
}

func FileStore(ctx context.Context, cfg config.Config) (filestore.FileStore, error) {
	backend, err := FileBackend(ctx, cfg)
	if err != nil {
		return filestore.FileStore{}, err
	}
	return filestore.New(backend, cfg.Fileserver.URLPrefix, cfg.HostOrigin), nil
}
