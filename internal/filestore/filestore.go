// Package filestore wraps the fileserver package with recipe image keys and
// public URLs.
package filestore

import (
	"context"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/matt-dz/foodgram/internal/fileserver"
)

const (
	recipesDir = "recipes"
)

const (
	DefaultURLPrefix = "/files"
)

// Store persists recipe images under opaque keys. Keys are what the database
// stores; FileURL turns a key into a URL a client can fetch.
type Store interface {
	WriteRecipeImage(ctx context.Context, suffix string, data []byte) (key string, err error)
	ReadKey(ctx context.Context, key string) ([]byte, error)
	DeleteKey(ctx context.Context, key string) error

	FileURL(key string) string
}

type FileStore struct {
	urlPrefix string
	host      string
	fs        fileserver.Backend
}

var _ Store = FileStore{}

func New(backend fileserver.Backend, urlPrefix, host string) FileStore {
	if urlPrefix == "" {
		urlPrefix = DefaultURLPrefix
	}
	return FileStore{
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
		host:      strings.TrimRight(host, "/"),
		fs:        backend,
	}
}

// URLPrefix is the path under which files are served.
func (f FileStore) URLPrefix() string {
	return f.urlPrefix
}

func (f FileStore) WriteRecipeImage(ctx context.Context, suffix string, data []byte) (string, error) {
	key := recipeImageKey(uuid.NewString(), suffix)
	if _, err := f.fs.Write(ctx, key, data); err != nil {
		return "", err
	}
	return key, nil
}

func (f FileStore) ReadKey(ctx context.Context, key string) ([]byte, error) {
	return f.fs.Read(ctx, normalizeKey(key))
}

func (f FileStore) DeleteKey(ctx context.Context, key string) error {
	return f.fs.Delete(ctx, normalizeKey(key))
}

// FileURL returns the absolute URL of key. An empty key has no URL.
func (f FileStore) FileURL(key string) string {
	if key == "" {
		return ""
	}
	return f.host + f.urlPrefix + "/" + normalizeKey(key)
}

func recipeImageKey(id, suffix string) string {
	return path.Join(recipesDir, id+suffix)
}

func normalizeKey(key string) string {
	return strings.Trim(key, "/")
}
