// Package fileserver stores uploaded files either on a local volume or in an
// S3-compatible bucket.
package fileserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

const (
	directoryPerms = 0o755
	filePerms      = 0o644
)

var (
	ErrInvalidPath = errors.New("invalid path")
	ErrNotExist    = errors.New("file does not exist")
)

// topLevelDirectories are the only directories keys may live under.
var topLevelDirectories = []string{"recipes"}

// Backend is where file bytes live. Keys are relative and slash separated.
type Backend interface {
	Write(ctx context.Context, key string, data []byte) (n int, err error)
	Read(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// cleanKey normalizes key and rejects keys outside topLevelDirectories,
// including ones that climb out with "..".
func cleanKey(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") {
		return "", fmt.Errorf("%q: %w", key, ErrInvalidPath)
	}
	cleaned := path.Clean(key)
	top, rest, ok := strings.Cut(cleaned, "/")
	if !ok || rest == "" || !slices.Contains(topLevelDirectories, top) {
		return "", fmt.Errorf("%q: %w", key, ErrInvalidPath)
	}
	return cleaned, nil
}

// FileServer keeps files under a local base directory.
type FileServer struct {
	baseDir string
}

var _ Backend = (*FileServer)(nil)

func New(baseDir string) *FileServer {
	return &FileServer{
		baseDir: baseDir,
	}
}

func (f *FileServer) BaseDirectory() string {
	if f == nil {
		return ""
	}
	return f.baseDir
}

// Write replaces the file at key. Readers see either the old or the new
// contents, never a partial file.
func (f *FileServer) Write(_ context.Context, key string, data []byte) (int, error) {
	if f == nil {
		return 0, nil
	}

	fullpath, err := f.resolve(key)
	if err != nil {
		return 0, err
	}
	dir := filepath.Dir(fullpath)
	if err := os.MkdirAll(dir, directoryPerms); err != nil {
		return 0, fmt.Errorf("creating parent directories: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return 0, fmt.Errorf("creating file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	n, err := tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return 0, fmt.Errorf("writing file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), filePerms); err != nil {
		return 0, fmt.Errorf("setting file mode: %w", err)
	}
	if err := os.Rename(tmp.Name(), fullpath); err != nil {
		return 0, fmt.Errorf("moving file into place: %w", err)
	}
	return n, nil
}

func (f *FileServer) Read(_ context.Context, key string) ([]byte, error) {
	if f == nil {
		return nil, ErrNotExist
	}

	fullpath, err := f.resolve(key)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fullpath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%q: %w", key, ErrNotExist)
	} else if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return data, nil
}

// Delete removes the file and prunes every parent directory left empty,
// stopping at the top-level directory.
func (f *FileServer) Delete(_ context.Context, key string) error {
	if f == nil {
		return nil
	}

	fullpath, err := f.resolve(key)
	if err != nil {
		return err
	}

	if err := os.Remove(fullpath); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%q: %w", key, ErrNotExist)
	} else if err != nil {
		return fmt.Errorf("removing file: %w", err)
	}

	topDir, err := f.resolveDir(topLevelDirectory(key))
	if err != nil {
		return err
	}
	for dir := filepath.Dir(fullpath); dir != topDir && strings.HasPrefix(dir, topDir); dir = filepath.Dir(dir) {
		empty, err := isEmptyDirectory(dir)
		if err != nil {
			return fmt.Errorf("checking directory: %w", err)
		}
		if !empty {
			break
		}
		if err := os.Remove(dir); err != nil {
			return fmt.Errorf("pruning directory: %w", err)
		}
	}
	return nil
}

func (f *FileServer) resolve(key string) (string, error) {
	cleaned, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	return f.resolveDir(cleaned)
}

// resolveDir joins rel onto the absolute base directory.
func (f *FileServer) resolveDir(rel string) (string, error) {
	absBase, err := filepath.Abs(f.baseDir)
	if err != nil {
		return "", fmt.Errorf("resolving base directory: %w", err)
	}
	return filepath.Join(absBase, filepath.FromSlash(rel)), nil
}

func topLevelDirectory(key string) string {
	top, _, _ := strings.Cut(path.Clean(key), "/")
	return top
}

func isEmptyDirectory(path string) (bool, error) {
	dir, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer func() { _ = dir.Close() }()

	_, err = dir.Readdirnames(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	return false, err
}
