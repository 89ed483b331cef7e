package fileserver

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCleanKey(t *testing.T) {
	tests := []struct {
		key     string
		want    string
		wantErr bool
	}{
		{key: "recipes/cover.png", want: "recipes/cover.png"},
		{key: "recipes/./2025/cover.png", want: "recipes/2025/cover.png"},
		{key: "recipes/2025/../cover.png", want: "recipes/cover.png"},
		{key: "", wantErr: true},
		{key: "recipes", wantErr: true},
		{key: "recipes/", wantErr: true},
		{key: "/recipes/cover.png", wantErr: true},
		{key: "avatars/me.png", wantErr: true},
		{key: "recipes/../secret", wantErr: true},
		{key: "../recipes/cover.png", wantErr: true},
		{key: "recipes/../../etc/passwd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := cleanKey(tt.key)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPath) {
					t.Fatalf("cleanKey(%q) = %q, %v; want ErrInvalidPath", tt.key, got, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("cleanKey(%q) = %q, %v; want %q", tt.key, got, err, tt.want)
			}
		})
	}
}

func TestTopLevelDirectory(t *testing.T) {
	tests := map[string]string{
		"recipes/cover.png":      "recipes",
		"recipes/a/b/c.png":      "recipes",
		"./recipes/cover.png":    "recipes",
		"cover.png":              "cover.png",
		"../recipes/x.png":       "..",
		"recipes/../avatars/x":   "avatars",
		"recipes//double//x.png": "recipes",
	}
	for key, want := range tests {
		if got := topLevelDirectory(key); got != want {
			t.Errorf("topLevelDirectory(%q) = %q, want %q", key, got, want)
		}
	}
}

// testBackend checks the behavior every Backend shares.
func testBackend(t *testing.T, b Backend) {
	t.Helper()
	ctx := context.Background()
	key := "recipes/contract/cover.png"
	data := []byte("\x89PNG\r\n\x1a\nimage bytes")

	n, err := b.Write(ctx, key, data)
	if err != nil || n != len(data) {
		t.Fatalf("Write() = %d, %v", n, err)
	}
	got, err := b.Read(ctx, key)
	if err != nil || !bytes.Equal(got, data) {
		t.Fatalf("Read() = %q, %v", got, err)
	}

	replacement := []byte("GIF89a smaller")
	if _, err := b.Write(ctx, key, replacement); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if got, _ := b.Read(ctx, key); !bytes.Equal(got, replacement) {
		t.Errorf("Read() after overwrite = %q", got)
	}

	if err := b.Delete(ctx, key); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := b.Read(ctx, key); !errors.Is(err, ErrNotExist) {
		t.Errorf("Read() after Delete error = %v, want ErrNotExist", err)
	}

	for _, bad := range []string{"secrets/key", "recipes/../../etc/passwd", "/recipes/x.png"} {
		if _, err := b.Write(ctx, bad, data); !errors.Is(err, ErrInvalidPath) {
			t.Errorf("Write(%q) error = %v, want ErrInvalidPath", bad, err)
		}
		if _, err := b.Read(ctx, bad); !errors.Is(err, ErrInvalidPath) {
			t.Errorf("Read(%q) error = %v, want ErrInvalidPath", bad, err)
		}
		if err := b.Delete(ctx, bad); !errors.Is(err, ErrInvalidPath) {
			t.Errorf("Delete(%q) error = %v, want ErrInvalidPath", bad, err)
		}
	}
}

func TestFileServer(t *testing.T) {
	testBackend(t, New(t.TempDir()))
}

func TestBucket(t *testing.T) {
	endpoint := os.Getenv("FOODGRAM_TEST_S3_ENDPOINT")
	if endpoint == "" {
		t.Skip("FOODGRAM_TEST_S3_ENDPOINT not set")
	}
	b, err := NewBucket(context.Background(), BucketConfig{
		Endpoint:  endpoint,
		Bucket:    "foodgram-test",
		AccessKey: os.Getenv("FOODGRAM_TEST_S3_ACCESS_KEY"),
		SecretKey: os.Getenv("FOODGRAM_TEST_S3_SECRET_KEY"),
	})
	if err != nil {
		t.Fatalf("NewBucket() error = %v", err)
	}
	testBackend(t, b)
}

func TestFileServerWrite_Mode(t *testing.T) {
	base := t.TempDir()
	fs := New(base)
	if _, err := fs.Write(context.Background(), "recipes/a.png", []byte("x")); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(filepath.Join(base, "recipes", "a.png"))
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != filePerms {
		t.Errorf("mode = %o, want %o", perm, filePerms)
	}
	entries, err := os.ReadDir(filepath.Join(base, "recipes"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

func TestFileServerDelete_Pruning(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	fs := New(base)

	for _, key := range []string{"recipes/2025/01/a.png", "recipes/2025/02/b.png"} {
		if _, err := fs.Write(ctx, key, []byte("x")); err != nil {
			t.Fatal(err)
		}
	}

	if err := fs.Delete(ctx, "recipes/2025/01/a.png"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(base, "recipes", "2025", "01")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("empty directory 2025/01 kept: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "recipes", "2025", "02")); err != nil {
		t.Errorf("non-empty sibling removed: %v", err)
	}

	if err := fs.Delete(ctx, "recipes/2025/02/b.png"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(base, "recipes")); err != nil {
		t.Errorf("top-level directory removed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "recipes", "2025")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("empty directory 2025 kept: %v", err)
	}
}

func TestFileServerDelete_Missing(t *testing.T) {
	err := New(t.TempDir()).Delete(context.Background(), "recipes/none.png")
	if !errors.Is(err, ErrNotExist) {
		t.Errorf("Delete() error = %v, want ErrNotExist", err)
	}
}

func TestFileServer_NilReceiver(t *testing.T) {
	var fs *FileServer
	ctx := context.Background()

	if n, err := fs.Write(ctx, "recipes/a.png", []byte("x")); n != 0 || err != nil {
		t.Errorf("Write() = %d, %v", n, err)
	}
	if _, err := fs.Read(ctx, "recipes/a.png"); !errors.Is(err, ErrNotExist) {
		t.Errorf("Read() error = %v, want ErrNotExist", err)
	}
	if err := fs.Delete(ctx, "recipes/a.png"); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
	if fs.BaseDirectory() != "" {
		t.Error("BaseDirectory() of nil server should be empty")
	}
}

func TestIsEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	if empty, err := isEmptyDirectory(dir); err != nil || !empty {
		t.Errorf("fresh directory: empty = %v, err = %v", empty, err)
	}
	if err := os.WriteFile(filepath.Join(dir, "f"), nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if empty, err := isEmptyDirectory(dir); err != nil || empty {
		t.Errorf("directory with a file: empty = %v, err = %v", empty, err)
	}
	if _, err := isEmptyDirectory(filepath.Join(dir, "missing")); err == nil {
		t.Error("missing directory: expected an error")
	}
}
