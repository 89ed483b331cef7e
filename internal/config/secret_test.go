package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppSecret(t *testing.T) {
	t.Run("configured value wins", func(t *testing.T) {
		c := &Config{AppSecret: AppSecret{Value: secretPtr(testSecret), Path: "/should/not/be/read"}}
		if err := loadAppSecret(c); err != nil {
			t.Fatal(err)
		}
		if string(*c.AppSecret.Value) != testSecret {
			t.Errorf("value = %q", *c.AppSecret.Value)
		}
	})

	t.Run("generated on first start", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "secret")
		c := &Config{AppSecret: AppSecret{Path: path}}
		if err := loadAppSecret(c); err != nil {
			t.Fatal(err)
		}
		contents, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if c.AppSecret.Value == nil || string(contents) != string(*c.AppSecret.Value) {
			t.Errorf("file %q does not match value %v", contents, c.AppSecret.Value)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != appSecretFilePerms {
			t.Errorf("mode = %o, want %o", perm, appSecretFilePerms)
		}

		// A second start reads the same secret back.
		again := &Config{AppSecret: AppSecret{Path: path}}
		if err := loadAppSecret(again); err != nil {
			t.Fatal(err)
		}
		if *again.AppSecret.Value != *c.AppSecret.Value {
			t.Error("secret changed between starts")
		}
	})

	t.Run("path is a directory", func(t *testing.T) {
		c := &Config{AppSecret: AppSecret{Path: t.TempDir()}}
		if err := loadAppSecret(c); err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("parent directory missing", func(t *testing.T) {
		c := &Config{AppSecret: AppSecret{Path: "/nonexistent/directory/secret"}}
		if err := loadAppSecret(c); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestAppSecretValue_Validate(t *testing.T) {
	var missing *AppSecretValue
	if err := missing.Validate(); err == nil {
		t.Error("nil secret accepted")
	}
	if err := secretPtr("short").Validate(); err == nil {
		t.Error("short secret accepted")
	}
	if err := secretPtr(testSecret).Validate(); err != nil {
		t.Errorf("valid secret rejected: %v", err)
	}
}
