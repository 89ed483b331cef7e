package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
)

const (
	appSecretBytes     = 32
	appSecretFilePerms = 0o600
)

// AppSecretValue signs access tokens.
type AppSecretValue string

func (a *AppSecretValue) Validate() error {
	if a == nil {
		return errors.New("secret should not be nil")
	}
	if len(*a) < appSecretBytes {
		return fmt.Errorf("secret should be at least %d bytes", appSecretBytes)
	}
	return nil
}

func newAppSecret() (string, error) {
	token := make([]byte, appSecretBytes)
	if _, err := rand.Read(token); err != nil {
		return "", fmt.Errorf("creating app secret: %w", err)
	}
	return base64.StdEncoding.EncodeToString(token), nil
}

// loadAppSecret fills in AppSecret.Value from AppSecret.Path when no value
// was configured, generating the file on first start.
func loadAppSecret(config *Config) error {
	if config.AppSecret.Value != nil {
		return nil
	}

	secret, err := readAppSecret(config.AppSecret.Path)
	if errors.Is(err, os.ErrNotExist) {
		secret, err = createAppSecret(config.AppSecret.Path)
	}
	if err != nil {
		return err
	}

	val := AppSecretValue(secret)
	config.AppSecret.Value = &val
	return nil
}

func readAppSecret(path string) (string, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("expected file, got directory at %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	return string(data), nil
}

func createAppSecret(path string) (string, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, appSecretFilePerms)
	if err != nil {
		return "", fmt.Errorf("creating secret file: %w", err)
	}
	defer func() { _ = file.Close() }()

	secret, err := newAppSecret()
	if err != nil {
		return "", err
	}
	if _, err := file.WriteString(secret); err != nil {
		return "", fmt.Errorf("writing secret file: %w", err)
	}
	return secret, nil
}
