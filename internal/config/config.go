// Package config loads the server configuration from a YAML file or from
// the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/matt-dz/foodgram/internal/pagination"
	"github.com/matt-dz/foodgram/internal/password"
)

const (
	configFilePath = "/data/foodgram.yaml"
	dotEnvPath     = ".env"
)

const (
	EnvProd = "PROD"
	EnvDev  = "DEV"
)

type AdminPassword string

func (a AdminPassword) Validate() error {
	return password.ValidatePassword(string(a))
}

type AppSecret struct {
	Value   *AppSecretValue `yaml:"value" validate:"omitempty,validateFn"`
	Path    string          `yaml:"path" validate:"omitempty,filepath"`
	Version string          `yaml:"version"`
}

type Database struct {
	Port     uint16 `yaml:"port"`
	Host     string `yaml:"host" validate:"omitempty,hostname_rfc1123"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Port Host Database User Password"`
}

type Fileserver struct {
	Volume    string `yaml:"volume"`
	URLPrefix string `yaml:"url_prefix"`
}

// S3 points recipe images at an S3-compatible bucket instead of the local
// volume.
type S3 struct {
	Endpoint  string `yaml:"endpoint" validate:"omitempty,hostname_port"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Endpoint Bucket AccessKey SecretKey"`
}

func (s S3) Enabled() bool {
	return s.Endpoint != ""
}

// Admin is the account created on first start when no administrator exists.
type Admin struct {
	Email     string        `yaml:"email" validate:"omitempty,email"`
	Username  string        `yaml:"username"`
	FirstName string        `yaml:"first_name"`
	LastName  string        `yaml:"last_name"`
	Password  AdminPassword `yaml:"password" validate:"omitempty,validateFn"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Email Username FirstName LastName Password"`
}

type Pagination struct {
	DefaultLimit int `yaml:"default_limit" validate:"min=1,max=100"`
}

type ShoppingList struct {
	FontPath string `yaml:"font_path" validate:"omitempty,filepath"`
	Title    string `yaml:"title"`
}

type Config struct {
	AppSecret    AppSecret    `yaml:"app_secret"`
	Admin        Admin        `yaml:"admin"`
	Fileserver   Fileserver   `yaml:"fileserver"`
	S3           S3           `yaml:"s3"`
	Database     Database     `yaml:"database"`
	Pagination   Pagination   `yaml:"pagination"`
	ShoppingList ShoppingList `yaml:"shopping_list"`
	HostOrigin   string       `yaml:"host_origin" validate:"url"`
	CORSOrigins  []string     `yaml:"cors_origins" validate:"dive,url"`
	Env          string       `yaml:"env" validate:"omitempty,oneof=DEV PROD"`
}

// Default is the configuration every source is layered on.
func Default() Config {
	return Config{
		AppSecret: AppSecret{
			Path:    "/data/secret",
			Version: "1",
		},
		Fileserver: Fileserver{
			Volume:    "/data/files",
			URLPrefix: "/files",
		},
		Database: Database{
			Host: "localhost",
			Port: 5432,
		},
		Pagination: Pagination{DefaultLimit: pagination.DefaultLimit},
		HostOrigin: "http://localhost:8080",
		Env:        EnvDev,
	}
}

// finish validates c and fills in what can only be derived once every
// source has been read.
func (c *Config) finish() error {
	if len(c.CORSOrigins) == 0 {
		c.CORSOrigins = []string{c.HostOrigin}
	}
	if err := newValidator().Struct(c); err != nil {
		return formatValidationError(err)
	}
	if err := loadAppSecret(c); err != nil {
		return fmt.Errorf("loading app secret: %w", err)
	}
	return nil
}

func loadConfigFromFile(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	// Keys missing from the file keep their defaults.
	config := Default()
	if err := yaml.Unmarshal(contents, &config); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := config.finish(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func loadConfigFromEnv() (Config, error) {
	config := Default()
	for _, v := range environment {
		raw, ok := os.LookupEnv(v.key)
		if !ok || raw == "" {
			continue
		}
		if err := v.set(&config, raw); err != nil {
			return config, fmt.Errorf("invalid %s (%q): %w", v.key, raw, err)
		}
	}
	if err := config.finish(); err != nil {
		return config, err
	}
	return config, nil
}

func configFileExists(path string) bool {
	f, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return !f.IsDir()
}

// loadDotEnv exports the variables in path without overriding ones already
// set. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// LoadConfig reads /data/foodgram.yaml when present and the environment
// (optionally seeded from .env) otherwise.
func LoadConfig() (Config, error) {
	if configFileExists(configFilePath) {
		return loadConfigFromFile(configFilePath)
	}

	if err := loadDotEnv(dotEnvPath); err != nil {
		return Config{}, err
	}
	return loadConfigFromEnv()
}
