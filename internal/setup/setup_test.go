package setup

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/matt-dz/foodgram/internal/config"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/fileserver"
)

func TestAdmin(t *testing.T) {
	validPassword := config.AdminPassword("SecureP@ssw0rd123!")

	fullAdmin := func(c *config.Config) {
		c.Admin.Email = "admin@example.com"
		c.Admin.Username = "admin"
		c.Admin.Password = validPassword
		c.Admin.FirstName = "Admin"
		c.Admin.LastName = "User"
	}

	tests := []struct {
		name      string
		setup     func(*config.Config, *database.MockStore)
		wantError bool
	}{
		{
			name: "admin already exists - skip setup",
			setup: func(c *config.Config, mockDB *database.MockStore) {
				fullAdmin(c)
				mockDB.EXPECT().
					GetAdminCount(gomock.Any()).
					Return(int64(1), nil)
			},
		},
		{
			name: "admin email not set - skip setup",
			setup: func(c *config.Config, mockDB *database.MockStore) {
				c.Admin.Password = validPassword
			},
		},
		{
			name: "admin password not set - skip setup",
			setup: func(c *config.Config, mockDB *database.MockStore) {
				c.Admin.Email = "admin@example.com"
			},
		},
		{
			name: "database error on GetAdminCount - error",
			setup: func(c *config.Config, mockDB *database.MockStore) {
				fullAdmin(c)
				mockDB.EXPECT().
					GetAdminCount(gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantError: true,
		},
		{
			name: "database error on CreateUser - error",
			setup: func(c *config.Config, mockDB *database.MockStore) {
				fullAdmin(c)
				mockDB.EXPECT().
					GetAdminCount(gomock.Any()).
					Return(int64(0), nil)
				mockDB.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("create user error"))
			},
			wantError: true,
		},
		{
			name: "successful admin creation",
			setup: func(c *config.Config, mockDB *database.MockStore) {
				fullAdmin(c)
				c.Admin.Email = "  admin@example.com "
				mockDB.EXPECT().
					GetAdminCount(gomock.Any()).
					Return(int64(0), nil)
				mockDB.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params database.CreateUserParams) (int64, error) {
						if params.Email != "admin@example.com" {
							t.Errorf("expected Email 'admin@example.com', got %q", params.Email)
						}
						if params.Username != "admin" {
							t.Errorf("expected Username 'admin', got %q", params.Username)
						}
						if params.Role != database.RoleAdmin || !params.IsStaff {
							t.Errorf("expected an admin staff user, got role %q staff %v", params.Role, params.IsStaff)
						}
						if params.PasswordHash == "" || params.PasswordHash == string(validPassword) {
							t.Error("password should be stored hashed")
						}
						return int64(1), nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDB := database.NewMockStore(ctrl)
			e := env.New(nil)
			e.Database = mockDB

			tt.setup(&e.Config, mockDB)

			err := Admin(context.Background(), e)
			if tt.wantError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestConnString(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Database
		want    string
		wantErr error
	}{
		{
			name: "complete",
			cfg:  config.Database{Host: "db", Port: 5432, Database: "foodgram", User: "food", Password: "gram"},
			want: "postgresql://food:gram@db:5432/foodgram",
		},
		{
			name: "password is escaped",
			cfg:  config.Database{Host: "db", Port: 5433, Database: "foodgram", User: "food", Password: "p@ss/word"},
			want: "postgresql://food:p%40ss%2Fword@db:5433/foodgram",
		},
		{
			name:    "missing database",
			cfg:     config.Database{Host: "db", Port: 5432, User: "food"},
			wantErr: ErrDatabaseNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConnString(tt.cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ConnString() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ConnString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFileStore_LocalVolume(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		HostOrigin: "http://localhost:8080",
		Fileserver: config.Fileserver{Volume: dir, URLPrefix: "/media"},
	}

	backend, err := FileBackend(context.Background(), cfg)
	if err != nil {
		t.Fatalf("FileBackend() error = %v", err)
	}
	fs, ok := backend.(*fileserver.FileServer)
	if !ok {
		t.Fatalf("FileBackend() = %T, want *fileserver.FileServer", backend)
	}
	if fs.BaseDirectory() != dir {
		t.Errorf("base directory = %q, want %q", fs.BaseDirectory(), dir)
	}

	store, err := FileStore(context.Background(), cfg)
	if err != nil {
		t.Fatalf("FileStore() error = %v", err)
	}
	key, err := store.WriteRecipeImage(context.Background(), ".png", []byte("png"))
	if err != nil {
		t.Fatalf("WriteRecipeImage() error = %v", err)
	}
	if want := "http://localhost:8080/media/" + key; store.FileURL(key) != want {
		t.Errorf("FileURL() = %q, want %q", store.FileURL(key), want)
	}
	data, err := fs.Read(context.Background(), key)
	if err != nil || string(data) != "png" {
		t.Errorf("Read(%q) = %q, %v", key, data, err)
	}
}

func TestFileBackend_NoVolume(t *testing.T) {
	if _, err := FileBackend(context.Background(), config.Config{}); err == nil {
		t.Error("expected error, got nil")
	}
}
