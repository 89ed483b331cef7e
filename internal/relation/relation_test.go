package relation

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/mock/gomock"

	"github.com/matt-dz/foodgram/internal/apperr"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/fileserver"
	"github.com/matt-dz/foodgram/internal/filestore"
	"github.com/matt-dz/foodgram/internal/role"
	"github.com/matt-dz/foodgram/internal/viewer"
)

var cook = viewer.User(4, role.RoleUser)

func newTestService(t *testing.T) (*Service, *database.MockStore) {
	t.Helper()
	store := database.NewMockStore(gomock.NewController(t))
	files := filestore.New(fileserver.New(t.TempDir()), "/files", "http://localhost:8080")
	store.EXPECT().
		ExecTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(database.Querier) error) error {
			return fn(store)
		}).AnyTimes()
	return NewService(store, files), store
}

var pancakes = database.Recipe{
	ID:          8,
	Name:        "Pancakes",
	ImageKey:    pgtype.Text{String: "recipes/p.png", Valid: true},
	CookingTime: 15,
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		setup    func(*database.MockStore)
		wantKind error
		wantCode string
	}{
		{
			name: "favorite",
			kind: Favorite,
			setup: func(m *database.MockStore) {
				m.EXPECT().GetRecipe(gomock.Any(), int64(8)).Return(pancakes, nil)
				m.EXPECT().
					CreateFavorite(gomock.Any(), database.CreateFavoriteParams{UserID: 4, RecipeID: 8}).
					Return(nil)
			},
		},
		{
			name: "cart",
			kind: Cart,
			setup: func(m *database.MockStore) {
				m.EXPECT().GetRecipe(gomock.Any(), int64(8)).Return(pancakes, nil)
				m.EXPECT().
					CreateCartItem(gomock.Any(), database.CreateCartItemParams{UserID: 4, RecipeID: 8}).
					Return(nil)
			},
		},
		{
			name: "already favorited",
			kind: Favorite,
			setup: func(m *database.MockStore) {
				m.EXPECT().GetRecipe(gomock.Any(), int64(8)).Return(pancakes, nil)
				m.EXPECT().
					CreateFavorite(gomock.Any(), gomock.Any()).
					Return(&pgconn.PgError{Code: "23505", ConstraintName: database.ConstraintUniqueFavorites})
			},
			wantKind: apperr.ErrConflict,
			wantCode: apperr.CodeAlreadyFavorited,
		},
		{
			name: "already in cart",
			kind: Cart,
			setup: func(m *database.MockStore) {
				m.EXPECT().GetRecipe(gomock.Any(), int64(8)).Return(pancakes, nil)
				m.EXPECT().
					CreateCartItem(gomock.Any(), gomock.Any()).
					Return(&pgconn.PgError{Code: "23505", ConstraintName: database.ConstraintUniqueCart})
			},
			wantKind: apperr.ErrConflict,
			wantCode: apperr.CodeAlreadyInCart,
		},
		{
			name: "missing recipe",
			kind: Favorite,
			setup: func(m *database.MockStore) {
				m.EXPECT().GetRecipe(gomock.Any(), int64(8)).Return(database.Recipe{}, pgx.ErrNoRows)
			},
			wantKind: apperr.ErrNotFound,
			wantCode: apperr.CodeRecipeNotFound,
		},
		{
			name: "recipe deleted before insert",
			kind: Cart,
			setup: func(m *database.MockStore) {
				m.EXPECT().GetRecipe(gomock.Any(), int64(8)).Return(pancakes, nil)
				m.EXPECT().
					CreateCartItem(gomock.Any(), gomock.Any()).
					Return(&pgconn.PgError{Code: "23503"})
			},
			wantKind: apperr.ErrNotFound,
			wantCode: apperr.CodeRecipeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTestService(t)
			tt.setup(store)

			got, err := svc.Add(context.Background(), cook, tt.kind, 8)
			if tt.wantKind != nil {
				if !errors.Is(err, tt.wantKind) {
					t.Fatalf("Add() error = %v, want %v", err, tt.wantKind)
				}
				if apperr.CodeOf(err) != tt.wantCode {
					t.Errorf("code = %q, want %q", apperr.CodeOf(err), tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Add() error = %v", err)
			}
			if got.ID != 8 || got.Name != "Pancakes" || got.CookingTime != 15 {
				t.Errorf("Add() = %+v", got)
			}
			if got.Image != "http://localhost:8080/files/recipes/p.png" {
				t.Errorf("image = %q", got.Image)
			}
		})
	}
}

func TestAdd_Twice(t *testing.T) {
	svc, store := newTestService(t)
	store.EXPECT().GetRecipe(gomock.Any(), int64(8)).Return(pancakes, nil).Times(2)
	gomock.InOrder(
		store.EXPECT().CreateFavorite(gomock.Any(), gomock.Any()).Return(nil),
		store.EXPECT().
			CreateFavorite(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: database.ConstraintUniqueFavorites}),
	)

	if _, err := svc.Add(context.Background(), cook, Favorite, 8); err != nil {
		t.Fatalf("first Add() error = %v", err)
	}
	if _, err := svc.Add(context.Background(), cook, Favorite, 8); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("second Add() error = %v, want ErrConflict", err)
	}
}

func TestAnonymous(t *testing.T) {
	svc, _ := newTestService(t)
	for _, kind := range []Kind{Favorite, Cart} {
		if _, err := svc.Add(context.Background(), viewer.Anonymous(), kind, 8); !errors.Is(err, apperr.ErrUnauthenticated) {
			t.Errorf("Add(%s) error = %v, want ErrUnauthenticated", kind, err)
		}
		if err := svc.Remove(context.Background(), viewer.Anonymous(), kind, 8); !errors.Is(err, apperr.ErrUnauthenticated) {
			t.Errorf("Remove(%s) error = %v, want ErrUnauthenticated", kind, err)
		}
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		setup    func(*database.MockStore)
		wantCode string
	}{
		{
			name: "favorite",
			kind: Favorite,
			setup: func(m *database.MockStore) {
				m.EXPECT().GetRecipe(gomock.Any(), int64(8)).Return(pancakes, nil)
				m.EXPECT().
					DeleteFavorite(gomock.Any(), database.DeleteFavoriteParams{UserID: 4, RecipeID: 8}).
					Return(int64(1), nil)
			},
		},
		{
			name: "not favorited",
			kind: Favorite,
			setup: func(m *database.MockStore) {
				m.EXPECT().GetRecipe(gomock.Any(), int64(8)).Return(pancakes, nil)
				m.EXPECT().DeleteFavorite(gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantCode: apperr.CodeNotFavorited,
		},
		{
			name: "not in cart",
			kind: Cart,
			setup: func(m *database.MockStore) {
				m.EXPECT().GetRecipe(gomock.Any(), int64(8)).Return(pancakes, nil)
				m.EXPECT().DeleteCartItem(gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantCode: apperr.CodeNotInCart,
		},
		{
			name: "missing recipe",
			kind: Cart,
			setup: func(m *database.MockStore) {
				m.EXPECT().GetRecipe(gomock.Any(), int64(8)).Return(database.Recipe{}, pgx.ErrNoRows)
			},
			wantCode: apperr.CodeRecipeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTestService(t)
			tt.setup(store)

			err := svc.Remove(context.Background(), cook, tt.kind, 8)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Remove() error = %v", err)
				}
				return
			}
			if !errors.Is(err, apperr.ErrNotFound) {
				t.Fatalf("Remove() error = %v, want ErrNotFound", err)
			}
			if apperr.CodeOf(err) != tt.wantCode {
				t.Errorf("code = %q, want %q", apperr.CodeOf(err), tt.wantCode)
			}
		})
	}
}
