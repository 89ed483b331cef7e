package tag

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/mock/gomock"

	"github.com/matt-dz/foodgram/internal/apperr"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/role"
	"github.com/matt-dz/foodgram/internal/viewer"
)

var admin = viewer.User(1, role.RoleAdmin)

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{in: "#FF0000", want: "red", wantOK: true},
		{in: "#ff0000", want: "red", wantOK: true},
		{in: "#f00", want: "red", wantOK: true},
		{in: "#00ffff", want: "aqua", wantOK: true},
		{in: "#808080", want: "gray", wantOK: true},
		{in: " Green ", want: "green", wantOK: true},
		{in: "#123456", wantOK: false},
		{in: "#12345", wantOK: false},
		{in: "#gggggg", wantOK: false},
		{in: "ff0000", wantOK: false},
		{in: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := NormalizeColor(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("NormalizeColor(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	store := database.NewMockStore(gomock.NewController(t))
	svc := NewService(store)

	store.EXPECT().
		CreateTag(gomock.Any(), database.CreateTagParams{Name: "Breakfast", Color: "orange", Slug: "breakfast"}).
		Return(database.Tag{ID: 3, Name: "Breakfast", Color: "orange", Slug: "breakfast"}, nil)

	got, err := svc.Create(context.Background(), admin, Input{Name: " Breakfast ", Color: "#FFA500", Slug: "breakfast"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	want := Tag{ID: 3, Name: "Breakfast", Color: "orange", Slug: "breakfast"}
	if got != want {
		t.Errorf("Create() = %+v, want %+v", got, want)
	}
}

func TestCreate_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		in         Input
		wantFields []string
		wantMsg    string
	}{
		{
			name:       "color without a name",
			in:         Input{Name: "Lunch", Color: "#123456", Slug: "lunch"},
			wantFields: []string{"color"},
			wantMsg:    "no name for this color",
		},
		{
			name:       "bad slug",
			in:         Input{Name: "Lunch", Color: "#ff0000", Slug: "lunch time"},
			wantFields: []string{"slug"},
		},
		{
			name:       "everything missing",
			in:         Input{},
			wantFields: []string{"name", "color", "slug"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := database.NewMockStore(gomock.NewController(t))
			svc := NewService(store)

			_, err := svc.Create(context.Background(), admin, tt.in)
			var verr *apperr.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Create() error = %v, want *apperr.ValidationError", err)
			}
			if verr.Code != apperr.CodeInvalidTag {
				t.Errorf("code = %q, want %q", verr.Code, apperr.CodeInvalidTag)
			}
			for _, f := range tt.wantFields {
				if _, ok := verr.Fields[f]; !ok {
					t.Errorf("missing field %q in %v", f, verr.Fields)
				}
			}
			if tt.wantMsg != "" && verr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", verr.Message, tt.wantMsg)
			}
		})
	}
}

func TestCreate_SlugConflict(t *testing.T) {
	store := database.NewMockStore(gomock.NewController(t))
	svc := NewService(store)

	store.EXPECT().
		CreateTag(gomock.Any(), gomock.Any()).
		Return(database.Tag{}, &pgconn.PgError{Code: "23505", ConstraintName: database.ConstraintTagsUniqueSlug})

	_, err := svc.Create(context.Background(), admin, Input{Name: "Dinner", Color: "navy", Slug: "dinner"})
	if !errors.Is(err, apperr.ErrConflict) || apperr.CodeOf(err) != apperr.CodeTagSlugConflict {
		t.Fatalf("Create() error = %v, want tag_slug_conflict", err)
	}
}

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name   string
		viewer viewer.Viewer
		want   error
	}{
		{name: "anonymous", viewer: viewer.Anonymous(), want: apperr.ErrUnauthenticated},
		{name: "regular user", viewer: viewer.User(2, role.RoleUser), want: apperr.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := database.NewMockStore(gomock.NewController(t))
			svc := NewService(store)
			in := Input{Name: "Dinner", Color: "navy", Slug: "dinner"}

			if _, err := svc.Create(context.Background(), tt.viewer, in); !errors.Is(err, tt.want) {
				t.Errorf("Create() error = %v, want %v", err, tt.want)
			}
			if _, err := svc.Update(context.Background(), tt.viewer, 1, in); !errors.Is(err, tt.want) {
				t.Errorf("Update() error = %v, want %v", err, tt.want)
			}
			if err := svc.Delete(context.Background(), tt.viewer, 1); !errors.Is(err, tt.want) {
				t.Errorf("Delete() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUpdate_NotFound(t *testing.T) {
	store := database.NewMockStore(gomock.NewController(t))
	svc := NewService(store)

	store.EXPECT().
		UpdateTag(gomock.Any(), database.UpdateTagParams{ID: 9, Name: "Dinner", Color: "navy", Slug: "dinner"}).
		Return(database.Tag{}, pgx.ErrNoRows)

	_, err := svc.Update(context.Background(), admin, 9, Input{Name: "Dinner", Color: "#000080", Slug: "dinner"})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	store := database.NewMockStore(gomock.NewController(t))
	svc := NewService(store)

	gomock.InOrder(
		store.EXPECT().DeleteTag(gomock.Any(), int64(4)).Return(int64(1), nil),
		store.EXPECT().DeleteTag(gomock.Any(), int64(4)).Return(int64(0), nil),
	)

	if err := svc.Delete(context.Background(), admin, 4); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := svc.Delete(context.Background(), admin, 4); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestListAndGet(t *testing.T) {
	store := database.NewMockStore(gomock.NewController(t))
	svc := NewService(store)

	store.EXPECT().ListTags(gomock.Any()).Return([]database.Tag{
		{ID: 1, Name: "Breakfast", Color: "orange", Slug: "breakfast"},
		{ID: 2, Name: "Dinner", Color: "navy", Slug: "dinner"},
	}, nil)
	store.EXPECT().GetTag(gomock.Any(), int64(5)).Return(database.Tag{}, pgx.ErrNoRows)

	tags, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tags) != 2 || tags[1].Slug != "dinner" {
		t.Errorf("List() = %+v", tags)
	}

	_, err = svc.Get(context.Background(), 5)
	if !errors.Is(err, apperr.ErrNotFound) || apperr.CodeOf(err) != apperr.CodeTagNotFound {
		t.Errorf("Get() error = %v, want tag_not_found", err)
	}
}
