package params

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/matt-dz/foodgram/internal/apperr"
)

func TestID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"12", 12, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.raw)
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

			got, err := ID(r, "id")
			if (err != nil) != tt.wantErr {
				t.Fatalf("ID() error = %v, wantErr %v", err, tt.wantErr)
			}
			var verr *apperr.ValidationError
			if tt.wantErr && !errors.As(err, &verr) {
				t.Errorf("expected a validation error, got %T", err)
			}
			if got != tt.want {
				t.Errorf("ID() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBool(t *testing.T) {
	tests := []struct {
		raw     string
		want    bool
		wantErr bool
	}{
		{"", false, false},
		{"1", true, false},
		{"true", true, false},
		{"TRUE", true, false},
		{"0", false, false},
		{"false", false, false},
		{"yes", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := Bool(url.Values{"is_favorited": {tt.raw}}, "is_favorited")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Bool() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Bool() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOptional(t *testing.T) {
	q := url.Values{"recipes_limit": {"3"}, "author": {"5"}, "bad": {"x"}}

	limit, err := OptionalInt(q, "recipes_limit")
	if err != nil || limit == nil || *limit != 3 {
		t.Errorf("OptionalInt() = %v, %v", limit, err)
	}
	if missing, err := OptionalInt(q, "missing"); missing != nil || err != nil {
		t.Errorf("OptionalInt(missing) = %v, %v", missing, err)
	}
	if _, err := OptionalInt(q, "bad"); err == nil {
		t.Error("expected error for non-integer")
	}

	author, err := OptionalID(q, "author")
	if err != nil || author == nil || *author != 5 {
		t.Errorf("OptionalID() = %v, %v", author, err)
	}
	if _, err := OptionalID(q, "bad"); err == nil {
		t.Error("expected error for non-integer id")
	}
}

func TestStrings(t *testing.T) {
	q := url.Values{"tags": {"breakfast", " ", "lunch "}}
	if got := Strings(q, "tags"); !slices.Equal(got, []string{"breakfast", "lunch"}) {
		t.Errorf("Strings() = %v", got)
	}
	if got := Strings(q, "missing"); got != nil {
		t.Errorf("Strings(missing) = %v, want nil", got)
	}
}

func TestRequestURL(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/recipes?page=2", nil)
	if got := RequestURL(r, "https://foodgram.example").String(); got != "https://foodgram.example/api/recipes?page=2" {
		t.Errorf("RequestURL() = %q", got)
	}
	if got := RequestURL(r, "").String(); got != "/api/recipes?page=2" {
		t.Errorf("RequestURL() without origin = %q", got)
	}
}
