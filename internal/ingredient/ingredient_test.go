package ingredient

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"go.uber.org/mock/gomock"

	"github.com/matt-dz/foodgram/internal/apperr"
	"github.com/matt-dz/foodgram/internal/database"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "flour", want: "flour"},
		{in: "100%", want: `100\%`},
		{in: "a_b", want: `a\_b`},
		{in: `c:\`, want: `c:\\`},
	}
	for _, tt := range tests {
		if got := escapeLike(tt.in); got != tt.want {
			t.Errorf("escapeLike(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestList(t *testing.T) {
	store := database.NewMockStore(gomock.NewController(t))
	svc := NewService(store)

	store.EXPECT().SearchIngredients(gomock.Any(), `50\%`).Return([]database.Ingredient{
		{ID: 1, Name: "50% cream", MeasurementUnit: "ml"},
	}, nil)
	store.EXPECT().SearchIngredients(gomock.Any(), "").Return(nil, nil)

	got, err := svc.List(context.Background(), " 50% ")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []Ingredient{{ID: 1, Name: "50% cream", MeasurementUnit: "ml"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %+v, want %+v", got, want)
	}

	got, err = svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("List() = %#v, want empty slice", got)
	}
}

func TestGet(t *testing.T) {
	store := database.NewMockStore(gomock.NewController(t))
	svc := NewService(store)

	store.EXPECT().GetIngredient(gomock.Any(), int64(2)).Return(database.Ingredient{ID: 2, Name: "salt", MeasurementUnit: "g"}, nil)
	store.EXPECT().GetIngredient(gomock.Any(), int64(3)).Return(database.Ingredient{}, pgx.ErrNoRows)

	got, err := svc.Get(context.Background(), 2)
	if err != nil || got.Name != "salt" {
		t.Fatalf("Get() = %+v, %v", got, err)
	}
	_, err = svc.Get(context.Background(), 3)
	if !errors.Is(err, apperr.ErrNotFound) || apperr.CodeOf(err) != apperr.CodeIngredientNotFound {
		t.Fatalf("Get() error = %v, want ingredient_not_found", err)
	}
}

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		want       []database.CreateIngredientsParams
		wantFields []string
	}{
		{
			name: "with header",
			in:   "name,measurement_unit\nflour,g\n\"salt, sea\",g\n",
			want: []database.CreateIngredientsParams{
				{Name: "flour", MeasurementUnit: "g"},
				{Name: "salt, sea", MeasurementUnit: "g"},
			},
		},
		{
			name: "without header",
			in:   "egg,pcs\nmilk, ml\n",
			want: []database.CreateIngredientsParams{
				{Name: "egg", MeasurementUnit: "pcs"},
				{Name: "milk", MeasurementUnit: "ml"},
			},
		},
		{
			name: "byte order mark",
			in:   "\uFEFFname,measurement_unit\nbutter,g\n",
			want: []database.CreateIngredientsParams{{Name: "butter", MeasurementUnit: "g"}},
		},
		{
			name: "empty",
			in:   "",
		},
		{
			name:       "wrong field count",
			in:         "flour,g\nsugar\n",
			wantFields: []string{"line 2"},
		},
		{
			name:       "blank unit",
			in:         "flour,g\npepper,\nsalt,  \n",
			wantFields: []string{"line 2", "line 3"},
		},
		{
			name:       "too long",
			in:         strings.Repeat("a", MaxFieldLength+1) + ",g\n",
			wantFields: []string{"line 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCSV(strings.NewReader(tt.in))
			if len(tt.wantFields) > 0 {
				var verr *apperr.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("ParseCSV() error = %v, want *apperr.ValidationError", err)
				}
				for _, f := range tt.wantFields {
					if _, ok := verr.Fields[f]; !ok {
						t.Errorf("missing %q in %v", f, verr.Fields)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCSV() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseCSV() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestImportCSV(t *testing.T) {
	store := database.NewMockStore(gomock.NewController(t))
	svc := NewService(store)

	store.EXPECT().
		ExecTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(database.Querier) error) error {
			return fn(store)
		})
	store.EXPECT().
		CreateIngredients(gomock.Any(), []database.CreateIngredientsParams{
			{Name: "flour", MeasurementUnit: "g"},
			{Name: "egg", MeasurementUnit: "pcs"},
		}).
		Return(int64(2), nil)

	n, err := svc.ImportCSV(context.Background(), strings.NewReader("flour,g\negg,pcs\n"))
	if err != nil {
		t.Fatalf("ImportCSV() error = %v", err)
	}
	if n != 2 {
		t.Errorf("ImportCSV() = %d, want 2", n)
	}
}

func TestImportCSV_InvalidWritesNothing(t *testing.T) {
	store := database.NewMockStore(gomock.NewController(t))
	svc := NewService(store)

	_, err := svc.ImportCSV(context.Background(), strings.NewReader("flour,g\n,pcs\n"))
	if apperr.CodeOf(err) != apperr.CodeInvalidCSV {
		t.Fatalf("ImportCSV() error = %v, want invalid_csv", err)
	}
}
