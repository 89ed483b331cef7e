package recipes

import (
	"bytes"
	"context"
	"encoding/base64"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"

	"github.com/matt-dz/foodgram/internal/api/apitest"
	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/pagination"
	"github.com/matt-dz/foodgram/internal/recipe"
	"github.com/matt-dz/foodgram/internal/role"
	"github.com/matt-dz/foodgram/internal/viewer"
)

var (
	author   = viewer.User(10, role.RoleUser)
	stranger = viewer.User(11, role.RoleUser)
)

var pngData = []byte("\x89PNG\r\n\x1a\nfake")

// expectCatalog resolves ingredients 1 and 2 and tag 1.
func expectCatalog(store *database.MockStore) {
	store.EXPECT().
		GetIngredientsByIDs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ids []int64) ([]database.Ingredient, error) {
			var out []database.Ingredient
			for _, id := range ids {
				if id == 1 || id == 2 {
					out = append(out, database.Ingredient{ID: id})
				}
			}
			return out, nil
		}).AnyTimes()
	store.EXPECT().
		GetTagsByIDs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ids []int64) ([]database.Tag, error) {
			var out []database.Tag
			for _, id := range ids {
				if id == 1 {
					out = append(out, database.Tag{ID: 1, Name: "Breakfast", Color: "orange", Slug: "breakfast"})
				}
			}
			return out, nil
		}).AnyTimes()
}

// expectWrite accepts one recipe insert and serves the read that follows.
func expectWrite(store *database.MockStore, id int64, image *pgtype.Text) {
	store.EXPECT().
		CreateRecipe(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg database.CreateRecipeParams) (database.Recipe, error) {
			*image = arg.ImageKey
			return database.Recipe{ID: id, AuthorID: arg.AuthorID, Name: arg.Name, ImageKey: arg.ImageKey}, nil
		})
	store.EXPECT().CreateRecipeIngredients(gomock.Any(), gomock.Any()).Return(int64(2), nil)
	store.EXPECT().AddRecipeTags(gomock.Any(), database.AddRecipeTagsParams{RecipeID: id, TagIDs: []int64{1}}).Return(nil)
	store.EXPECT().
		GetRecipeDetail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, database.GetRecipeDetailParams) (database.RecipeDetailRow, error) {
			return database.RecipeDetailRow{
				ID:          id,
				AuthorID:    author.UserID,
				Name:        "Pancakes",
				ImageKey:    *image,
				Text:        "Mix and fry.",
				CookingTime: 15,
			}, nil
		})
	store.EXPECT().GetRecipeTags(gomock.Any(), []int64{id}).
		Return([]database.GetRecipeTagsRow{{RecipeID: id, ID: 1, Name: "Breakfast", Color: "orange", Slug: "breakfast"}}, nil)
	store.EXPECT().GetRecipeIngredients(gomock.Any(), []int64{id}).
		Return([]database.GetRecipeIngredientsRow{
			{RecipeID: id, ID: 1, Name: "Flour", MeasurementUnit: "g", Amount: 200},
			{RecipeID: id, ID: 2, Name: "Milk", MeasurementUnit: "ml", Amount: 300},
		}, nil)
}

func recipeJSON(image string) string {
	return `{
		"ingredients": [{"id": 1, "amount": 200}, {"id": 2, "amount": 300}],
		"tags": [1],
		"image": "` + image + `",
		"name": "Pancakes",
		"text": "Mix and fry.",
		"cooking_time": 15
	}`
}

func TestHandleCreateRecipe_JSON(t *testing.T) {
	e, store := apitest.NewEnv(t)
	expectCatalog(store)
	var image pgtype.Text
	expectWrite(store, 7, &image)

	w := apitest.Do(t, e, apitest.Request{
		Method:  http.MethodPost,
		Target:  "/api/recipes",
		Body:    strings.NewReader(recipeJSON("data:image/png;base64," + base64.StdEncoding.EncodeToString(pngData))),
		Viewer:  author,
		Handler: HandleCreateRecipe,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}

	got := apitest.Decode[recipe.Detail](t, w)
	if got.ID != 7 || len(got.Ingredients) != 2 || len(got.Tags) != 1 {
		t.Errorf("detail = %+v", got)
	}
	if !image.Valid || !strings.HasPrefix(got.Image, apitest.HostOrigin+"/files/") {
		t.Errorf("image = %q, key = %+v", got.Image, image)
	}
	stored, err := e.FileStore.ReadKey(context.Background(), image.String)
	if err != nil || !bytes.Equal(stored, pngData) {
		t.Errorf("stored image = %q, %v", stored, err)
	}
	if n := testutil.ToFloat64(e.Metrics.RecipeWrites.WithLabelValues("create")); n != 1 {
		t.Errorf("create metric = %v, want 1", n)
	}
}

func TestHandleCreateRecipe_Multipart(t *testing.T) {
	e, store := apitest.NewEnv(t)
	expectCatalog(store)
	var image pgtype.Text
	expectWrite(store, 8, &image)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fields := map[string]string{
		"name":         "Pancakes",
		"text":         "Mix and fry.",
		"cooking_time": "15",
		"tags":         "1",
		"ingredients":  `[{"id": 1, "amount": 200}, {"id": 2, "amount": 300}]`,
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	part, err := mw.CreateFormFile("image", "pancakes.png")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(pngData); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	w := apitest.Do(t, e, apitest.Request{
		Method:  http.MethodPost,
		Target:  "/api/recipes",
		Body:    &body,
		Header:  http.Header{"Content-Type": {mw.FormDataContentType()}},
		Viewer:  author,
		Handler: HandleCreateRecipe,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	if !image.Valid || !strings.HasSuffix(image.String, ".png") {
		t.Errorf("image key = %+v", image)
	}
}

func TestHandleCreateRecipe_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		viewer     viewer.Viewer
		body       string
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name:       "anonymous",
			viewer:     viewer.Anonymous(),
			body:       recipeJSON(""),
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiError.AuthenticationRequired,
		},
		{
			name:       "malformed data uri",
			viewer:     author,
			body:       recipeJSON("data:image/png;base64,@@@"),
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.InvalidImage,
		},
		{
			name:       "not an image",
			viewer:     author,
			body:       recipeJSON("data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("plain text"))),
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.InvalidImage,
		},
		{
			name:       "one ingredient",
			viewer:     author,
			body:       `{"ingredients":[{"id":1,"amount":2}],"tags":[1],"name":"Toast","text":"Toast it.","cooking_time":2}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.InvalidRecipe,
		},
		{
			name:       "unknown field",
			viewer:     author,
			body:       `{"name":"Toast","author":3}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.BadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, store := apitest.NewEnv(t)
			expectCatalog(store)

			w := apitest.Do(t, e, apitest.Request{
				Method:  http.MethodPost,
				Target:  "/api/recipes",
				Body:    strings.NewReader(tt.body),
				Viewer:  tt.viewer,
				Handler: HandleCreateRecipe,
			})
			apitest.ExpectError(t, w, tt.wantStatus, tt.wantCode)
		})
	}
}

func TestHandleUpdateRecipe_NotOwner(t *testing.T) {
	e, store := apitest.NewEnv(t)
	store.EXPECT().GetRecipe(gomock.Any(), int64(5)).Return(database.Recipe{ID: 5, AuthorID: author.UserID}, nil)

	w := apitest.Do(t, e, apitest.Request{
		Method:  http.MethodPatch,
		Target:  "/api/recipes/5",
		Body:    strings.NewReader(recipeJSON("")),
		Viewer:  stranger,
		Params:  map[string]string{"id": "5"},
		Handler: HandleUpdateRecipe,
	})
	apitest.ExpectError(t, w, http.StatusForbidden, apiError.RecipeNotOwned)
}

func TestHandleDeleteRecipe(t *testing.T) {
	e, store := apitest.NewEnv(t)
	store.EXPECT().GetRecipe(gomock.Any(), int64(5)).Return(database.Recipe{ID: 5, AuthorID: author.UserID}, nil)
	store.EXPECT().DeleteRecipe(gomock.Any(), int64(5)).Return(int64(1), nil)
	store.EXPECT().GetRecipe(gomock.Any(), int64(6)).Return(database.Recipe{}, pgx.ErrNoRows)

	w := apitest.Do(t, e, apitest.Request{
		Method:  http.MethodDelete,
		Target:  "/api/recipes/5",
		Viewer:  author,
		Params:  map[string]string{"id": "5"},
		Handler: HandleDeleteRecipe,
	})
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}

	w = apitest.Do(t, e, apitest.Request{
		Method:  http.MethodDelete,
		Target:  "/api/recipes/6",
		Viewer:  author,
		Params:  map[string]string{"id": "6"},
		Handler: HandleDeleteRecipe,
	})
	apitest.ExpectError(t, w, http.StatusNotFound, apiError.RecipeNotFound)
}

func TestHandleListRecipes(t *testing.T) {
	tests := []struct {
		name   string
		viewer viewer.Viewer
		target string
		want   database.CountRecipesParams
	}{
		{
			name:   "no filters",
			target: "/api/recipes",
			want:   database.CountRecipesParams{},
		},
		{
			name:   "author and tags",
			target: "/api/recipes?author=3&tags=breakfast&tags=vegan",
			want: database.CountRecipesParams{
				AuthorID: pgtype.Int8{Int64: 3, Valid: true},
				TagSlugs: []string{"breakfast", "vegan"},
			},
		},
		{
			name:   "favorites of the viewer",
			viewer: author,
			target: "/api/recipes?is_favorited=1&is_in_shopping_cart=true",
			want: database.CountRecipesParams{
				FavoritedBy: author.NullableID(),
				InCartOf:    author.NullableID(),
			},
		},
		{
			name:   "favorites ignored for anonymous",
			target: "/api/recipes?is_favorited=1",
			want:   database.CountRecipesParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, store := apitest.NewEnv(t)
			store.EXPECT().CountRecipes(gomock.Any(), tt.want).Return(int64(0), nil)
			store.EXPECT().ListRecipes(gomock.Any(), gomock.Any()).Return(nil, nil)

			w := apitest.Do(t, e, apitest.Request{
				Method:  http.MethodGet,
				Target:  tt.target,
				Viewer:  tt.viewer,
				Handler: HandleListRecipes,
			})
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
			}
			got := apitest.Decode[pagination.Result[recipe.Detail]](t, w)
			if got.Count != 0 || got.Results == nil || got.Next != nil {
				t.Errorf("result = %+v", got)
			}
		})
	}
}

func TestHandleListRecipes_BadQuery(t *testing.T) {
	for _, target := range []string{
		"/api/recipes?is_favorited=maybe",
		"/api/recipes?author=me",
		"/api/recipes?page=0",
	} {
		t.Run(target, func(t *testing.T) {
			e, _ := apitest.NewEnv(t)
			w := apitest.Do(t, e, apitest.Request{
				Method:  http.MethodGet,
				Target:  target,
				Handler: HandleListRecipes,
			})
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (%s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestHandleRelations(t *testing.T) {
	rec := database.Recipe{ID: 5, AuthorID: 3, Name: "Soup", CookingTime: 30}

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		setup      func(*database.MockStore)
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name:    "favorite",
			handler: HandleAddFavorite,
			setup: func(m *database.MockStore) {
				m.EXPECT().GetRecipe(gomock.Any(), int64(5)).Return(rec, nil)
				m.EXPECT().CreateFavorite(gomock.Any(), database.CreateFavoriteParams{UserID: 10, RecipeID: 5}).Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:    "favorite twice",
			handler: HandleAddFavorite,
			setup: func(m *database.MockStore) {
				m.EXPECT().GetRecipe(gomock.Any(), int64(5)).Return(rec, nil)
				m.EXPECT().CreateFavorite(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{
					Code:           "23505",
					ConstraintName: database.ConstraintUniqueFavorites,
				})
			},
			wantStatus: http.StatusConflict,
			wantCode:   apiError.AlreadyFavorited,
		},
		{
			name:    "cart",
			handler: HandleAddToCart,
			setup: func(m *database.MockStore) {
				m.EXPECT().GetRecipe(gomock.Any(), int64(5)).Return(rec, nil)
				m.EXPECT().CreateCartItem(gomock.Any(), database.CreateCartItemParams{UserID: 10, RecipeID: 5}).Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:    "cart for missing recipe",
			handler: HandleAddToCart,
			setup: func(m *database.MockStore) {
				m.EXPECT().GetRecipe(gomock.Any(), int64(5)).Return(database.Recipe{}, pgx.ErrNoRows)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiError.RecipeNotFound,
		},
		{
			name:    "unfavorite",
			handler: HandleRemoveFavorite,
			setup: func(m *database.MockStore) {
				m.EXPECT().GetRecipe(gomock.Any(), int64(5)).Return(rec, nil)
				m.EXPECT().DeleteFavorite(gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:    "remove from cart when absent",
			handler: HandleRemoveFromCart,
			setup: func(m *database.MockStore) {
				m.EXPECT().GetRecipe(gomock.Any(), int64(5)).Return(rec, nil)
				m.EXPECT().DeleteCartItem(gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiError.NotInCart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, store := apitest.NewEnv(t)
			tt.setup(store)

			w := apitest.Do(t, e, apitest.Request{
				Method:  http.MethodPost,
				Target:  "/api/recipes/5/relation",
				Viewer:  author,
				Params:  map[string]string{"id": "5"},
				Handler: tt.handler,
			})

			if tt.wantCode != "" {
				apitest.ExpectError(t, w, tt.wantStatus, tt.wantCode)
				return
			}
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus == http.StatusCreated {
				got := apitest.Decode[recipe.Summary](t, w)
				if got != (recipe.Summary{ID: 5, Name: "Soup", CookingTime: 30}) {
					t.Errorf("summary = %+v", got)
				}
			}
		})
	}
}

func TestHandleRelations_Anonymous(t *testing.T) {
	e, _ := apitest.NewEnv(t)
	w := apitest.Do(t, e, apitest.Request{
		Method:  http.MethodPost,
		Target:  "/api/recipes/5/favorite",
		Params:  map[string]string{"id": "5"},
		Handler: HandleAddFavorite,
	})
	apitest.ExpectError(t, w, http.StatusUnauthorized, apiError.AuthenticationRequired)
}

func TestHandleDownloadShoppingCart(t *testing.T) {
	rows := []database.GetRecipeIngredientsRow{
		{RecipeID: 1, ID: 1, Name: "Flour", MeasurementUnit: "g", Amount: 200},
		{RecipeID: 2, ID: 1, Name: "Flour", MeasurementUnit: "g", Amount: 300},
		{RecipeID: 2, ID: 3, Name: "Egg", MeasurementUnit: "pcs", Amount: 2},
	}

	tests := []struct {
		name            string
		target          string
		wantType        string
		wantDisposition string
		check           func(t *testing.T, body []byte)
	}{
		{
			name:            "pdf by default",
			target:          "/api/recipes/download_shopping_cart",
			wantType:        "application/pdf",
			wantDisposition: `attachment; filename="shopping_list.pdf"`,
			check: func(t *testing.T, body []byte) {
				if !bytes.HasPrefix(body, []byte("%PDF-")) {
					t.Errorf("body does not start with a PDF header: %q", body[:min(len(body), 16)])
				}
			},
		},
		{
			name:            "text",
			target:          "/api/recipes/download_shopping_cart?format=txt",
			wantType:        "text/plain; charset=utf-8",
			wantDisposition: `attachment; filename="shopping_list.txt"`,
			check: func(t *testing.T, body []byte) {
				if !bytes.Contains(body, []byte("Flour (g): 500")) || !bytes.Contains(body, []byte("Egg (pcs): 2")) {
					t.Errorf("body = %s", body)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, store := apitest.NewEnv(t)
			store.EXPECT().GetCartIngredients(gomock.Any(), author.UserID).Return(rows, nil)

			w := apitest.Do(t, e, apitest.Request{
				Method:  http.MethodGet,
				Target:  tt.target,
				Viewer:  author,
				Handler: HandleDownloadShoppingCart,
			})
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
			}
			if got := w.Header().Get("Content-Type"); got != tt.wantType {
				t.Errorf("Content-Type = %q, want %q", got, tt.wantType)
			}
			if got := w.Header().Get("Content-Disposition"); got != tt.wantDisposition {
				t.Errorf("Content-Disposition = %q, want %q", got, tt.wantDisposition)
			}
			tt.check(t, w.Body.Bytes())
		})
	}
}

func TestHandleDownloadShoppingCart_Rejected(t *testing.T) {
	e, _ := apitest.NewEnv(t)

	w := apitest.Do(t, e, apitest.Request{
		Method:  http.MethodGet,
		Target:  "/api/recipes/download_shopping_cart?format=docx",
		Viewer:  author,
		Handler: HandleDownloadShoppingCart,
	})
	apitest.ExpectError(t, w, http.StatusBadRequest, apiError.BadRequest)

	w = apitest.Do(t, e, apitest.Request{
		Method:  http.MethodGet,
		Target:  "/api/recipes/download_shopping_cart",
		Handler: HandleDownloadShoppingCart,
	})
	apitest.ExpectError(t, w, http.StatusUnauthorized, apiError.AuthenticationRequired)
}
