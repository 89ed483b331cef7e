// Package apitest builds environments and requests for handler tests.
package apitest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/requestid"
	"github.com/matt-dz/foodgram/internal/config"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/fileserver"
	"github.com/matt-dz/foodgram/internal/filestore"
	"github.com/matt-dz/foodgram/internal/viewer"
)

const (
	AppSecret  = "test-secret-32-bytes-long-12345"
	HostOrigin = "http://localhost:8080"
	RequestID  = "01TESTREQUEST"
)

// NewEnv returns an Env whose services run against a mock store and a file
// store rooted in a temporary directory. ExecTx runs its callback against
// the same mock.
func NewEnv(t *testing.T) (*env.Env, *database.MockStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := database.NewMockStore(ctrl)
	store.EXPECT().
		ExecTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(database.Querier) error) error {
			return fn(store)
		}).
		AnyTimes()

	secret := config.AppSecretValue(AppSecret)
	e := env.New(&config.Config{
		AppSecret:  config.AppSecret{Value: &secret},
		HostOrigin: HostOrigin,
		Pagination: config.Pagination{DefaultLimit: 6},
	})
	e.Database = store
	e.FileStore = filestore.New(fileserver.New(t.TempDir()), "/files", HostOrigin)
	e.InitServices()
	return e, store
}

// Request describes one call to a handler.
type Request struct {
	Method  string
	Target  string
	Body    io.Reader
	Header  http.Header
	Viewer  viewer.Viewer
	Params  map[string]string
	Handler http.HandlerFunc
}

// Do runs req against its handler with e, the viewer and the chi URL params
// in the request context.
func Do(t *testing.T, e *env.Env, req Request) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(req.Method, req.Target, req.Body)
	for k, vs := range req.Header {
		for _, v := range vs {
			r.Header.Add(k, v)
		}
	}
	if req.Body != nil && r.Header.Get("Content-Type") == "" {
		r.Header.Set("Content-Type", "application/json")
	}

	rctx := chi.NewRouteContext()
	for k, v := range req.Params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	ctx = env.WithCtx(ctx, e)
	ctx = requestid.InjectRequestID(ctx, RequestID)
	ctx = viewer.WithCtx(ctx, req.Viewer)

	w := httptest.NewRecorder()
	req.Handler(w, r.WithContext(ctx))
	return w
}

// DecodeError reads an API error body.
func DecodeError(t *testing.T, w *httptest.ResponseRecorder) apiError.Error {
	t.Helper()
	var body apiError.Error
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding error body %q: %v", w.Body.String(), err)
	}
	return body
}

// Decode reads a JSON body into a T.
func Decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("decoding body %q: %v", w.Body.String(), err)
	}
	return v
}

// ExpectError fails t unless w holds an API error with status and code.
func ExpectError(t *testing.T, w *httptest.ResponseRecorder, status int, code apiError.ErrorCode) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status = %d, want %d (%s)", w.Code, status, w.Body.String())
	}
	body := DecodeError(t, w)
	if body.Code != code {
		t.Errorf("code = %q, want %q", body.Code, code)
	}
	if body.ErrorID != RequestID {
		t.Errorf("error_id = %q, want %q", body.ErrorID, RequestID)
	}
}
