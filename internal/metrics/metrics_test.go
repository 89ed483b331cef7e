package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestInstrument(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(m.Instrument)
	r.Get("/api/recipes/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})

	for _, path := range []string{"/api/recipes/1", "/api/recipes/2", "/api/ping"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(m.Requests.WithLabelValues("GET", "/api/recipes/{id}", "404")); got != 2 {
		t.Errorf("recipe requests = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.Requests.WithLabelValues("GET", "/api/ping", "200")); got != 1 {
		t.Errorf("ping requests = %v, want 1", got)
	}
}

func TestHandler(t *testing.T) {
	m := New()
	m.RelationChanges.WithLabelValues("favorite", "add").Inc()

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	res, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}

	want := `foodgram_relation_changes_total{action="add",kind="favorite"} 1`
	if !strings.Contains(string(body), want) {
		t.Errorf("metrics output does not contain %q", want)
	}
}

func TestNew_Independent(t *testing.T) {
	a, b := New(), New()
	a.FollowChanges.WithLabelValues("follow").Inc()
	if got := testutil.ToFloat64(b.FollowChanges.WithLabelValues("follow")); got != 0 {
		t.Errorf("second registry saw %v follows, want 0", got)
	}
}
