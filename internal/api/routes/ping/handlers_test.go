package ping

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandlePing(t *testing.T) {
	w := httptest.NewRecorder()
	HandlePing(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"status":"ok"}` {
		t.Errorf("body = %s", got)
	}
}
