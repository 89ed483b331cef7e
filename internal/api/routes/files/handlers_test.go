package files

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/matt-dz/foodgram/internal/api/apitest"
	apiError "github.com/matt-dz/foodgram/internal/api/error"
)

func TestHandleGetFile(t *testing.T) {
	e, _ := apitest.NewEnv(t)
	png := []byte("\x89PNG\r\n\x1a\nfake")
	key, err := e.FileStore.WriteRecipeImage(context.Background(), ".png", png)
	if err != nil {
		t.Fatal(err)
	}

	w := apitest.Do(t, e, apitest.Request{
		Method:  http.MethodGet,
		Target:  "/files/" + key,
		Params:  map[string]string{"*": key},
		Handler: HandleGetFile,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Type"); got != "image/png" {
		t.Errorf("Content-Type = %q", got)
	}
	if !bytes.Equal(w.Body.Bytes(), png) {
		t.Errorf("body = %q", w.Body.Bytes())
	}
}

func TestHandleGetFile_NotFound(t *testing.T) {
	for _, key := range []string{"", "recipes/missing.png", "secrets/app.key", "recipes/../../etc/passwd"} {
		t.Run(key, func(t *testing.T) {
			e, _ := apitest.NewEnv(t)
			w := apitest.Do(t, e, apitest.Request{
				Method:  http.MethodGet,
				Target:  "/files/x",
				Params:  map[string]string{"*": key},
				Handler: HandleGetFile,
			})
			apitest.ExpectError(t, w, http.StatusNotFound, apiError.ImageNotFound)
		})
	}
}
