// Package files serves stored recipe images.
package files

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/requestid"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/fileserver"
)

const cacheControl = "public, max-age=86400"

// HandleGetFile godoc
//
//	@Summary	Download a stored image.
//	@Tags		Files
//	@Produce	image/png,image/jpeg,image/gif,image/webp
//	@Param		key	path	string	true	"Image key"
//	@Success	200
//	@Failure	404	{object}	apiError.Error
//	@Router		/files/{key} [GET]
func HandleGetFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	key := strings.Trim(chi.URLParam(r, "*"), "/")
	if key == "" {
		_ = apiError.EncodeError(w, apiError.ImageNotFound, "image not found", requestID)
		return
	}

	data, err := env.FileStore.ReadKey(ctx, key)
	if errors.Is(err, fileserver.ErrNotExist) || errors.Is(err, fileserver.ErrInvalidPath) {
		env.Logger.DebugContext(ctx, "image not found", slog.String("key", key))
		_ = apiError.EncodeError(w, apiError.ImageNotFound, "image not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to read image", slog.String("key", key), slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.Header().Set("Cache-Control", cacheControl)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
