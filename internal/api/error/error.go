// Package error contains the JSON error body returned by the API and the
// mapping from domain errors onto it.
package error

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/matt-dz/foodgram/internal/apperr"
)

type Error struct {
	Status  int                 `json:"status"`
	Code    ErrorCode           `json:"code"`
	Message string              `json:"message"`
	ErrorID string              `json:"error_id"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

func Encode(w http.ResponseWriter, e *Error) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	return json.NewEncoder(w).Encode(e)
}

// EncodeError writes an error body whose status is derived from code.
func EncodeError(w http.ResponseWriter, code ErrorCode, message, errorID string) error {
	status := code.StatusCode()
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return Encode(w, &Error{
		Status:  status,
		Code:    code,
		Message: message,
		ErrorID: errorID,
	})
}

func EncodeInternalError(w http.ResponseWriter, errorID string) error {
	return EncodeError(w, InternalServerError, "internal server error", errorID)
}

// FromError maps a domain error onto an API error. The second result is
// false when err carries no domain kind and should be treated as internal.
func FromError(err error, errorID string) (*Error, bool) {
	var verr *apperr.ValidationError
	if errors.As(err, &verr) {
		return &Error{
			Status:  http.StatusBadRequest,
			Code:    codeOr(verr.Code, BadRequest),
			Message: verr.Error(),
			ErrorID: errorID,
			Fields:  verr.Fields,
		}, true
	}

	var status int
	var fallback ErrorCode
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		status, fallback = http.StatusNotFound, NotFound
	case errors.Is(err, apperr.ErrConflict):
		status, fallback = http.StatusConflict, BadRequest
	case errors.Is(err, apperr.ErrForbidden):
		status, fallback = http.StatusForbidden, InsufficientPermissions
	case errors.Is(err, apperr.ErrUnauthenticated):
		status, fallback = http.StatusUnauthorized, AuthenticationRequired
	default:
		return &Error{
			Status:  http.StatusInternalServerError,
			Code:    InternalServerError,
			Message: "internal server error",
			ErrorID: errorID,
		}, false
	}

	e := &Error{
		Status:  status,
		Code:    codeOr(apperr.CodeOf(err), fallback),
		Message: err.Error(),
		ErrorID: errorID,
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		e.Message = appErr.Message
	}
	if e.Code == InvalidCredentials {
		e.Status = InvalidCredentials.StatusCode()
	}
	return e, true
}

// Respond writes err to w. Domain errors are logged at debug level and
// everything else as an internal error.
func Respond(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error, errorID string) {
	apiErr, known := FromError(err, errorID)
	if known {
		logger.DebugContext(ctx, "request rejected", slog.String("code", apiErr.Code.String()), slog.Any("error", err))
	} else {
		logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
	}
	if err := Encode(w, apiErr); err != nil {
		logger.ErrorContext(ctx, "failed to write error response", slog.Any("error", err))
	}
}

func codeOr(code string, fallback ErrorCode) ErrorCode {
	if code == "" {
		return fallback
	}
	return ErrorCode(code)
}
