// Package apperr contains the domain errors returned by the services.
package apperr

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("authentication required")
)

// Error pairs a sentinel kind with a stable machine-readable code and a
// human-readable message.
type Error struct {
	Kind    error
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, code, format string, args ...any) error {
	return &Error{Kind: kind, Code: code, Message: fmt.Sprintf(format, args...)}
}

func NotFound(code, format string, args ...any) error {
	return newError(ErrNotFound, code, format, args...)
}

func Conflict(code, format string, args ...any) error {
	return newError(ErrConflict, code, format, args...)
}

func Forbidden(code, format string, args ...any) error {
	return newError(ErrForbidden, code, format, args...)
}

func Unauthenticated(code, format string, args ...any) error {
	return newError(ErrUnauthenticated, code, format, args...)
}

// ValidationError collects per-field messages. The first message added is the
// headline unless SetMessage overrides it.
type ValidationError struct {
	Code    string
	Message string
	Fields  map[string][]string
}

func NewValidationError(code string) *ValidationError {
	return &ValidationError{Code: code}
}

func (v *ValidationError) Error() string {
	if v.Message != "" {
		return v.Message
	}
	keys := slices.Sorted(maps.Keys(v.Fields))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(v.Fields[k], ", "))
	}
	return strings.Join(parts, "; ")
}

func (v *ValidationError) Add(field, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if v.Fields == nil {
		v.Fields = make(map[string][]string)
	}
	v.Fields[field] = append(v.Fields[field], msg)
	if v.Message == "" {
		v.Message = msg
	}
}

func (v *ValidationError) SetMessage(format string, args ...any) {
	v.Message = fmt.Sprintf(format, args...)
}

func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0 || v.Message != ""
}

// Err returns v when something was recorded and nil otherwise.
func (v *ValidationError) Err() error {
	if v == nil || !v.HasErrors() {
		return nil
	}
	return v
}

// Invalid returns a validation error holding a single field message.
func Invalid(code, field, format string, args ...any) error {
	v := NewValidationError(code)
	v.Add(field, format, args...)
	return v
}

// CodeOf returns the code carried by err, or "" when err carries none.
func CodeOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr.Code
	}
	return ""
}
