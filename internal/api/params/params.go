// Package params reads path and query parameters.
package params

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/matt-dz/foodgram/internal/apperr"
)

// ID reads a positive integer path parameter.
func ID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, apperr.Invalid(apperr.CodeBadRequest, name, "expected a positive integer, got %q", raw)
	}
	return id, nil
}

// Bool reads a boolean query parameter. Missing means false.
func Bool(q url.Values, name string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(q.Get(name))) {
	case "", "0", "false":
		return false, nil
	case "1", "true":
		return true, nil
	default:
		return false, apperr.Invalid(apperr.CodeBadRequest, name, "expected one of 1, 0, true, false")
	}
}

// OptionalInt reads an integer query parameter; nil when missing.
func OptionalInt(q url.Values, name string) (*int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperr.Invalid(apperr.CodeBadRequest, name, "expected an integer, got %q", raw)
	}
	return &n, nil
}

// OptionalID reads a positive integer query parameter; nil when missing.
func OptionalID(q url.Values, name string) (*int64, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return nil, apperr.Invalid(apperr.CodeBadRequest, name, "expected a positive integer, got %q", raw)
	}
	return &id, nil
}

// Strings collects a repeated query parameter, dropping blanks.
func Strings(q url.Values, name string) []string {
	var out []string
	for _, v := range q[name] {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// RequestURL is r's URL made absolute against hostOrigin, for pagination
// links.
func RequestURL(r *http.Request, hostOrigin string) *url.URL {
	u := *r.URL
	if base, err := url.Parse(hostOrigin); err == nil && base.Host != "" {
		u.Scheme, u.Host = base.Scheme, base.Host
	}
	return &u
}
