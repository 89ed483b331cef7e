// Package token contains utilities for http tokens.
package token

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/matt-dz/foodgram/internal/jwt"
	"github.com/matt-dz/foodgram/internal/role"
	"github.com/matt-dz/foodgram/internal/viewer"
)

const authorizationHeader = "Authorization"

// Accepted authorization schemes.
var schemes = []string{"Token", "Bearer"}

var (
	ErrNoToken         = errors.New("no token")
	ErrMalformedHeader = errors.New("malformed authorization header")
	ErrUnknownRole     = errors.New("unknown role")
)

// Response is the body returned by a successful login.
type Response struct {
	AuthToken string `json:"auth_token"`
}

// NewAccessToken signs a token for the given user.
func NewAccessToken(userID int64, r role.Role, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("app secret not configured")
	}
	token, err := jwt.GenerateJWT(jwt.JWTParams{
		UserID: userID,
		Role:   r.String(),
	}, secret, jwt.DefaultKID)
	if err != nil {
		return "", fmt.Errorf("generating access token: %w", err)
	}
	return token, nil
}

// FromRequest extracts the raw token from the Authorization header. It
// returns ErrNoToken when the header is absent.
func FromRequest(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get(authorizationHeader))
	if header == "" {
		return "", ErrNoToken
	}
	scheme, raw, ok := strings.Cut(header, " ")
	if !ok {
		return "", ErrMalformedHeader
	}
	raw = strings.TrimSpace(raw)
	for _, s := range schemes {
		if strings.EqualFold(scheme, s) && raw != "" {
			return raw, nil
		}
	}
	return "", ErrMalformedHeader
}

// ParseAccessToken validates raw and returns the viewer it identifies.
func ParseAccessToken(raw string, secret []byte) (viewer.Viewer, error) {
	token, err := jwt.ValidateJWT(raw, jwt.DefaultKID, secret)
	if err != nil {
		return viewer.Anonymous(), err
	}
	params, err := jwt.ParamsFromToken(token)
	if err != nil {
		return viewer.Anonymous(), err
	}
	r := role.ToRole(params.Role)
	if r == role.RoleUnknown {
		return viewer.Anonymous(), fmt.Errorf("%w: %q", ErrUnknownRole, params.Role)
	}
	return viewer.User(params.UserID, r), nil
}
