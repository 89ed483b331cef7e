// Package jwt provides functions for generating and validating JWTs
package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWTParams struct {
	Role   string
	UserID int64
}

const (
	JWTDuration = 24 * time.Hour
	DefaultKID  = "1"
)

var ErrInvalidClaims = errors.New("invalid claims")

func GenerateJWT(params JWTParams, secret []byte, version string) (string, error) {
	// Build token
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(params.UserID, 10),
		"role": params.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(JWTDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["kid"] = version

	// Sign token
	signedKey, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signedKey, nil
}

func ValidateJWT(rawToken, version string, secret []byte) (*jwt.Token, error) {
	parserFunc := func(token *jwt.Token) (any, error) {
		kidVal, ok := token.Header["kid"].(string)
		if !ok {
			return nil, fmt.Errorf("missing/invalid kid value")
		}

		if kidVal != version {
			return nil, fmt.Errorf("verifying KID value, value=%q", kidVal)
		}

		return secret, nil
	}

	// Parse the token
	token, err := jwt.Parse(rawToken, parserFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	return token, nil
}

// ParamsFromToken reads the subject and role back out of a validated token.
func ParamsFromToken(token *jwt.Token) (JWTParams, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return JWTParams{}, ErrInvalidClaims
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return JWTParams{}, fmt.Errorf("reading subject: %w", err)
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || userID <= 0 {
		return JWTParams{}, fmt.Errorf("parsing subject %q: %w", sub, ErrInvalidClaims)
	}
	roleClaim, ok := claims["role"].(string)
	if !ok {
		return JWTParams{}, fmt.Errorf("missing role: %w", ErrInvalidClaims)
	}
	return JWTParams{UserID: userID, Role: roleClaim}, nil
}
