package middleware

import "errors"

var ErrAppSecretNotConfigured = errors.New("app secret not configured")
