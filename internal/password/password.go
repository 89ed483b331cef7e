// Package password checks that new passwords are acceptable.
package password

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	passwordvalidator "github.com/wagslane/go-password-validator"
)

const (
	MinLength = 8
	MaxLength = 128

	minEntropyBits = 50
	// Attributes shorter than this are too common to compare against.
	minAttributeLength = 3
)

var (
	ErrTooShort       = errors.New("password must be at least 8 characters long")
	ErrTooLong        = errors.New("password must be at most 128 characters long")
	ErrEntirelyNumber = errors.New("password can not be entirely numeric")
	ErrTooSimilar     = errors.New("password is too similar to the account details")
	ErrTooWeak        = errors.New("password is too weak")
)

// ValidatePassword reports the first rule password breaks. attributes are
// account details (username, email, names) the password must not contain.
func ValidatePassword(password string, attributes ...string) error {
	n := utf8.RuneCountInString(password)
	if n < MinLength {
		return ErrTooShort
	}
	if n > MaxLength {
		return ErrTooLong
	}
	if strings.IndexFunc(password, func(r rune) bool { return !unicode.IsDigit(r) }) == -1 {
		return ErrEntirelyNumber
	}

	lower := strings.ToLower(password)
	for _, attr := range attributes {
		for _, part := range attributeParts(attr) {
			if strings.Contains(lower, part) {
				return ErrTooSimilar
			}
		}
	}

	if err := passwordvalidator.Validate(password, minEntropyBits); err != nil {
		return errors.Join(ErrTooWeak, err)
	}
	return nil
}

// attributeParts splits an attribute into the pieces a user would reuse. Only
// the local part of an email counts.
func attributeParts(attr string) []string {
	attr = strings.ToLower(strings.TrimSpace(attr))
	if local, _, ok := strings.Cut(attr, "@"); ok {
		attr = local
	}
	fields := strings.FieldsFunc(attr, func(r rune) bool {
		return r == '.' || r == '+' || r == '_' || r == '-' || unicode.IsSpace(r)
	})
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minAttributeLength {
			parts = append(parts, f)
		}
	}
	return parts
}
