// Package argon2id hashes passwords into PHC strings of the form
// $argon2id$v=19$m=<KiB>,t=<passes>,p=<lanes>$<salt>$<key>.
package argon2id

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrInvalidHash         = errors.New("the encoded hash is not in the correct format")
	ErrIncompatibleVersion = errors.New("incompatible version of argon2")
)

const (
	DefaultMemory      = 64 * 1024 // 64 MB
	DefaultIterations  = 1
	DefaultParallelism = 4
	DefaultSaltLength  = 16
	DefaultKeyLength   = 32
)

const algorithm = "argon2id"

var b64 = base64.RawStdEncoding.Strict()

type ArgonParams struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

var DefaultParams = ArgonParams{
	Memory:      DefaultMemory,
	Iterations:  DefaultIterations,
	Parallelism: DefaultParallelism,
	SaltLength:  DefaultSaltLength,
	KeyLength:   DefaultKeyLength,
}

func EncodeHash(password string, p ArgonParams) (string, error) {
	salt := make([]byte, p.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	return EncodeHashWithSalt(password, p, salt), nil
}

func EncodeHashWithSalt(password string, p ArgonParams, salt []byte) string {
	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithm, argon2.Version, p.Memory, p.Iterations, p.Parallelism,
		b64.EncodeToString(salt), b64.EncodeToString(HashWithSalt(password, p, salt)))
}

func HashWithSalt(password string, p ArgonParams, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLength)
}

// DecodeHash splits an encoded hash into its parameters, salt and key.
func DecodeHash(encodedHash string) (ArgonParams, []byte, []byte, error) {
	var p ArgonParams

	// "", algorithm, version, params, salt, key
	sections := strings.Split(encodedHash, "$")
	if len(sections) != 6 || sections[0] != "" || sections[1] != algorithm {
		return p, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(sections[2], "v=%d", &version); err != nil {
		return p, nil, nil, fmt.Errorf("version %q: %w", sections[2], ErrInvalidHash)
	}
	if version != argon2.Version {
		return p, nil, nil, ErrIncompatibleVersion
	}

	if _, err := fmt.Sscanf(sections[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Iterations, &p.Parallelism); err != nil {
		return p, nil, nil, fmt.Errorf("parameters %q: %w", sections[3], ErrInvalidHash)
	}

	salt, err := b64.DecodeString(sections[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("salt: %w", errors.Join(ErrInvalidHash, err))
	}
	key, err := b64.DecodeString(sections[5])
	if err != nil {
		return p, nil, nil, fmt.Errorf("key: %w", errors.Join(ErrInvalidHash, err))
	}
	p.SaltLength = uint32(len(salt))
	p.KeyLength = uint32(len(key))
	return p, salt, key, nil
}

// Verify reports whether password matches encodedHash.
func Verify(password, encodedHash string) (bool, error) {
	p, salt, key, err := DecodeHash(encodedHash)
	if err != nil {
		return false, err
	}
	given := HashWithSalt(password, p, salt)
	return subtle.ConstantTimeCompare(given, key) == 1, nil
}

// NeedsRehash reports whether encodedHash was produced with parameters other
// than want. Undecodable hashes always need a rehash.
func NeedsRehash(encodedHash string, want ArgonParams) bool {
	p, _, _, err := DecodeHash(encodedHash)
	if err != nil {
		return true
	}
	return p != want
}
