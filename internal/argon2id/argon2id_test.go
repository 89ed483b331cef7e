package argon2id

import (
	"errors"
	"strings"
	"testing"
)

var testParams = ArgonParams{
	Memory:      8 * 1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  DefaultSaltLength,
	KeyLength:   DefaultKeyLength,
}

func TestEncodeAndVerify(t *testing.T) {
	hash, err := EncodeHash("Sup3r$ecretPassw0rd", testParams)
	if err != nil {
		t.Fatalf("EncodeHash() error = %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$m=8192,t=1,p=1$") {
		t.Errorf("unexpected hash format %q", hash)
	}

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"correct password", "Sup3r$ecretPassw0rd", true},
		{"wrong password", "Sup3r$ecretPassw0rD", false},
		{"empty password", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := Verify(tt.password, hash)
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if ok != tt.want {
				t.Errorf("Verify() = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestDecodeHash(t *testing.T) {
	salt := []byte("0123456789abcdef")
	encoded := EncodeHashWithSalt("password", testParams, salt)

	p, gotSalt, hash, err := DecodeHash(encoded)
	if err != nil {
		t.Fatalf("DecodeHash() error = %v", err)
	}
	if string(gotSalt) != string(salt) {
		t.Errorf("salt = %q, want %q", gotSalt, salt)
	}
	if p.Memory != testParams.Memory || p.Iterations != testParams.Iterations || p.Parallelism != testParams.Parallelism {
		t.Errorf("params = %+v, want %+v", p, testParams)
	}
	if uint32(len(hash)) != testParams.KeyLength {
		t.Errorf("key length = %d, want %d", len(hash), testParams.KeyLength)
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		want    error
	}{
		{"too few sections", "$argon2id$v=19$garbage", ErrInvalidHash},
		{"other algorithm", "$argon2i$v=19$m=8192,t=1,p=1$c2FsdA$a2V5", ErrInvalidHash},
		{"old version", "$argon2id$v=16$m=8192,t=1,p=1$c2FsdA$a2V5", ErrIncompatibleVersion},
		{"bad parameters", "$argon2id$v=19$m=lots$c2FsdA$a2V5", ErrInvalidHash},
		{"bad salt", "$argon2id$v=19$m=8192,t=1,p=1$!!$a2V5", ErrInvalidHash},
		{"bcrypt", "$2b$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW", ErrInvalidHash},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Verify("password", tt.encoded); !errors.Is(err, tt.want) {
				t.Errorf("Verify() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNeedsRehash(t *testing.T) {
	hash, err := EncodeHash("password", testParams)
	if err != nil {
		t.Fatal(err)
	}

	stronger := testParams
	stronger.Iterations = 2

	if NeedsRehash(hash, testParams) {
		t.Error("NeedsRehash() = true for matching parameters")
	}
	if !NeedsRehash(hash, stronger) {
		t.Error("NeedsRehash() = false after the iteration count changed")
	}
	if !NeedsRehash("not a hash", testParams) {
		t.Error("NeedsRehash() = false for an undecodable hash")
	}
}
