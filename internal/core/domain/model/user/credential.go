package user

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltLength is the number of random bytes mixed into every derivation.
	SaltLength = 32
	// KeyLength is the size of the derived verifier.
	KeyLength = 32
	// Iterations is the PBKDF2 work factor.
	Iterations = 100_000
)

// Credential is the stored form of a password: a verifier and the salt it was derived with.
type Credential struct {
	key  []byte
	salt []byte
}

// DeriveCredential draws a fresh salt and derives the verifier for password.
// Two derivations of the same password produce different credentials.
func DeriveCredential(password string) (Credential, error) {
	salt := make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return Credential{}, fmt.Errorf("read salt: %w", err)
	}
	return Credential{
		key:  derive(password, salt),
		salt: salt,
	}, nil
}

// RestoreCredential rebuilds a credential from persisted key and salt.
func RestoreCredential(key, salt []byte) Credential {
	return Credential{
		key:  append([]byte(nil), key...),
		salt: append([]byte(nil), salt...),
	}
}

// VerifyCredential reports whether candidate derives to verifier under salt.
// It returns false on any mismatch, including empty or truncated inputs.
func VerifyCredential(candidate string, salt, verifier []byte) bool {
	if len(salt) == 0 || len(verifier) != KeyLength {
		return false
	}
	return subtle.ConstantTimeCompare(derive(candidate, salt), verifier) == 1
}

// Key returns a copy of the derived verifier.
func (c Credential) Key() []byte {
	return append([]byte(nil), c.key...)
}

// Salt returns a copy of the salt.
func (c Credential) Salt() []byte {
	return append([]byte(nil), c.salt...)
}

// Verify checks candidate against this credential.
func (c Credential) Verify(candidate string) bool {
	return VerifyCredential(candidate, c.salt, c.key)
}

func derive(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, Iterations, KeyLength, sha256.New)
}
