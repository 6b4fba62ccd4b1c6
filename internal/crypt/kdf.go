package crypt

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// DeriveKey derives the symmetric key for a format from a password and
// salt. The result is a pure function of its inputs: the embedded viewer
// must arrive at the identical key from the identical inputs, so this is
// part of the frozen protocol, not an implementation detail.
func DeriveKey(password string, salt []byte, f Format) []byte {
	return pbkdf2.Key([]byte(password), salt, f.Iterations, f.KeyLen, sha256.New)
}

// newSalt returns a fresh random salt for a format. Salts are generated
// once per encryption and are not secret.
func newSalt(f Format) ([]byte, error) {
	salt := make([]byte, f.SaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}
