package crypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	pkerrors "pagelock/internal/errors"
)

// seal encrypts plaintext with AES-256-GCM under the derived key, binding
// the format's associated data. The returned ciphertext includes the
// authentication tag.
func seal(key, nonce, plaintext []byte, f Format) ([]byte, error) {
	gcm, err := newGCM(key, f)
	if err != nil {
		return nil, err
	}
	if len(nonce) != f.NonceLen {
		return nil, fmt.Errorf("nonce must be %d bytes, got %d", f.NonceLen, len(nonce))
	}
	return gcm.Seal(nil, nonce, plaintext, f.aad()), nil
}

// open decrypts and authenticates ciphertext produced by seal. Any tag
// mismatch, including one caused by a wrong-password key, yields
// ErrAuthFailure; no plaintext is ever released unauthenticated.
func open(key, nonce, ciphertext []byte, f Format) ([]byte, error) {
	gcm, err := newGCM(key, f)
	if err != nil {
		return nil, err
	}
	if len(nonce) != f.NonceLen {
		return nil, fmt.Errorf("%w: bad nonce length", pkerrors.ErrMalformedToken)
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, f.aad())
	if err != nil {
		return nil, pkerrors.ErrAuthFailure
	}
	return plaintext, nil
}

func newGCM(key []byte, f Format) (cipher.AEAD, error) {
	if len(key) != f.KeyLen {
		return nil, fmt.Errorf("aes-gcm requires a %d-byte key, got %d", f.KeyLen, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, f.NonceLen)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// newNonce returns a fresh random nonce for a format. The key underneath
// is single-use (fresh salt per encryption), but a random nonce keeps the
// construction safe even if a caller ever reuses a salt.
func newNonce(f Format) ([]byte, error) {
	nonce := make([]byte, f.NonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return nonce, nil
}
