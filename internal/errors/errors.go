package errors

import "errors"

// Password errors indicate the supplied password was not acceptable.
var (
	// ErrWeakPassword indicates the password failed the strength policy.
	ErrWeakPassword = errors.New("password does not meet the strength policy")

	// ErrEmptyPassword indicates no password was supplied at all.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrPasswordMismatch indicates the confirmation prompt did not match.
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// Protocol errors indicate failures while decoding or decrypting a token.
var (
	// ErrMalformedToken indicates the token could not be parsed into its
	// version, salt, nonce, and ciphertext fields.
	ErrMalformedToken = errors.New("token is malformed")

	// ErrAuthFailure indicates the authentication tag did not verify:
	// wrong password or tampered ciphertext.
	ErrAuthFailure = errors.New("decryption failed: wrong password or corrupted data")

	// ErrUnknownVersion indicates the token names a format version this
	// build does not know.
	ErrUnknownVersion = errors.New("unknown token format version")
)

// Terminal errors indicate interactive input was not possible.
var (
	// ErrNotTerminal indicates a password prompt was needed but stdin is
	// not attached to a terminal.
	ErrNotTerminal = errors.New("cannot prompt for password: stdin is not a terminal")
)
