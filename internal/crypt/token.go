package crypt

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	pkerrors "pagelock/internal/errors"
)

// Payload is a decoded token: the format plus the three binary fields.
type Payload struct {
	Format     Format
	Salt       []byte
	Nonce      []byte
	Ciphertext []byte
}

// EncodeToken serializes (version, salt, nonce, ciphertext) into the
// portable dotted-base64 form. The alphabet (base64 + '.' + digits) is
// safe inside HTML attributes and script bodies without escaping.
func EncodeToken(f Format, salt, nonce, ciphertext []byte) string {
	b64 := base64.StdEncoding
	return strconv.Itoa(f.Version) + "." +
		b64.EncodeToString(salt) + "." +
		b64.EncodeToString(nonce) + "." +
		b64.EncodeToString(ciphertext)
}

// DecodeToken splits a token back into its four fields. The token is
// self-delimiting; no external length information is needed. Any parse
// failure is ErrMalformedToken (distinct from an authentication failure),
// except an unknown-but-well-formed version, which is ErrUnknownVersion.
func DecodeToken(token string) (Payload, error) {
	parts := strings.Split(strings.TrimSpace(token), ".")
	if len(parts) != 4 {
		return Payload{}, fmt.Errorf("%w: expected 4 fields, got %d", pkerrors.ErrMalformedToken, len(parts))
	}

	version, err := strconv.Atoi(parts[0])
	if err != nil {
		return Payload{}, fmt.Errorf("%w: bad version field", pkerrors.ErrMalformedToken)
	}

	f, err := FormatFor(version)
	if err != nil {
		return Payload{}, err
	}

	salt, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return Payload{}, fmt.Errorf("%w: bad salt encoding", pkerrors.ErrMalformedToken)
	}
	if len(salt) != f.SaltLen {
		return Payload{}, fmt.Errorf("%w: salt must be %d bytes", pkerrors.ErrMalformedToken, f.SaltLen)
	}

	nonce, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return Payload{}, fmt.Errorf("%w: bad nonce encoding", pkerrors.ErrMalformedToken)
	}
	if len(nonce) != f.NonceLen {
		return Payload{}, fmt.Errorf("%w: nonce must be %d bytes", pkerrors.ErrMalformedToken, f.NonceLen)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(parts[3])
	if err != nil {
		return Payload{}, fmt.Errorf("%w: bad ciphertext encoding", pkerrors.ErrMalformedToken)
	}
	if len(ciphertext) < gcmTagLen {
		return Payload{}, fmt.Errorf("%w: ciphertext shorter than the authentication tag", pkerrors.ErrMalformedToken)
	}

	return Payload{Format: f, Salt: salt, Nonce: nonce, Ciphertext: ciphertext}, nil
}
