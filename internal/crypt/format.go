package crypt

import (
	"fmt"
	"strconv"

	pkerrors "pagelock/internal/errors"
)

// Format is one frozen protocol parameter set. All sizes are in bytes.
type Format struct {
	Version    int
	Iterations int
	SaltLen    int
	NonceLen   int
	KeyLen     int
}

// DefaultVersion is the format used for newly encrypted documents.
// Decoding always honors the version named by the token, never this.
const DefaultVersion = 2

// gcmTagLen is the AES-GCM authentication tag length.
const gcmTagLen = 16

// AADPrefix is prepended to the decimal format version to form the AEAD
// associated data. The embedded viewer carries the same literal.
const AADPrefix = "pagelock/v"

// formats is the closed version table. Entries are append-only: existing
// versions must never be edited, or every artifact published under them
// silently breaks. The viewer's FORMATS table mirrors this exactly.
var formats = map[int]Format{
	1: {Version: 1, Iterations: 100000, SaltLen: 16, NonceLen: 12, KeyLen: 32},
	2: {Version: 2, Iterations: 600000, SaltLen: 16, NonceLen: 12, KeyLen: 32},
}

// FormatFor returns the parameter set for a format version.
func FormatFor(version int) (Format, error) {
	f, ok := formats[version]
	if !ok {
		return Format{}, fmt.Errorf("%w: %d", pkerrors.ErrUnknownVersion, version)
	}
	return f, nil
}

// Versions returns every known format version in ascending order.
func Versions() []int {
	out := make([]int, 0, len(formats))
	for v := 1; ; v++ {
		if _, ok := formats[v]; !ok {
			return out
		}
		out = append(out, v)
	}
}

// aad returns the associated data bound into the AEAD for a format.
// Binding the version prevents a token from being re-labeled to an older
// parameter set without failing authentication.
func (f Format) aad() []byte {
	return []byte(AADPrefix + strconv.Itoa(f.Version))
}
