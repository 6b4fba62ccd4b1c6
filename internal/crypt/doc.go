// Package crypt implements Pagelock's password-based authenticated
// encryption protocol: key derivation, the AEAD seal/open pair, and the
// portable token codec.
//
// # Protocol
//
// A document is encrypted under a key derived from (password, salt) with
// PBKDF2-HMAC-SHA256 and sealed with AES-256-GCM. The result travels as a
// single printable token:
//
//	<version>.<base64(salt)>.<base64(nonce)>.<base64(ciphertext||tag)>
//
// The leading version selects a fixed parameter set (iteration count and
// sizes) from a closed table. Parameter sets are frozen: once a version
// has shipped, its entry never changes, so every previously published
// artifact stays decodable. New defaults get a new version number.
//
// The format version is also bound into the GCM associated data, so a
// token rewritten to claim a different version fails authentication.
//
// # The second implementation
//
// The embedded viewer (internal/wrapper/viewer.html) re-implements
// derivation, decryption, and token decoding on WebCrypto and must stay
// bit-compatible with this package forever. Both sides implement the
// table above, not each other. Change one only with a new version, and
// keep the conformance tests in sync.
//
// # Key hygiene
//
// Passwords and derived keys are scoped to a single call. Keys are never
// cached; every decrypt attempt re-derives from scratch.
package crypt
