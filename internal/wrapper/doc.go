// Package wrapper generates the final protected HTML artifact.
//
// Render substitutes the encrypted token, an optional stylesheet, and a
// title into the embedded viewer page (viewer.html). The viewer carries
// the client-side decryption engine: a WebCrypto re-implementation of the
// crypt package's key derivation, AEAD, and token codec that must stay
// bit-compatible with it. No cryptographic decisions happen in this
// package; it only carries bytes and escapes them for their embedding
// context.
package wrapper
