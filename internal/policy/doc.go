// Package policy validates candidate passwords before they are used for
// encryption.
//
// The check is pure: it never touches the cryptographic path. A rejected
// password can still be used by passing the allow-unsafe override, which
// only suppresses the rejection, never alters how the key is derived.
//
// Thresholds (minimum length, character classes, zxcvbn score) are
// configuration constants of this package, not protocol invariants; they
// can change between releases without affecting existing artifacts.
package policy
