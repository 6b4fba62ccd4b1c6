// Package errors defines the sentinel error values used across Pagelock.
//
// Errors are grouped by the stage that produces them. Callers match with
// errors.Is after values have been wrapped with additional context.
//
// The distinction between ErrMalformedToken and ErrAuthFailure matters on
// the encoder side only: the operator is trusted and gets a specific
// message, while the embedded viewer reports both identically.
package errors
