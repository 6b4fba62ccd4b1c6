package utils

import (
	"fmt"
	"os"

	pkerrors "pagelock/internal/errors"

	"golang.org/x/term"
)

// ReadPassphrase prompts the user for a passphrase without echoing input.
// Returns an error if stdin is not a terminal.
func ReadPassphrase(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return nil, pkerrors.ErrNotTerminal
	}

	fmt.Fprint(os.Stderr, prompt)
	passphrase, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr) // Add newline after hidden input

	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}

	return passphrase, nil
}

// ReadPassphraseConfirmed prompts twice and verifies both entries match.
// Used by commands that create new artifacts, where a typo would lock the
// operator out of their own document.
func ReadPassphraseConfirmed(prompt, confirmPrompt string) ([]byte, error) {
	first, err := ReadPassphrase(prompt)
	if err != nil {
		return nil, err
	}

	second, err := ReadPassphrase(confirmPrompt)
	if err != nil {
		return nil, err
	}

	if string(first) != string(second) {
		return nil, pkerrors.ErrPasswordMismatch
	}
	return first, nil
}

// IsTerminal returns true if stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
