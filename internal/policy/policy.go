package policy

import (
	"fmt"
	"strings"
	"unicode"

	pkerrors "pagelock/internal/errors"

	"github.com/nbutton23/zxcvbn-go"
)

const (
	// MinLength is the minimum accepted password length.
	MinLength = 8

	// MinCharClasses is how many of the four character classes
	// (lower, upper, digit, special) a password must contain.
	MinCharClasses = 3

	// MinScore is the minimum zxcvbn score (0-4). Score 2 roughly means
	// "not guessable with a few thousand attempts".
	MinScore = 2
)

// Result is the outcome of a policy check. When OK is false, Reasons
// lists every rule the password failed, in a fixed order.
type Result struct {
	OK      bool
	Reasons []string
}

// Validate applies the strength policy to a candidate password. It is a
// pure check with no side effects; the password is never stored.
func Validate(password string) Result {
	var reasons []string

	if len(password) < MinLength {
		reasons = append(reasons, fmt.Sprintf("must be at least %d characters long", MinLength))
	}

	if n := countCharClasses(password); n < MinCharClasses {
		reasons = append(reasons, fmt.Sprintf(
			"must contain at least %d of: lowercase, uppercase, digits, special characters", MinCharClasses))
	}

	if password != "" {
		if score := zxcvbn.PasswordStrength(password, nil).Score; score < MinScore {
			reasons = append(reasons, "is too guessable (avoid common words and patterns)")
		}
	}

	return Result{OK: len(reasons) == 0, Reasons: reasons}
}

// Check runs Validate and converts a rejection into ErrWeakPassword.
// With allowUnsafe set, a weak password is accepted without complaint;
// an empty password is never accepted.
func Check(password string, allowUnsafe bool) error {
	if password == "" {
		return pkerrors.ErrEmptyPassword
	}
	if allowUnsafe {
		return nil
	}

	result := Validate(password)
	if result.OK {
		return nil
	}
	return fmt.Errorf("%w: password %s", pkerrors.ErrWeakPassword, strings.Join(result.Reasons, "; password "))
}

func countCharClasses(s string) int {
	var lower, upper, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}

	n := 0
	for _, present := range []bool{lower, upper, digit, special} {
		if present {
			n++
		}
	}
	return n
}
