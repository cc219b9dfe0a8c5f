// Package password implements the archive's password policy gate and the
// CLI's interactive, echo-disabled prompt.
package password

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	zxcvbn "github.com/nbutton23/zxcvbn-go"
	"golang.org/x/term"
)

var (
	ErrTooShort = errors.New("password too short (minimum 8 characters)")
	ErrTooWeak  = errors.New("password must contain uppercase, lowercase, digits, and a special character")
	ErrEmpty    = errors.New("password cannot be empty")
	ErrMismatch = errors.New("passwords do not match")
)

// MinLength is the minimum password length Accept allows when allowWeak is
// false.
const MinLength = 8

// Accept implements the archive's password policy exactly as the reference
// check_password_strength does: a minimum length and at least one character
// from each of four classes (upper, lower, digit, everything else). When
// allowWeak is set, every check is skipped, the length check included.
func Accept(pw []byte, allowWeak bool) error {
	if allowWeak {
		return nil
	}
	if len(pw) < MinLength {
		return ErrTooShort
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, c := range pw {
		switch {
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= '0' && c <= '9':
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if !(hasUpper && hasLower && hasDigit && hasSpecial) {
		return ErrTooWeak
	}
	return nil
}

// StrengthReport is a purely informative score, never a gate: CLI output
// can show it alongside the pass/fail verdict from Accept, but Accept is
// what decides whether an operation proceeds.
type StrengthReport struct {
	Score            int // 0 (weakest) to 4 (strongest)
	CrackTimeDisplay string
}

// Score runs zxcvbn's entropy estimator over pw. It never errors; an
// estimation failure just yields the zero-value (weakest) report.
func Score(pw []byte) StrengthReport {
	result := zxcvbn.PasswordStrength(string(pw), nil)
	return StrengthReport{
		Score:            result.Score,
		CrackTimeDisplay: result.CrackTimeDisplay,
	}
}

func isTerminal() bool {
	return term.IsTerminal(int(syscall.Stdin))
}

func readLineSecure(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	if !isTerminal() {
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(raw), nil
}

// ReadInteractive prompts for a password on the controlling terminal with
// echo disabled, falling back to a buffered line read when stdin is not a
// terminal (e.g. piped input in scripts). When confirm is set, it prompts a
// second time and requires the two entries to match.
func ReadInteractive(confirm bool) ([]byte, error) {
	pw, err := readLineSecure("Password: ")
	if err != nil {
		return nil, err
	}
	if pw == "" {
		return nil, ErrEmpty
	}
	if confirm {
		again, err := readLineSecure("Confirm password: ")
		if err != nil {
			return nil, err
		}
		if pw != again {
			return nil, ErrMismatch
		}
	}
	return []byte(pw), nil
}
