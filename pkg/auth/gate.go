// Package auth restricts tool invocation to operators who know the
// configured password. The comparison engine has no dependency on this
// package; the CLI consults it before starting a run.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrAccessDenied indicates the allowed password attempts were
// exhausted.
var ErrAccessDenied = errors.New("access denied: maximum password attempts exceeded")

// Authorizer gates access to a comparison run.
type Authorizer interface {
	Authorize() error
}

// PasswordGate verifies a 4-digit password against a stored SHA-256
// hash, with a bounded number of attempts and hidden terminal input.
type PasswordGate struct {
	hash        string
	maxAttempts int
	out         io.Writer
	readSecret  func() (string, error)
}

// NewPasswordGate creates a gate for the given password hash. A
// non-positive maxAttempts defaults to 3.
func NewPasswordGate(hash string, maxAttempts int) *PasswordGate {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	return &PasswordGate{
		hash:        hash,
		maxAttempts: maxAttempts,
		out:         os.Stderr,
		readSecret:  readFromTerminal,
	}
}

// Authorize prompts for the password until it matches or attempts run
// out. Format violations consume an attempt, matching the reference
// behavior.
func (g *PasswordGate) Authorize() error {
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		fmt.Fprintf(g.out, "Enter 4-digit password (attempt %d/%d): ", attempt, g.maxAttempts)
		password, err := g.readSecret()
		fmt.Fprintln(g.out)
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}

		if !validFormat(password) {
			fmt.Fprintln(g.out, "Invalid format: password must be exactly 4 digits.")
			continue
		}
		if HashPassword(password) == g.hash {
			return nil
		}
		fmt.Fprintln(g.out, "Incorrect password.")
	}
	return ErrAccessDenied
}

// HashPassword returns the SHA-256 hex digest of a password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func validFormat(password string) bool {
	if len(password) != 4 {
		return false
	}
	for _, r := range password {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func readFromTerminal() (string, error) {
	data, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
