package errors

import (
	"net"
	"strconv"
	"strings"
	"unicode"
)

// ValidateAlphabet validates a move alphabet: exactly four distinct letters,
// one per direction in N, S, E, W order.
//
// The letters end up on a line-oriented wire, so the validation is strict:
//   - Exactly 4 characters
//   - ASCII letters only (no whitespace, no control characters)
//   - No repeated letter
func ValidateAlphabet(alphabet string) error {
	if len(alphabet) != 4 {
		return New(ErrCodeInvalidAlphabet, "alphabet must have exactly 4 letters, got %q", alphabet)
	}

	seen := make(map[rune]bool, 4)
	for _, r := range alphabet {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return New(ErrCodeInvalidAlphabet, "alphabet contains a non-letter: %q", r)
		}
		if seen[r] {
			return New(ErrCodeInvalidAlphabet, "alphabet repeats letter %q", r)
		}
		seen[r] = true
	}

	return nil
}

// ValidateAddr validates a host:port network address.
// The host may be empty (listen on all interfaces); the port must be numeric
// and within 1-65535.
func ValidateAddr(addr string) error {
	if addr == "" {
		return New(ErrCodeInvalidAddr, "address cannot be empty")
	}

	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return Wrap(ErrCodeInvalidAddr, err, "invalid address %q", addr)
	}

	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return New(ErrCodeInvalidAddr, "invalid port in %q", addr)
	}

	return nil
}

// ValidateDir validates a local directory path from configuration.
// It only rejects values that can never be a sane path: empty strings,
// control characters and null bytes.
func ValidateDir(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidConfig, "directory cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "directory contains invalid characters")
		}
	}

	return nil
}
