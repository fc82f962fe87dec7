package qrgen

import (
	"crypto/rand"
	"fmt"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// CodeLength is the fixed length of public lookup codes.
	CodeLength = 6

	// Largest byte range that divides evenly into the alphabet; bytes at
	// or above it are rejected so every symbol is equally likely.
	maxRandByte = 256 - (256 % len(codeAlphabet))
)

// NewLookupCode draws a 6-character code uniformly from [A-Z0-9].
// Uniqueness is probabilistic only; callers check the store and retry on
// collision.
func NewLookupCode() (string, error) {
	code := make([]byte, 0, CodeLength)
	buf := make([]byte, CodeLength)
	for len(code) < CodeLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= maxRandByte {
				continue
			}
			code = append(code, codeAlphabet[int(b)%len(codeAlphabet)])
			if len(code) == CodeLength {
				break
			}
		}
	}
	return string(code), nil
}
