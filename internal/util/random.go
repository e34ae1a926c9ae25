package util

import (
	"crypto/rand"
	"fmt"
)

const SaltSize = 16

func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("generating random bytes: %w", err)
	}
	return b, nil
}

// NewSalt generates a fresh random 16-byte salt.
func NewSalt() ([]byte, error) {
	return RandomBytes(SaltSize)
}

// NewNonce generates a fresh random 96-bit GCM nonce.
func NewNonce() ([]byte, error) {
	return RandomBytes(GCMNonceSize)
}
