package util

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// PBKDF2Iterations is the cost floor for key derivation. It may be
	// raised in a future revision but must never be lowered: tokens
	// written at a higher count would silently become undecryptable and
	// a lower count weakens brute-force resistance of the master secret.
	PBKDF2Iterations = 100_000

	DerivedKeyLen = 32
)

// DeriveKey stretches secret into a 256-bit AES key using
// PBKDF2-HMAC-SHA256 at the fixed iteration floor. The same
// (secret, salt) pair always yields the same key.
func DeriveKey(secret, salt []byte) []byte {
	return pbkdf2.Key(secret, salt, PBKDF2Iterations, DerivedKeyLen, sha256.New)
}

// DeriveKeyIter is DeriveKey with an explicit iteration count for
// deployments that want a higher cost. Counts below the floor are
// rejected rather than silently accepted.
func DeriveKeyIter(secret, salt []byte, iterations int) ([]byte, error) {
	if iterations < PBKDF2Iterations {
		return nil, fmt.Errorf("iteration count %d below minimum %d", iterations, PBKDF2Iterations)
	}
	return pbkdf2.Key(secret, salt, iterations, DerivedKeyLen, sha256.New), nil
}
