package codec

import (
	"crypto/subtle"
	"fmt"

	"github.com/mwhitfield/sealbox/internal/util"
)

// HashPassword stretches a password with PBKDF2-HMAC-SHA256 (same
// parameters as the data-key derivation) under a fresh random 16-byte
// salt. Both return values are base64-encoded; the caller persists
// both. The password is NFKD-normalized first so composed and
// decomposed Unicode input hash identically.
//
// This helper shares the KDF machinery with the codec but is otherwise
// independent of it: it plays no part in token encryption.
func HashPassword(password string) (hash, salt string, err error) {
	saltBytes, err := util.NewSalt()
	if err != nil {
		return "", "", fmt.Errorf("generating password salt: %w", err)
	}

	normalized := []byte(util.Normalize(password))
	defer util.WipeBytes(normalized)

	derived := util.DeriveKey(normalized, saltBytes)
	defer util.WipeBytes(derived)

	return util.B64Encode(derived), util.B64Encode(saltBytes), nil
}

// VerifyPassword recomputes the derivation under the stored salt and
// compares it to the stored hash in constant time. A mismatch is a
// normal outcome, not an error; malformed stored values also verify
// false rather than failing.
func VerifyPassword(password, hash, salt string) bool {
	saltBytes, err := util.B64Decode(salt)
	if err != nil {
		return false
	}
	stored, err := util.B64Decode(hash)
	if err != nil {
		return false
	}

	normalized := []byte(util.Normalize(password))
	defer util.WipeBytes(normalized)

	derived := util.DeriveKey(normalized, saltBytes)
	defer util.WipeBytes(derived)

	return subtle.ConstantTimeCompare(derived, stored) == 1
}
