package codec

import (
	"fmt"

	"github.com/mwhitfield/sealbox/internal/util"
)

// MasterKeySize is the byte length of a generated master secret.
const MasterKeySize = 32

// GenerateKey produces a fresh random master secret, base64-encoded
// for operators to provision. Pure utility, no state.
func GenerateKey() (string, error) {
	b, err := util.RandomBytes(MasterKeySize)
	if err != nil {
		return "", fmt.Errorf("generating master key: %w", err)
	}
	return util.B64Encode(b), nil
}
