package util

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

const (
	AESKeySize   = 32
	GCMNonceSize = 12
	GCMTagSize   = 16
)

// SealAESGCM encrypts plainText with AES-256-GCM under the given key and
// caller-supplied nonce, returning ciphertext and authentication tag as
// separate slices. The nonce must be fresh random bytes on every call;
// reuse under the same key voids GCM's guarantees.
func SealAESGCM(rawKey, nonce, plainText []byte) (cipherText, tag []byte, err error) {
	gcm, err := newGCM(rawKey, nonce)
	if err != nil {
		return nil, nil, err
	}

	sealed := gcm.Seal(nil, nonce, plainText, nil)

	// gcm.Seal appends the tag after the ciphertext.
	split := len(sealed) - GCMTagSize
	return sealed[:split], sealed[split:], nil
}

// OpenAESGCM verifies tag and decrypts cipherText. The tag is checked
// before any plaintext is returned.
func OpenAESGCM(rawKey, nonce, cipherText, tag []byte) ([]byte, error) {
	if len(tag) != GCMTagSize {
		return nil, fmt.Errorf("invalid GCM tag size: got %d, want %d", len(tag), GCMTagSize)
	}

	gcm, err := newGCM(rawKey, nonce)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(cipherText)+len(tag))
	sealed = append(sealed, cipherText...)
	sealed = append(sealed, tag...)

	plainText, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("opening ciphertext: %w", err)
	}
	return plainText, nil
}

func newGCM(rawKey, nonce []byte) (cipher.AEAD, error) {
	if len(rawKey) != AESKeySize {
		return nil, fmt.Errorf("invalid AES key size: got %d, want %d", len(rawKey), AESKeySize)
	}
	if len(nonce) != GCMNonceSize {
		return nil, fmt.Errorf("invalid GCM nonce size: got %d, want %d", len(nonce), GCMNonceSize)
	}

	block, err := aes.NewCipher(rawKey)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	return gcm, nil
}
