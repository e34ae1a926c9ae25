// Package codec implements the authenticated symmetric encryption codec
// used to protect per-user records before they reach shared storage.
//
// A token is the single external artifact:
//
//	base64std( salt[16] || nonce[12] || tag[16] || ciphertext )
//
// with AES-256-GCM for the cipher and PBKDF2-HMAC-SHA256 (100,000
// iterations) deriving the data key from the master secret and the
// per-token salt. Any mutation of any token byte causes decryption to
// fail; plaintext is never exposed before the tag verifies.
//
// The codec is stateless apart from the immutable master secret and is
// safe for concurrent use.
package codec

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/awnumar/memguard"

	"github.com/mwhitfield/sealbox/internal/util"
)

// MasterKeyEnv is the environment variable FromEnv reads the master
// secret from.
const MasterKeyEnv = "SEALBOX_MASTER_KEY"

// tokenHeaderLen is the decoded size of salt, nonce and tag combined.
// Anything shorter cannot be a well-formed token.
const tokenHeaderLen = util.SaltSize + util.GCMNonceSize + util.GCMTagSize

// Codec encrypts values into opaque tokens and reverses the
// transformation. The master secret is held in a memguard enclave and
// only opened for the duration of a key derivation.
type Codec struct {
	master *memguard.Enclave
}

// New returns a Codec rooted in the given master secret. An empty
// secret is a configuration error: there is deliberately no fallback
// default, since predictable key material would silently void every
// token produced.
func New(masterSecret []byte) (*Codec, error) {
	if len(masterSecret) == 0 {
		return nil, ErrNoMasterKey
	}
	return &Codec{master: memguard.NewEnclave(util.CopyBytes(masterSecret))}, nil
}

// FromEnv builds a Codec from the SEALBOX_MASTER_KEY environment
// variable, failing when it is missing or empty.
func FromEnv() (*Codec, error) {
	v := os.Getenv(MasterKeyEnv)
	if v == "" {
		return nil, fmt.Errorf("%w: %s not set", ErrNoMasterKey, MasterKeyEnv)
	}
	return New([]byte(v))
}

// Encrypt serializes v and seals it into a token. Each call generates a
// fresh salt and nonce, so encrypting the same value twice yields two
// different, independently valid tokens.
func (c *Codec) Encrypt(v Value) (string, error) {
	plainText, err := v.serialize()
	if err != nil {
		return "", fmt.Errorf("%w: serializing value: %v", ErrEncrypt, err)
	}

	salt, err := util.NewSalt()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncrypt, err)
	}
	nonce, err := util.NewNonce()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncrypt, err)
	}

	key, err := c.deriveKey(salt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncrypt, err)
	}
	defer util.WipeBytes(key)

	cipherText, tag, err := util.SealAESGCM(key, nonce, plainText)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncrypt, err)
	}

	token := make([]byte, 0, tokenHeaderLen+len(cipherText))
	token = append(token, salt...)
	token = append(token, nonce...)
	token = append(token, tag...)
	token = append(token, cipherText...)

	return util.B64Encode(token), nil
}

// Decrypt reverses Encrypt. Every failure mode — malformed base64,
// truncated input, tag mismatch, wrong master secret — surfaces as the
// same opaque ErrDecrypt so callers cannot be used as a padding or
// tampering oracle.
func (c *Codec) Decrypt(token string) (Value, error) {
	raw, err := util.B64Decode(token)
	if err != nil {
		return Value{}, ErrDecrypt
	}
	if len(raw) < tokenHeaderLen {
		return Value{}, ErrDecrypt
	}

	salt := raw[:util.SaltSize]
	nonce := raw[util.SaltSize : util.SaltSize+util.GCMNonceSize]
	tag := raw[util.SaltSize+util.GCMNonceSize : tokenHeaderLen]
	cipherText := raw[tokenHeaderLen:]

	key, err := c.deriveKey(salt)
	if err != nil {
		return Value{}, ErrDecrypt
	}
	defer util.WipeBytes(key)

	plainText, err := util.OpenAESGCM(key, nonce, cipherText, tag)
	if err != nil {
		return Value{}, ErrDecrypt
	}

	return parseValue(plainText), nil
}

// deriveKey opens the master enclave just long enough to stretch it
// with the given salt.
func (c *Codec) deriveKey(salt []byte) ([]byte, error) {
	buf, err := c.master.Open()
	if err != nil {
		return nil, fmt.Errorf("opening master secret: %w", err)
	}
	defer buf.Destroy()
	return util.DeriveKey(buf.Bytes(), salt), nil
}

// parseValue mirrors the storage-side convention: sealed bytes that
// parse as JSON were a structured value, anything else was plain text.
func parseValue(plainText []byte) Value {
	var tree any
	if err := json.Unmarshal(plainText, &tree); err == nil {
		return Structured(tree)
	}
	return Text(string(plainText))
}
