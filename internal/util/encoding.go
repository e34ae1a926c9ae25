package util

import (
	"encoding/base64"

	"golang.org/x/text/unicode/norm"
)

// Normalize applies NFKD normalization so that visually identical
// passwords hash identically regardless of the input method's Unicode
// composition.
func Normalize(s string) string {
	return norm.NFKD.String(s)
}

func B64Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func B64Decode(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}
