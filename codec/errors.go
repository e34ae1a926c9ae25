package codec

import "errors"

var (
	// ErrNoMasterKey indicates the master secret was missing or empty at
	// startup. Fatal by design: running with a guessed default would
	// make every token trivially decryptable.
	ErrNoMasterKey = errors.New("sealbox: master key missing or empty")

	// ErrEncrypt indicates a failure while producing a token. Retrying
	// is safe; each attempt is independent.
	ErrEncrypt = errors.New("sealbox: encryption failed")

	// ErrDecrypt indicates the token could not be decrypted. The cause
	// (bad base64, truncation, tag mismatch, wrong key) is deliberately
	// not distinguished. Not retryable.
	ErrDecrypt = errors.New("sealbox: decryption failed")
)
