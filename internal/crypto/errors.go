package crypto

import "errors"

var (
	// ErrCodec is returned when the ciphertext is structurally invalid
	// (empty, or not a whole number of cipher blocks).
	ErrCodec = errors.New("malformed ciphertext")
	// ErrInvalidKey is returned for keys or IVs of the wrong length.
	ErrInvalidKey = errors.New("invalid key or iv length")
)
