package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidCID         = errors.New("invalid cid")
	ErrInvalidPath        = errors.New("invalid path")
	ErrInvalidName        = errors.New("invalid name")
	ErrPassphraseTooShort = errors.New("passphrase is too short")
)
