package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrImportNotFound is returned by CancelImport for an unknown key.
	ErrImportNotFound = errors.New("import was not found")
	// ErrImportTimeout is the cause recorded when the search phase of an
	// import exceeded its bound.
	ErrImportTimeout = errors.New("import timed out while searching for content")
	// ErrImportCancelled is the cause recorded when an import observed an
	// abort request.
	ErrImportCancelled = errors.New("import was cancelled")

	// ErrInvalidBundle is returned when a bundle is malformed or could not be
	// decrypted with the given passphrase.
	ErrInvalidBundle = errors.New("invalid encrypted bundle")
	// ErrPassphraseRequired is returned when downloading an encrypted bundle
	// without a passphrase and none is remembered for it.
	ErrPassphraseRequired = errors.New("passphrase is required")

	ErrInvalidDataProvided = errors.New("invalid data provided")
)
