package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
)

// KeyRepository persists passphrases of encrypted bundles, keyed by the cid
// of the uploaded bundle. Passphrases never reach the database in clear
// text.
type KeyRepository interface {
	// SetKey stores passphrase for cid, replacing any previous record.
	SetKey(ctx context.Context, cid, passphrase string) error
	// GetKey returns the passphrase remembered for cid or [ErrKeyNotFound].
	GetKey(ctx context.Context, cid string) (string, error)
	// HasKey reports whether a passphrase is remembered for cid.
	HasKey(ctx context.Context, cid string) (bool, error)
	// DeleteKey forgets the passphrase for cid. Missing records are ignored.
	DeleteKey(ctx context.Context, cid string) error
}

// Sealer encrypts and decrypts keystore records.
type Sealer interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(sealed []byte) ([]byte, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
