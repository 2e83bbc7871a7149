package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned when no passphrase is remembered for a cid.
	ErrKeyNotFound = errors.New("bundle key was not found")

	// ErrKeyNotSaved is returned when the upsert completes without error but
	// affects no rows.
	ErrKeyNotSaved = errors.New("bundle key was not saved")

	// ErrSealingKey is returned when a passphrase cannot be sealed with the
	// master key.
	ErrSealingKey = errors.New("failed to seal bundle key")

	// ErrOpeningKey is returned when a stored record cannot be opened with the
	// master key, typically because the master key changed.
	ErrOpeningKey = errors.New("failed to open bundle key")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan bundle key row")
)
