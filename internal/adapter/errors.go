package adapter

import "errors"

var (
	// ErrNotFound means the path or cid does not exist remotely.
	ErrNotFound = errors.New("not found")
	// ErrTimeout means the remote did not answer within the caller's bound.
	ErrTimeout = errors.New("remote call timed out")
	// ErrExternalService wraps every other failed remote call.
	ErrExternalService = errors.New("external service error")
	// ErrUnauthorized means the pinning service rejected the credentials.
	ErrUnauthorized = errors.New("external service rejected credentials")
	// ErrTooManyRequests means the remote throttled the call.
	ErrTooManyRequests = errors.New("external service throttled the request")
	// ErrInvalidAddress is returned by constructors for an unusable base URL.
	ErrInvalidAddress = errors.New("invalid remote address")
)
