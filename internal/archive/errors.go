package archive

import "errors"

var (
	// ErrCodec is returned when an archive cannot be read or contains
	// entries that escape the extraction root.
	ErrCodec = errors.New("malformed archive")
	// ErrUnknownContent is returned by Zip for a Content variant it does not
	// know how to write.
	ErrUnknownContent = errors.New("unknown archive content")
)
