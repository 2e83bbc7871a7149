package models

import (
	"fmt"
	"io"
)

// BundleKind tells whether a bundle carries a single file or a whole folder.
// The value is written verbatim into type.dat.
type BundleKind string

const (
	BundleKindFile   BundleKind = "file"
	BundleKindFolder BundleKind = "folder"
)

// ParseBundleKind converts the raw type.dat content into a [BundleKind].
func ParseBundleKind(s string) (BundleKind, error) {
	switch BundleKind(s) {
	case BundleKindFile, BundleKindFolder:
		return BundleKind(s), nil
	}
	return "", fmt.Errorf("unknown bundle kind %q", s)
}

// EncryptedSuffix is appended to the names of uploaded bundles.
const EncryptedSuffix = ".encrypted"

// UnbundleResult points at the decrypted payload inside a scoped workspace.
// For folders Path is the decrypted zip and Name is "data.zip".
type UnbundleResult struct {
	Path string
	Name string
	Kind BundleKind
}

// Download is a decrypted payload ready to be streamed to a client. Close
// releases the temporary files backing it.
type Download struct {
	io.ReadCloser
	Name string
	Kind BundleKind
}
