package validators

import (
	"fmt"
	"path"
	"strings"

	"github.com/ipfs/go-cid"
)

// MinPassphraseLength is the shortest passphrase accepted for new bundles.
const MinPassphraseLength = 12

// ValidateCID checks that s parses as a content identifier (CIDv0 or CIDv1).
func ValidateCID(s string) error {
	if s == "" {
		return ErrInvalidCID
	}
	if _, err := cid.Decode(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCID, err)
	}
	return nil
}

// ValidatePath checks that p is an absolute, already clean store path.
func ValidatePath(p string) error {
	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("%w: %q must be absolute", ErrInvalidPath, p)
	}
	if path.Clean(p) != p {
		return fmt.Errorf("%w: %q is not clean", ErrInvalidPath, p)
	}
	return nil
}

// ValidateName checks that name is a single path element.
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.Contains(name, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// ValidatePassphrase enforces [MinPassphraseLength].
func ValidatePassphrase(passphrase string) error {
	if len(passphrase) < MinPassphraseLength {
		return ErrPassphraseTooShort
	}
	return nil
}
