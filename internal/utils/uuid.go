package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers used for trace IDs and
// workspace directory names.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 and falls back to a random UUIDv4 when the
// clock-based variant cannot be produced.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
