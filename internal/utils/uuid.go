package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for users, records and request traces.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, or a random UUIDv4 when the
// v7 source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsUUID reports whether s is a textual UUID of any version.
func IsUUID(s string) bool {
	return uuid.Validate(s) == nil
}
