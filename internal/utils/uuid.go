package utils

import "github.com/google/uuid"

// UUIDGenerator mints time-ordered (v7) identifiers for devices and records.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// New returns a v7 UUID, falling back to v4 if the v7 generator fails.
func (g *UUIDGenerator) New() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}

// Generate returns [UUIDGenerator.New] as a string.
func (g *UUIDGenerator) Generate() string {
	return g.New().String()
}
