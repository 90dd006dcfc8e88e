package utils

import "github.com/google/uuid"

// NameGenerator produces unique names for temporary artifacts such as
// downloaded archives and extraction directories.
type NameGenerator interface {
	Generate() string
}

// UUIDGenerator generates time-ordered UUIDv7 names, so leftovers sort by
// creation time. It falls back to a random UUID when the clock source
// fails.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
