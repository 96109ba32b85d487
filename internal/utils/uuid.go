package utils

import "github.com/google/uuid"

// UUIDGenerator produces request identifiers. Version 7 UUIDs are preferred
// since they sort by creation time; a random v4 is used if v7 fails.
type UUIDGenerator struct {
}

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
