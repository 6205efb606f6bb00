package utils

import "github.com/google/uuid"

// UUIDGenerator assigns record identities. UUIDv7 keeps identifiers roughly
// time-ordered, which keeps the local store's primary index append-friendly.
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
