package utils

import "github.com/google/uuid"

// UUIDGenerator issues user ids. Ids are UUIDv7 so that rows sort by
// creation time in the users table.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a new user id. If the clock source fails a random
// UUIDv4 is returned instead, so an id is always produced.
func (g *UUIDGenerator) Generate() string {
	id, err := g.newV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
