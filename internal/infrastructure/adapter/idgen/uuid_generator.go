package idgen

import (
	"github.com/google/uuid"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
)

// UUIDGenerator issues random v4 UUIDs
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUID generator
func NewUUIDGenerator() core.IDGenerator {
	return UUIDGenerator{}
}

// NewID returns a new random identifier
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
