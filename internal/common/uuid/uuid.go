package uuid

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/tlowery/flint/internal/common/uuid Generator

import "github.com/google/uuid"

// Generator produces unique identifiers
type Generator interface {
	// NewID returns a new unique identifier
	NewID() string
}

// DefaultGenerator implements Generator using random UUIDs
type DefaultGenerator struct{}

// New creates a new DefaultGenerator
func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewID returns a new random UUID string
func (g *DefaultGenerator) NewID() string {
	return uuid.New().String()
}
