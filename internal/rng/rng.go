package rng

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go github.com/tlowery/flint/internal/rng Picker

// Picker provides random selection functionality
type Picker interface {
	// Intn returns a non-negative random number in [0, n)
	Intn(n int) int
}

// Config for the random picker
type Config struct {
	// Optional seed for testing
	Seed int64
}

// DefaultPicker implements Picker using math/rand
type DefaultPicker struct {
	random *rand.Rand
}

// New creates a new random picker
func New(cfg *Config) *DefaultPicker {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &DefaultPicker{
		random: rand.New(source),
	}
}

// Intn returns a non-negative random number in [0, n)
func (p *DefaultPicker) Intn(n int) int {
	if n < 1 {
		return 0
	}
	return p.random.Intn(n)
}
