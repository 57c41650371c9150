package media

//go:generate mockgen -package=mocks -destination=mocks/mock_media.go github.com/tlowery/flint/internal/media Resolver,Source

import (
	"context"
	"errors"
	"io"
)

// ErrInvalidLocator is returned when a locator is not a recognized,
// well-formed reference to a playable resource
var ErrInvalidLocator = errors.New("invalid media locator")

// Resolver turns a locator string into a playable audio source
type Resolver interface {
	// Resolve validates the locator and prepares an audio-only source
	Resolve(ctx context.Context, locator string) (Source, error)
}

// Source is a resolved, playable audio resource
type Source interface {
	// Title is the human-readable name of the resource
	Title() string

	// Open starts the audio-only byte stream
	Open(ctx context.Context) (io.ReadCloser, error)
}
