package ai

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/tlowery/flint/internal/ai Client

import "context"

// Client defines the interface to the text-generation backend. Callers get
// either the generated text or an opaque error; transport and quota
// problems are not distinguished.
type Client interface {
	// Complete generates a reply for a user prompt
	Complete(ctx context.Context, prompt string) (string, error)
}
