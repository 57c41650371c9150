package drawing

//go:generate mockgen -package=drawing -destination=mock_messenger_test.go github.com/tlowery/flint/internal/services/drawing Messenger

import "context"

// Service defines the interface for giveaway drawings
type Service interface {
	// Start announces a drawing and schedules its conclusion
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// Cancel retracts a scheduled drawing before it concludes
	Cancel(ctx context.Context, input *CancelInput) error
}

// Messenger defines the gateway operations a drawing needs
type Messenger interface {
	// SendMessage posts a message to a channel and returns its ID
	SendMessage(ctx context.Context, channelID, content string) (string, error)

	// AddReaction attaches an emoji reaction to a message
	AddReaction(ctx context.Context, channelID, messageID, emoji string) error

	// GetReactionUsers returns the users currently reacted with the emoji
	GetReactionUsers(ctx context.Context, channelID, messageID, emoji string) ([]Reactor, error)
}
