package playback

//go:generate mockgen -package=playback -destination=mock_voice_test.go github.com/tlowery/flint/internal/services/playback Dialer,Conn

import (
	"context"

	"github.com/tlowery/flint/internal/media"
)

// Service defines the interface for per-guild voice playback
type Service interface {
	// Join connects the bot to a voice channel
	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)

	// Play resolves a locator and streams it into a voice channel
	Play(ctx context.Context, input *PlayInput) (*PlayOutput, error)

	// Stop disconnects the guild's voice session, stopping any stream
	Stop(ctx context.Context, input *StopInput) error

	// GetState reports the guild's current connection state
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)
}

// Dialer establishes voice connections
type Dialer interface {
	// Dial joins a guild voice channel
	Dial(ctx context.Context, guildID, channelID string) (Conn, error)
}

// Conn is an established voice connection
type Conn interface {
	// Play streams the source until it ends or ctx is cancelled
	Play(ctx context.Context, source media.Source) error

	// Disconnect leaves the voice channel
	Disconnect() error
}
