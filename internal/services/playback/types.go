package playback

import (
	"github.com/tlowery/flint/internal/media"
)

// State represents a guild's voice connection state
type State string

const (
	// StateDisconnected indicates no voice connection exists
	StateDisconnected State = "disconnected"

	// StateConnected indicates the bot sits in a voice channel without streaming
	StateConnected State = "connected"

	// StatePlaying indicates an audio stream is active
	StatePlaying State = "playing"
)

// Config holds configuration for the playback service
type Config struct {
	// Dialer establishes voice connections
	Dialer Dialer

	// Resolver turns locators into audio sources
	Resolver media.Resolver
}

// JoinInput holds the parameters for a Join call
type JoinInput struct {
	// GuildID is the guild whose session is affected
	GuildID string

	// ChannelID is the voice channel to join
	ChannelID string
}

// JoinOutput holds the result of a Join call
type JoinOutput struct {
	// State is the session state after joining
	State State
}

// PlayInput holds the parameters for a Play call
type PlayInput struct {
	// GuildID is the guild whose session is affected
	GuildID string

	// ChannelID is the voice channel to stream into
	ChannelID string

	// Locator identifies the media to play
	Locator string
}

// PlayOutput holds the result of a Play call
type PlayOutput struct {
	// Title is the resolved media title
	Title string
}

// StopInput holds the parameters for a Stop call
type StopInput struct {
	// GuildID is the guild whose session is torn down
	GuildID string
}

// GetStateInput holds the parameters for a GetState call
type GetStateInput struct {
	// GuildID is the guild to inspect
	GuildID string
}

// GetStateOutput holds the result of a GetState call
type GetStateOutput struct {
	// State is the guild's current connection state
	State State

	// ChannelID is the joined voice channel, empty when disconnected
	ChannelID string
}
