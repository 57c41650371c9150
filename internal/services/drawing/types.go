package drawing

import (
	"time"

	"github.com/tlowery/flint/internal/common/clock"
	"github.com/tlowery/flint/internal/common/uuid"
	"github.com/tlowery/flint/internal/rng"
)

// DefaultEntryEmoji is the reaction users add to enter a drawing
const DefaultEntryEmoji = "🎉"

// Config holds configuration for the drawing service
type Config struct {
	// Messenger posts announcements and reads back entry reactions
	Messenger Messenger

	// Clock provides the current time
	Clock clock.Clock

	// Picker selects the winner
	Picker rng.Picker

	// IDGenerator mints drawing IDs (defaults to random UUIDs)
	IDGenerator uuid.Generator

	// EntryEmoji overrides the entry reaction (defaults to DefaultEntryEmoji)
	EntryEmoji string

	// TimeUnit is how long one drawing "minute" lasts. Defaults to
	// time.Minute; tests shrink it to keep expiry fast.
	TimeUnit time.Duration
}

// Reactor is a user attached to the entry reaction at expiry time
type Reactor struct {
	// ID is the Discord user ID
	ID string

	// IsBot reports whether the account is bot-operated
	IsBot bool
}

// StartInput holds the parameters for a Start call
type StartInput struct {
	// ChannelID is the channel the drawing is announced in
	ChannelID string

	// Minutes is how long the drawing accepts entries
	Minutes int

	// Prize is the free-text prize description
	Prize string
}

// StartOutput holds the result of a Start call
type StartOutput struct {
	// DrawingID identifies the scheduled drawing
	DrawingID string

	// MessageID is the announcement message bearing the entry reaction
	MessageID string

	// EndsAt is when the winner will be picked
	EndsAt time.Time
}

// CancelInput holds the parameters for a Cancel call
type CancelInput struct {
	// DrawingID identifies the drawing to retract
	DrawingID string
}
