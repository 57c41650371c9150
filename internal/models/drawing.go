package models

import (
	"time"
)

// DrawingStatus represents the current state of a drawing
type DrawingStatus string

const (
	// DrawingStatusOpen indicates a drawing is collecting entries
	DrawingStatusOpen DrawingStatus = "open"

	// DrawingStatusConcluded indicates a drawing has announced its outcome
	DrawingStatusConcluded DrawingStatus = "concluded"

	// DrawingStatusCancelled indicates a drawing was retracted before expiry
	DrawingStatusCancelled DrawingStatus = "cancelled"
)

// Drawing represents a timed giveaway in a Discord channel
type Drawing struct {
	// ID is the unique identifier for the drawing
	ID string

	// ChannelID is the Discord channel where the drawing was announced
	ChannelID string

	// MessageID is the announcement message bearing the entry reaction
	MessageID string

	// Prize is the free-text prize description
	Prize string

	// Status is the current state of the drawing
	Status DrawingStatus

	// CreatedAt is when the drawing was started
	CreatedAt time.Time

	// EndsAt is when the drawing expires and a winner is picked
	EndsAt time.Time
}
