package discord

// Mocks of same-package interfaces are generated into the package itself so
// the in-package tests can use them without an import cycle.
//go:generate mockgen -package=discord -destination=mock_gateway_test.go github.com/tlowery/flint/internal/handlers/discord Replier,Moderator,Pinger
//go:generate mockgen -package=discord -destination=mock_drawing_test.go github.com/tlowery/flint/internal/services/drawing Messenger
//go:generate mockgen -package=discord -destination=mock_playback_test.go github.com/tlowery/flint/internal/services/playback Dialer,Conn

import (
	"context"
	"time"
)

// Mention is a user tagged in a message
type Mention struct {
	// ID is the Discord user ID
	ID string

	// Username is the user's display name
	Username string
}

// Message is one inbound message, flattened from the gateway event into
// what the dispatch pipeline needs
type Message struct {
	// ID is the message ID
	ID string

	// GuildID is the guild the message arrived in
	GuildID string

	// ChannelID is the channel the message arrived in
	ChannelID string

	// AuthorID is the message author's user ID
	AuthorID string

	// AuthorIsBot reports whether the author is an automated account
	AuthorIsBot bool

	// Content is the raw message body
	Content string

	// BotUserID is our own user ID, for stripping mention tokens
	BotUserID string

	// MentionsBot reports whether the message mentions the bot
	MentionsBot bool

	// Mentions are the non-bot users tagged in the message
	Mentions []Mention

	// AuthorVoiceChannelID is the voice channel the author currently
	// occupies, empty if none
	AuthorVoiceChannelID string

	// Permissions is the author's permission bitfield in the channel
	Permissions int64
}

// HasPermission reports whether the author holds the given permission bit.
// Administrators implicitly hold every permission.
func (m *Message) HasPermission(permission int64) bool {
	if m.Permissions&permissionAdministrator != 0 {
		return true
	}
	return m.Permissions&permission != 0
}

// MentionUsername returns the tagged user's display name, falling back to
// the raw ID when the mention payload did not include it
func (m *Message) MentionUsername(userID string) string {
	for _, mention := range m.Mentions {
		if mention.ID == userID {
			return mention.Username
		}
	}
	return userID
}

// Replier sends feedback to the context a message arrived from
type Replier interface {
	// Reply sends a reply to the message
	Reply(ctx context.Context, msg *Message, content string) error

	// Typing shows the typing indicator in a channel
	Typing(ctx context.Context, channelID string) error
}

// Moderator performs guild member actions
type Moderator interface {
	// KickMember removes a member from a guild
	KickMember(ctx context.Context, guildID, userID string) error

	// BanMember bans a member from a guild
	BanMember(ctx context.Context, guildID, userID string) error

	// TimeoutMember mutes a member until the given time
	TimeoutMember(ctx context.Context, guildID, userID string, until time.Time) error
}

// Pinger reports the gateway round-trip latency
type Pinger interface {
	Latency() time.Duration
}
