package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/tlowery/flint/internal/services/drawing"
	"github.com/tlowery/flint/internal/services/playback"
)

// reactionPageSize is the most reaction users fetched per drawing expiry
const reactionPageSize = 100

// Gateway adapts a discordgo session to the narrow interfaces the services
// and command handlers consume: Replier, Moderator, Pinger,
// drawing.Messenger and playback.Dialer.
type Gateway struct {
	session *discordgo.Session
}

// NewGateway creates a gateway adapter over a discordgo session
func NewGateway(session *discordgo.Session) (*Gateway, error) {
	if session == nil {
		return nil, ErrNilSession
	}

	return &Gateway{session: session}, nil
}

// Reply sends a reply to the message
func (g *Gateway) Reply(_ context.Context, msg *Message, content string) error {
	_, err := g.session.ChannelMessageSendReply(msg.ChannelID, content, &discordgo.MessageReference{
		MessageID: msg.ID,
		ChannelID: msg.ChannelID,
		GuildID:   msg.GuildID,
	})
	if err != nil {
		return fmt.Errorf("failed to send reply: %w", err)
	}

	return nil
}

// Typing shows the typing indicator in a channel
func (g *Gateway) Typing(_ context.Context, channelID string) error {
	return g.session.ChannelTyping(channelID)
}

// Latency reports the gateway heartbeat round-trip
func (g *Gateway) Latency() time.Duration {
	return g.session.HeartbeatLatency()
}

// SendMessage posts a message to a channel and returns its ID
func (g *Gateway) SendMessage(_ context.Context, channelID, content string) (string, error) {
	message, err := g.session.ChannelMessageSend(channelID, content)
	if err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}

	return message.ID, nil
}

// AddReaction attaches an emoji reaction to a message
func (g *Gateway) AddReaction(_ context.Context, channelID, messageID, emoji string) error {
	return g.session.MessageReactionAdd(channelID, messageID, emoji)
}

// GetReactionUsers returns the users currently reacted with the emoji
func (g *Gateway) GetReactionUsers(_ context.Context, channelID, messageID, emoji string) ([]drawing.Reactor, error) {
	users, err := g.session.MessageReactions(channelID, messageID, emoji, reactionPageSize, "", "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reactions: %w", err)
	}

	reactors := make([]drawing.Reactor, 0, len(users))
	for _, user := range users {
		reactors = append(reactors, drawing.Reactor{
			ID:    user.ID,
			IsBot: user.Bot,
		})
	}

	return reactors, nil
}

// KickMember removes a member from a guild
func (g *Gateway) KickMember(_ context.Context, guildID, userID string) error {
	return g.session.GuildMemberDelete(guildID, userID)
}

// BanMember bans a member from a guild
func (g *Gateway) BanMember(_ context.Context, guildID, userID string) error {
	return g.session.GuildBanCreate(guildID, userID, 0)
}

// TimeoutMember mutes a member until the given time
func (g *Gateway) TimeoutMember(_ context.Context, guildID, userID string, until time.Time) error {
	return g.session.GuildMemberTimeout(guildID, userID, &until)
}

// Dial joins a guild voice channel
func (g *Gateway) Dial(_ context.Context, guildID, channelID string) (playback.Conn, error) {
	vc, err := g.session.ChannelVoiceJoin(guildID, channelID, false, true)
	if err != nil {
		return nil, fmt.Errorf("failed to join voice channel: %w", err)
	}

	return &voiceConn{vc: vc}, nil
}
