package discord

import (
	"context"
	"errors"

	"github.com/tlowery/flint/internal/media"
	"github.com/tlowery/flint/internal/services/playback"
)

const (
	joinVoiceFirstReply = "Join VC first"
	invalidLinkReply    = "Invalid link"
	joinedReply         = "🎵 Joined"
	playingReply        = "▶️ Playing"
	stoppedReply        = "⏹️ Stopped"
)

// JoinCommand connects the bot to the author's voice channel
type JoinCommand struct {
	BaseCommand
	replier  Replier
	playback playback.Service
}

// NewJoinCommand creates the join command handler
func NewJoinCommand(replier Replier, playbackSvc playback.Service) *JoinCommand {
	return &JoinCommand{
		BaseCommand: BaseCommand{Name: "join"},
		replier:     replier,
		playback:    playbackSvc,
	}
}

// Handle joins the author's voice channel
func (c *JoinCommand) Handle(ctx context.Context, msg *Message, _ []string) error {
	if msg.AuthorVoiceChannelID == "" {
		return c.replier.Reply(ctx, msg, joinVoiceFirstReply)
	}

	_, err := c.playback.Join(ctx, &playback.JoinInput{
		GuildID:   msg.GuildID,
		ChannelID: msg.AuthorVoiceChannelID,
	})
	if err != nil {
		return err
	}

	return c.replier.Reply(ctx, msg, joinedReply)
}

// PlayCommand streams a locator into the author's voice channel
type PlayCommand struct {
	BaseCommand
	replier  Replier
	playback playback.Service
}

// NewPlayCommand creates the play command handler
func NewPlayCommand(replier Replier, playbackSvc playback.Service) *PlayCommand {
	return &PlayCommand{
		BaseCommand: BaseCommand{Name: "play"},
		replier:     replier,
		playback:    playbackSvc,
	}
}

// Handle resolves the locator and starts playback. An unrecognized locator
// replies with an error and leaves the session untouched.
func (c *PlayCommand) Handle(ctx context.Context, msg *Message, args []string) error {
	if msg.AuthorVoiceChannelID == "" {
		return c.replier.Reply(ctx, msg, joinVoiceFirstReply)
	}

	if len(args) == 0 {
		return c.replier.Reply(ctx, msg, invalidLinkReply)
	}

	_, err := c.playback.Play(ctx, &playback.PlayInput{
		GuildID:   msg.GuildID,
		ChannelID: msg.AuthorVoiceChannelID,
		Locator:   args[0],
	})
	if err != nil {
		if errors.Is(err, media.ErrInvalidLocator) {
			return c.replier.Reply(ctx, msg, invalidLinkReply)
		}
		return err
	}

	return c.replier.Reply(ctx, msg, playingReply)
}

// StopCommand tears down the guild's voice session
type StopCommand struct {
	BaseCommand
	replier  Replier
	playback playback.Service
}

// NewStopCommand creates the stop command handler
func NewStopCommand(replier Replier, playbackSvc playback.Service) *StopCommand {
	return &StopCommand{
		BaseCommand: BaseCommand{Name: "stop"},
		replier:     replier,
		playback:    playbackSvc,
	}
}

// Handle disconnects the guild's voice session. With no active session the
// command stays silent.
func (c *StopCommand) Handle(ctx context.Context, msg *Message, _ []string) error {
	err := c.playback.Stop(ctx, &playback.StopInput{GuildID: msg.GuildID})
	if err != nil {
		if errors.Is(err, playback.ErrNoActiveSession) {
			return nil
		}
		return err
	}

	return c.replier.Reply(ctx, msg, stoppedReply)
}
