package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/tlowery/flint/internal/common/clock"
)

const tagUserReply = "Tag user"

// muteDuration is how long a muted member stays timed out
const muteDuration = 10 * time.Minute

// KickCommand removes a tagged member from the guild
type KickCommand struct {
	BaseCommand
	replier   Replier
	moderator Moderator
}

// NewKickCommand creates the kick command handler
func NewKickCommand(replier Replier, moderator Moderator) *KickCommand {
	return &KickCommand{
		BaseCommand: BaseCommand{
			Name:       "kick",
			Permission: permissionKickMembers,
		},
		replier:   replier,
		moderator: moderator,
	}
}

// Handle kicks the tagged member
func (c *KickCommand) Handle(ctx context.Context, msg *Message, args []string) error {
	targetID := parseMentionArg(args)
	if targetID == "" {
		return c.replier.Reply(ctx, msg, tagUserReply)
	}

	if err := c.moderator.KickMember(ctx, msg.GuildID, targetID); err != nil {
		return fmt.Errorf("failed to kick member: %w", err)
	}

	return c.replier.Reply(ctx, msg, fmt.Sprintf("✅ Kicked %s", msg.MentionUsername(targetID)))
}

// BanCommand bans a tagged member from the guild
type BanCommand struct {
	BaseCommand
	replier   Replier
	moderator Moderator
}

// NewBanCommand creates the ban command handler
func NewBanCommand(replier Replier, moderator Moderator) *BanCommand {
	return &BanCommand{
		BaseCommand: BaseCommand{
			Name:       "ban",
			Permission: permissionBanMembers,
		},
		replier:   replier,
		moderator: moderator,
	}
}

// Handle bans the tagged member
func (c *BanCommand) Handle(ctx context.Context, msg *Message, args []string) error {
	targetID := parseMentionArg(args)
	if targetID == "" {
		return c.replier.Reply(ctx, msg, tagUserReply)
	}

	if err := c.moderator.BanMember(ctx, msg.GuildID, targetID); err != nil {
		return fmt.Errorf("failed to ban member: %w", err)
	}

	return c.replier.Reply(ctx, msg, fmt.Sprintf("✅ Banned %s", msg.MentionUsername(targetID)))
}

// MuteCommand times a tagged member out for ten minutes
type MuteCommand struct {
	BaseCommand
	replier   Replier
	moderator Moderator
	clock     clock.Clock
}

// NewMuteCommand creates the mute command handler
func NewMuteCommand(replier Replier, moderator Moderator, clk clock.Clock) *MuteCommand {
	return &MuteCommand{
		BaseCommand: BaseCommand{
			Name:       "mute",
			Permission: permissionModerateMembers,
		},
		replier:   replier,
		moderator: moderator,
		clock:     clk,
	}
}

// Handle times the tagged member out
func (c *MuteCommand) Handle(ctx context.Context, msg *Message, args []string) error {
	targetID := parseMentionArg(args)
	if targetID == "" {
		return c.replier.Reply(ctx, msg, tagUserReply)
	}

	until := c.clock.Now().Add(muteDuration)
	if err := c.moderator.TimeoutMember(ctx, msg.GuildID, targetID, until); err != nil {
		return fmt.Errorf("failed to mute member: %w", err)
	}

	return c.replier.Reply(ctx, msg, fmt.Sprintf("🔇 Muted %s", msg.MentionUsername(targetID)))
}
