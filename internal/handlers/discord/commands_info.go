package discord

import (
	"context"
	"fmt"
)

const helpText = `📖 COMMANDS

AI
@Flint <question>

MODERATION
!kick @user
!ban @user
!mute @user

LEVELS
!level
!balance

GIVEAWAY
!giveaway <minutes> <prize>

MUSIC
!join
!play <youtube link>
!stop

SHOP
!shop
!buy vip / custom

OTHER
!ping`

// HelpCommand replies with the command list
type HelpCommand struct {
	BaseCommand
	replier Replier
}

// NewHelpCommand creates the help command handler
func NewHelpCommand(replier Replier) *HelpCommand {
	return &HelpCommand{
		BaseCommand: BaseCommand{Name: "help"},
		replier:     replier,
	}
}

// Handle replies with the command list
func (c *HelpCommand) Handle(ctx context.Context, msg *Message, _ []string) error {
	return c.replier.Reply(ctx, msg, helpText)
}

// PingCommand replies with the gateway latency
type PingCommand struct {
	BaseCommand
	replier Replier
	pinger  Pinger
}

// NewPingCommand creates the ping command handler
func NewPingCommand(replier Replier, pinger Pinger) *PingCommand {
	return &PingCommand{
		BaseCommand: BaseCommand{Name: "ping"},
		replier:     replier,
		pinger:      pinger,
	}
}

// Handle replies with the gateway round-trip latency
func (c *PingCommand) Handle(ctx context.Context, msg *Message, _ []string) error {
	return c.replier.Reply(ctx, msg, fmt.Sprintf("🏓 %dms", c.pinger.Latency().Milliseconds()))
}
