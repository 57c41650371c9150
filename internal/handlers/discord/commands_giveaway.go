package discord

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/tlowery/flint/internal/services/drawing"
)

const giveawayUsageReply = "!giveaway <minutes> <prize>"

const adminOnlyReply = "❌ Admin only"

// GiveawayCommand starts a timed reward drawing in the channel
type GiveawayCommand struct {
	BaseCommand
	replier Replier
	drawing drawing.Service
}

// NewGiveawayCommand creates the giveaway command handler
func NewGiveawayCommand(replier Replier, drawingSvc drawing.Service) *GiveawayCommand {
	return &GiveawayCommand{
		BaseCommand: BaseCommand{
			Name:       "giveaway",
			Permission: permissionAdministrator,
			DenyText:   adminOnlyReply,
		},
		replier: replier,
		drawing: drawingSvc,
	}
}

// Handle validates the arguments and schedules the drawing. Invalid input
// replies with usage text and schedules nothing.
func (c *GiveawayCommand) Handle(ctx context.Context, msg *Message, args []string) error {
	if len(args) < 2 {
		return c.replier.Reply(ctx, msg, giveawayUsageReply)
	}

	minutes, err := strconv.Atoi(args[0])
	if err != nil {
		return c.replier.Reply(ctx, msg, giveawayUsageReply)
	}

	_, err = c.drawing.Start(ctx, &drawing.StartInput{
		ChannelID: msg.ChannelID,
		Minutes:   minutes,
		Prize:     strings.Join(args[1:], " "),
	})
	if err != nil {
		if errors.Is(err, drawing.ErrInvalidDuration) || errors.Is(err, drawing.ErrEmptyPrize) {
			return c.replier.Reply(ctx, msg, giveawayUsageReply)
		}
		return err
	}

	return nil
}
