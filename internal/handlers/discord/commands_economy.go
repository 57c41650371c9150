package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tlowery/flint/internal/services/economy"
)

const buyUsageReply = "!buy <vip|custom>"

const insufficientFundsReply = "❌ Not enough"

// LevelCommand replies with the author's experience points
type LevelCommand struct {
	BaseCommand
	replier Replier
	economy economy.Service
}

// NewLevelCommand creates the level command handler
func NewLevelCommand(replier Replier, economySvc economy.Service) *LevelCommand {
	return &LevelCommand{
		BaseCommand: BaseCommand{Name: "level"},
		replier:     replier,
		economy:     economySvc,
	}
}

// Handle replies with the author's experience points
func (c *LevelCommand) Handle(ctx context.Context, msg *Message, _ []string) error {
	profile, err := c.economy.GetProfile(ctx, &economy.GetProfileInput{UserID: msg.AuthorID})
	if err != nil {
		return err
	}

	return c.replier.Reply(ctx, msg, fmt.Sprintf("⭐ XP: %d", profile.Experience))
}

// BalanceCommand replies with the author's coin balance
type BalanceCommand struct {
	BaseCommand
	replier Replier
	economy economy.Service
}

// NewBalanceCommand creates the balance command handler
func NewBalanceCommand(replier Replier, economySvc economy.Service) *BalanceCommand {
	return &BalanceCommand{
		BaseCommand: BaseCommand{Name: "balance"},
		replier:     replier,
		economy:     economySvc,
	}
}

// Handle replies with the author's coin balance
func (c *BalanceCommand) Handle(ctx context.Context, msg *Message, _ []string) error {
	profile, err := c.economy.GetProfile(ctx, &economy.GetProfileInput{UserID: msg.AuthorID})
	if err != nil {
		return err
	}

	return c.replier.Reply(ctx, msg, fmt.Sprintf("💰 Coins: %d", profile.Coins))
}

// ShopCommand replies with the shop catalog
type ShopCommand struct {
	BaseCommand
	replier Replier
	economy economy.Service
}

// NewShopCommand creates the shop command handler
func NewShopCommand(replier Replier, economySvc economy.Service) *ShopCommand {
	return &ShopCommand{
		BaseCommand: BaseCommand{Name: "shop"},
		replier:     replier,
		economy:     economySvc,
	}
}

// Handle replies with the shop catalog
func (c *ShopCommand) Handle(ctx context.Context, msg *Message, _ []string) error {
	catalog, err := c.economy.GetCatalog(ctx, &economy.GetCatalogInput{})
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("🛒 SHOP\n\n")
	for _, item := range catalog.Items {
		fmt.Fprintf(&b, "%s - %d coins\n", item.Name, item.Price)
	}
	b.WriteString("\n" + buyUsageReply)

	return c.replier.Reply(ctx, msg, b.String())
}

// BuyCommand purchases a shop item with the author's balance
type BuyCommand struct {
	BaseCommand
	replier Replier
	economy economy.Service
}

// NewBuyCommand creates the buy command handler
func NewBuyCommand(replier Replier, economySvc economy.Service) *BuyCommand {
	return &BuyCommand{
		BaseCommand: BaseCommand{Name: "buy"},
		replier:     replier,
		economy:     economySvc,
	}
}

// Handle purchases a shop item. Failed purchases never mutate the balance.
func (c *BuyCommand) Handle(ctx context.Context, msg *Message, args []string) error {
	if len(args) == 0 {
		return c.replier.Reply(ctx, msg, buyUsageReply)
	}

	out, err := c.economy.Purchase(ctx, &economy.PurchaseInput{
		UserID:  msg.AuthorID,
		ItemKey: strings.ToLower(args[0]),
	})
	if err != nil {
		switch {
		case errors.Is(err, economy.ErrUnknownItem):
			return c.replier.Reply(ctx, msg, buyUsageReply)
		case errors.Is(err, economy.ErrInsufficientFunds):
			return c.replier.Reply(ctx, msg, insufficientFundsReply)
		default:
			return err
		}
	}

	return c.replier.Reply(ctx, msg, fmt.Sprintf("✅ %s bought", out.Item.Name))
}
