package discord

import (
	"context"
	"log"
	"strings"

	"github.com/tlowery/flint/internal/ai"
	"github.com/tlowery/flint/internal/services/economy"
)

// greetingToken triggers the fixed auto-reply
const greetingToken = "hi"

// greetingReply is the fixed auto-reply
const greetingReply = "Hello 👋 How can I help?"

// aiFailureReply is sent when the AI backend call fails
const aiFailureReply = "❌ AI error."

// Dispatcher sequences the per-message pipeline: ledger credit, greeting,
// AI mention handling, command routing. The stages are independent; a
// single message can fire several of them.
type Dispatcher struct {
	economy economy.Service
	ai      ai.Client
	replier Replier
	router  *Router
}

// DispatcherConfig holds configuration for the dispatcher
type DispatcherConfig struct {
	// Economy credits authors and is consulted by commands
	Economy economy.Service

	// AI generates replies to bot mentions
	AI ai.Client

	// Replier delivers stage replies
	Replier Replier

	// Router handles prefix commands
	Router *Router
}

// NewDispatcher creates a new message dispatcher
func NewDispatcher(cfg *DispatcherConfig) (*Dispatcher, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Economy == nil {
		return nil, ErrNilEconomy
	}

	if cfg.AI == nil {
		return nil, ErrNilAIClient
	}

	if cfg.Replier == nil {
		return nil, ErrNilReplier
	}

	if cfg.Router == nil {
		return nil, ErrNilRouter
	}

	return &Dispatcher{
		economy: cfg.Economy,
		ai:      cfg.AI,
		replier: cfg.Replier,
		router:  cfg.Router,
	}, nil
}

// HandleMessage runs one inbound message through the pipeline. Messages
// authored by automated accounts are ignored entirely.
func (d *Dispatcher) HandleMessage(ctx context.Context, msg *Message) {
	if msg.AuthorIsBot {
		return
	}

	// Ledger credit always happens first, before any handler can observe
	// the author's record.
	if err := d.economy.Touch(ctx, &economy.TouchInput{UserID: msg.AuthorID}); err != nil {
		log.Printf("failed to credit user %s: %v", msg.AuthorID, err)
	}

	if strings.EqualFold(strings.TrimSpace(msg.Content), greetingToken) {
		d.reply(ctx, msg, greetingReply)
	}

	if msg.MentionsBot {
		d.handleMention(ctx, msg)
	}

	d.router.Dispatch(ctx, msg)
}

// handleMention asks the AI backend for a reply to the mention text. An
// empty prompt after stripping the mention ends the stage quietly.
func (d *Dispatcher) handleMention(ctx context.Context, msg *Message) {
	prompt := strings.TrimSpace(stripBotMentions(msg.Content, msg.BotUserID))
	if prompt == "" {
		return
	}

	if err := d.replier.Typing(ctx, msg.ChannelID); err != nil {
		log.Printf("failed to send typing indicator: %v", err)
	}

	reply, err := d.ai.Complete(ctx, prompt)
	if err != nil {
		log.Printf("AI completion failed: %v", err)
		d.reply(ctx, msg, aiFailureReply)
		return
	}

	d.reply(ctx, msg, reply)
}

func (d *Dispatcher) reply(ctx context.Context, msg *Message, content string) {
	if err := d.replier.Reply(ctx, msg, content); err != nil {
		log.Printf("failed to reply in channel %s: %v", msg.ChannelID, err)
	}
}

// stripBotMentions removes the bot's mention tokens from a message body
func stripBotMentions(content, botUserID string) string {
	if botUserID == "" {
		return content
	}

	content = strings.ReplaceAll(content, "<@"+botUserID+">", "")
	content = strings.ReplaceAll(content, "<@!"+botUserID+">", "")
	return content
}
