package discord

import (
	"context"
	"log"
	"strings"
)

// genericFailureReply is sent when a handler fails unexpectedly
const genericFailureReply = "❌ Something went wrong"

// defaultDeniedReply is sent when the author lacks a command's permission
const defaultDeniedReply = "❌ No permission"

// CommandHandler defines the interface for prefix command handlers
type CommandHandler interface {
	// GetName returns the name matched after the command prefix
	GetName() string

	// RequiredPermission returns the permission bit the author must hold,
	// or 0 for an unrestricted command
	RequiredPermission() int64

	// DeniedReply returns the fixed text sent on a failed permission check
	DeniedReply() string

	// Handle processes one invocation. Validation failures are replied to
	// inside the handler; a returned error means an unexpected failure.
	Handle(ctx context.Context, msg *Message, args []string) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	// Name is the command name without the prefix
	Name string

	// Permission is the required permission bit, 0 for none
	Permission int64

	// DenyText overrides the default permission-denied reply
	DenyText string
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// RequiredPermission returns the required permission bit
func (c *BaseCommand) RequiredPermission() int64 {
	return c.Permission
}

// DeniedReply returns the permission-denied reply text
func (c *BaseCommand) DeniedReply() string {
	if c.DenyText != "" {
		return c.DenyText
	}
	return defaultDeniedReply
}

// Router parses prefix commands out of message bodies and dispatches them.
// The permission table lives on the registered commands and is checked
// here, before any handler runs.
type Router struct {
	prefix   string
	replier  Replier
	commands map[string]CommandHandler
}

// RouterConfig holds configuration for the router
type RouterConfig struct {
	// Prefix marks a message as a command, e.g. "!"
	Prefix string

	// Replier delivers denial and failure replies
	Replier Replier
}

// NewRouter creates a new command router
func NewRouter(cfg *RouterConfig) (*Router, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Prefix == "" {
		return nil, ErrEmptyPrefix
	}

	if cfg.Replier == nil {
		return nil, ErrNilReplier
	}

	return &Router{
		prefix:   cfg.Prefix,
		replier:  cfg.Replier,
		commands: make(map[string]CommandHandler),
	}, nil
}

// Register adds a command to the routing table
func (r *Router) Register(cmd CommandHandler) {
	r.commands[strings.ToLower(cmd.GetName())] = cmd
}

// Dispatch routes a message to at most one command handler. Messages
// without the prefix and unknown command names are ignored silently.
// Handler failures never propagate past the router.
func (r *Router) Dispatch(ctx context.Context, msg *Message) {
	if !strings.HasPrefix(msg.Content, r.prefix) {
		return
	}

	fields := strings.Fields(msg.Content[len(r.prefix):])
	if len(fields) == 0 {
		return
	}

	name := strings.ToLower(fields[0])
	args := fields[1:]

	cmd, ok := r.commands[name]
	if !ok {
		return
	}

	if perm := cmd.RequiredPermission(); perm != 0 && !msg.HasPermission(perm) {
		r.reply(ctx, msg, cmd.DeniedReply())
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("command %s panicked: %v", name, rec)
			r.reply(ctx, msg, genericFailureReply)
		}
	}()

	if err := cmd.Handle(ctx, msg, args); err != nil {
		log.Printf("command %s failed: %v", name, err)
		r.reply(ctx, msg, genericFailureReply)
	}
}

func (r *Router) reply(ctx context.Context, msg *Message, content string) {
	if err := r.replier.Reply(ctx, msg, content); err != nil {
		log.Printf("failed to reply in channel %s: %v", msg.ChannelID, err)
	}
}
