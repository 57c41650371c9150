package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/tlowery/flint/internal/ai"
	"github.com/tlowery/flint/internal/common/clock"
	"github.com/tlowery/flint/internal/services/drawing"
	"github.com/tlowery/flint/internal/services/economy"
	"github.com/tlowery/flint/internal/services/playback"
)

// DefaultPrefix marks messages as commands unless overridden
const DefaultPrefix = "!"

// Bot wires the Discord session to the dispatch pipeline
type Bot struct {
	session    *discordgo.Session
	dispatcher *Dispatcher
	config     *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the discordgo session, created but not yet opened
	Session *discordgo.Session

	// Prefix marks messages as commands (defaults to DefaultPrefix)
	Prefix string

	// Economy credits authors and backs the level/balance/shop commands
	Economy economy.Service

	// Drawing backs the giveaway command
	Drawing drawing.Service

	// Playback backs the join/play/stop commands
	Playback playback.Service

	// AI generates replies to bot mentions
	AI ai.Client

	// Clock provides the current time for moderation timeouts
	Clock clock.Clock
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Session == nil {
		return nil, ErrNilSession
	}

	if cfg.Economy == nil {
		return nil, ErrNilEconomy
	}

	if cfg.Drawing == nil {
		return nil, ErrNilDrawing
	}

	if cfg.Playback == nil {
		return nil, ErrNilPlayback
	}

	if cfg.AI == nil {
		return nil, ErrNilAIClient
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	gateway, err := NewGateway(cfg.Session)
	if err != nil {
		return nil, err
	}

	router, err := NewRouter(&RouterConfig{
		Prefix:  prefix,
		Replier: gateway,
	})
	if err != nil {
		return nil, err
	}

	router.Register(NewHelpCommand(gateway))
	router.Register(NewPingCommand(gateway, gateway))
	router.Register(NewLevelCommand(gateway, cfg.Economy))
	router.Register(NewBalanceCommand(gateway, cfg.Economy))
	router.Register(NewShopCommand(gateway, cfg.Economy))
	router.Register(NewBuyCommand(gateway, cfg.Economy))
	router.Register(NewKickCommand(gateway, gateway))
	router.Register(NewBanCommand(gateway, gateway))
	router.Register(NewMuteCommand(gateway, gateway, cfg.Clock))
	router.Register(NewGiveawayCommand(gateway, cfg.Drawing))
	router.Register(NewJoinCommand(gateway, cfg.Playback))
	router.Register(NewPlayCommand(gateway, cfg.Playback))
	router.Register(NewStopCommand(gateway, cfg.Playback))

	dispatcher, err := NewDispatcher(&DispatcherConfig{
		Economy: cfg.Economy,
		AI:      cfg.AI,
		Replier: gateway,
		Router:  router,
	})
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		session:    cfg.Session,
		dispatcher: dispatcher,
		config:     cfg,
	}

	cfg.Session.AddHandler(bot.handleMessageCreate)

	return bot, nil
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	b.session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildVoiceStates

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	log.Printf("Bot online as %s", b.session.State.User.Username)
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() error {
	return b.session.Close()
}

// handleMessageCreate flattens a gateway event into a Message and runs it
// through the dispatch pipeline
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}

	botID := ""
	if s.State != nil && s.State.User != nil {
		botID = s.State.User.ID
	}

	msg := &Message{
		ID:          m.ID,
		GuildID:     m.GuildID,
		ChannelID:   m.ChannelID,
		AuthorID:    m.Author.ID,
		AuthorIsBot: m.Author.Bot,
		Content:     m.Content,
		BotUserID:   botID,
	}

	for _, user := range m.Mentions {
		if user.ID == botID {
			msg.MentionsBot = true
			continue
		}
		msg.Mentions = append(msg.Mentions, Mention{
			ID:       user.ID,
			Username: user.Username,
		})
	}

	perms, err := s.State.MessagePermissions(m.Message)
	if err != nil {
		perms, err = s.UserChannelPermissions(m.Author.ID, m.ChannelID)
		if err != nil {
			log.Printf("failed to resolve permissions for %s: %v", m.Author.ID, err)
			perms = 0
		}
	}
	msg.Permissions = perms

	if vs, err := s.State.VoiceState(m.GuildID, m.Author.ID); err == nil && vs != nil {
		msg.AuthorVoiceChannelID = vs.ChannelID
	}

	b.dispatcher.HandleMessage(context.Background(), msg)
}
