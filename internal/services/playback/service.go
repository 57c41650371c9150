package playback

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/tlowery/flint/internal/media"
)

// session tracks one guild's voice connection. At most one stream is ever
// active per guild; replacing it tears the previous connection down first.
type session struct {
	state     State
	channelID string
	conn      Conn
	cancel    context.CancelFunc
}

// service implements the Service interface
type service struct {
	dialer   Dialer
	resolver media.Resolver

	mu       sync.Mutex
	sessions map[string]*session
}

// New creates a new playback service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Dialer == nil {
		return nil, ErrNilDialer
	}

	if cfg.Resolver == nil {
		return nil, ErrNilResolver
	}

	return &service{
		dialer:   cfg.Dialer,
		resolver: cfg.Resolver,
		sessions: make(map[string]*session),
	}, nil
}

// Join connects the bot to a voice channel. Joining the channel the guild
// already occupies is a no-op; switching channels tears down any active
// stream first.
func (s *service) Join(ctx context.Context, input *JoinInput) (*JoinOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[input.GuildID]; ok {
		if sess.channelID == input.ChannelID {
			return &JoinOutput{State: sess.state}, nil
		}
		s.teardownLocked(input.GuildID, sess)
	}

	conn, err := s.dialer.Dial(ctx, input.GuildID, input.ChannelID)
	if err != nil {
		return nil, fmt.Errorf("failed to join voice channel: %w", err)
	}

	s.sessions[input.GuildID] = &session{
		state:     StateConnected,
		channelID: input.ChannelID,
		conn:      conn,
	}

	return &JoinOutput{State: StateConnected}, nil
}

// Play resolves a locator and streams it into a voice channel. Any stream
// already active in the guild is torn down before the new one starts.
func (s *service) Play(ctx context.Context, input *PlayInput) (*PlayOutput, error) {
	// Resolve before touching the session so an invalid locator leaves the
	// state unchanged.
	source, err := s.resolver.Resolve(ctx, input.Locator)
	if err != nil {
		if errors.Is(err, media.ErrInvalidLocator) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve locator: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[input.GuildID]; ok {
		s.teardownLocked(input.GuildID, sess)
	}

	conn, err := s.dialer.Dial(ctx, input.GuildID, input.ChannelID)
	if err != nil {
		return nil, fmt.Errorf("failed to join voice channel: %w", err)
	}

	// The stream outlives the command invocation that started it.
	streamCtx, cancel := context.WithCancel(context.Background())

	sess := &session{
		state:     StatePlaying,
		channelID: input.ChannelID,
		conn:      conn,
		cancel:    cancel,
	}
	s.sessions[input.GuildID] = sess

	go s.stream(streamCtx, input.GuildID, sess, source)

	return &PlayOutput{Title: source.Title()}, nil
}

// Stop disconnects the guild's voice session regardless of whether a
// stream is active
func (s *service) Stop(_ context.Context, input *StopInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[input.GuildID]
	if !ok {
		return ErrNoActiveSession
	}

	s.teardownLocked(input.GuildID, sess)
	return nil
}

// GetState reports the guild's current connection state
func (s *service) GetState(_ context.Context, input *GetStateInput) (*GetStateOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[input.GuildID]
	if !ok {
		return &GetStateOutput{State: StateDisconnected}, nil
	}

	return &GetStateOutput{
		State:     sess.state,
		ChannelID: sess.channelID,
	}, nil
}

// stream plays the source to completion, then tears the session down. This
// is the only transition not driven by a command.
func (s *service) stream(ctx context.Context, guildID string, sess *session, source media.Source) {
	err := sess.conn.Play(ctx, source)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("playback in guild %s ended with error: %v", guildID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The session may already have been replaced or stopped; only the
	// stream that still owns it disconnects.
	if current, ok := s.sessions[guildID]; ok && current == sess {
		s.teardownLocked(guildID, sess)
	}
}

// teardownLocked cancels any active stream, disconnects, and forgets the
// session. Callers must hold s.mu.
func (s *service) teardownLocked(guildID string, sess *session) {
	if sess.cancel != nil {
		sess.cancel()
		sess.cancel = nil
	}

	if err := sess.conn.Disconnect(); err != nil {
		log.Printf("failed to disconnect voice in guild %s: %v", guildID, err)
	}

	sess.state = StateDisconnected
	delete(s.sessions, guildID)
}
