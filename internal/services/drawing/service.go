package drawing

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/tlowery/flint/internal/common/clock"
	"github.com/tlowery/flint/internal/common/uuid"
	"github.com/tlowery/flint/internal/models"
	"github.com/tlowery/flint/internal/rng"
)

// service implements the Service interface
type service struct {
	messenger  Messenger
	clock      clock.Clock
	picker     rng.Picker
	ids        uuid.Generator
	entryEmoji string
	timeUnit   time.Duration

	mu       sync.Mutex
	drawings map[string]*models.Drawing
	timers   map[string]*time.Timer
}

// New creates a new drawing service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Messenger == nil {
		return nil, ErrNilMessenger
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.Picker == nil {
		return nil, ErrNilPicker
	}

	entryEmoji := cfg.EntryEmoji
	if entryEmoji == "" {
		entryEmoji = DefaultEntryEmoji
	}

	timeUnit := cfg.TimeUnit
	if timeUnit == 0 {
		timeUnit = time.Minute
	}

	ids := cfg.IDGenerator
	if ids == nil {
		ids = uuid.New()
	}

	return &service{
		messenger:  cfg.Messenger,
		clock:      cfg.Clock,
		picker:     cfg.Picker,
		ids:        ids,
		entryEmoji: entryEmoji,
		timeUnit:   timeUnit,
		drawings:   make(map[string]*models.Drawing),
		timers:     make(map[string]*time.Timer),
	}, nil
}

// Start announces a drawing and schedules its conclusion. The scheduled
// expiry fires exactly once; it is lost if the process exits first.
func (s *service) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil || input.Minutes < 1 {
		return nil, ErrInvalidDuration
	}

	prize := strings.TrimSpace(input.Prize)
	if prize == "" {
		return nil, ErrEmptyPrize
	}

	announcement := fmt.Sprintf(
		"🎉 GIVEAWAY 🎉\n\nPrize: %s\nReact %s\nEnds in %d min",
		prize, s.entryEmoji, input.Minutes,
	)

	messageID, err := s.messenger.SendMessage(ctx, input.ChannelID, announcement)
	if err != nil {
		return nil, fmt.Errorf("failed to announce drawing: %w", err)
	}

	if err := s.messenger.AddReaction(ctx, input.ChannelID, messageID, s.entryEmoji); err != nil {
		return nil, fmt.Errorf("failed to attach entry reaction: %w", err)
	}

	now := s.clock.Now()
	duration := time.Duration(input.Minutes) * s.timeUnit

	d := &models.Drawing{
		ID:        s.ids.NewID(),
		ChannelID: input.ChannelID,
		MessageID: messageID,
		Prize:     prize,
		Status:    models.DrawingStatusOpen,
		CreatedAt: now,
		EndsAt:    now.Add(duration),
	}

	s.mu.Lock()
	s.drawings[d.ID] = d
	s.timers[d.ID] = time.AfterFunc(duration, func() {
		s.conclude(d.ID)
	})
	s.mu.Unlock()

	return &StartOutput{
		DrawingID: d.ID,
		MessageID: messageID,
		EndsAt:    d.EndsAt,
	}, nil
}

// Cancel retracts a scheduled drawing before it concludes
func (s *service) Cancel(_ context.Context, input *CancelInput) error {
	if input == nil || input.DrawingID == "" {
		return ErrDrawingNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drawings[input.DrawingID]
	if !ok {
		return ErrDrawingNotFound
	}

	if timer := s.timers[input.DrawingID]; timer != nil {
		timer.Stop()
	}

	d.Status = models.DrawingStatusCancelled
	delete(s.drawings, input.DrawingID)
	delete(s.timers, input.DrawingID)

	return nil
}

// conclude resolves an expired drawing. The participant set is whatever is
// attached to the announcement at this moment; entries removed before expiry
// do not count.
func (s *service) conclude(drawingID string) {
	s.mu.Lock()
	d, ok := s.drawings[drawingID]
	delete(s.drawings, drawingID)
	delete(s.timers, drawingID)
	s.mu.Unlock()

	if !ok {
		return
	}

	ctx := context.Background()

	reactors, err := s.messenger.GetReactionUsers(ctx, d.ChannelID, d.MessageID, s.entryEmoji)
	if err != nil {
		// Terminal for this drawing; the announcement may have been deleted.
		log.Printf("drawing %s: failed to fetch entries: %v", drawingID, err)
		return
	}

	entries := make([]Reactor, 0, len(reactors))
	for _, r := range reactors {
		if r.IsBot {
			continue
		}
		entries = append(entries, r)
	}

	d.Status = models.DrawingStatusConcluded

	if len(entries) == 0 {
		if _, err := s.messenger.SendMessage(ctx, d.ChannelID, "No entries"); err != nil {
			log.Printf("drawing %s: failed to announce empty result: %v", drawingID, err)
		}
		return
	}

	winner := entries[s.picker.Intn(len(entries))]

	result := fmt.Sprintf("🏆 <@%s> won **%s**", winner.ID, d.Prize)
	if _, err := s.messenger.SendMessage(ctx, d.ChannelID, result); err != nil {
		log.Printf("drawing %s: failed to announce winner: %v", drawingID, err)
	}
}
