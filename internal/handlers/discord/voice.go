package discord

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/jonas747/dca"

	"github.com/tlowery/flint/internal/media"
)

// voiceConn implements playback.Conn over a discordgo voice connection,
// transcoding the source to opus with dca
type voiceConn struct {
	vc *discordgo.VoiceConnection
}

// Play streams the source until it ends or ctx is cancelled
func (c *voiceConn) Play(ctx context.Context, source media.Source) error {
	stream, err := source.Open(ctx)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer stream.Close()

	encodeSession, err := dca.EncodeMem(stream, dca.StdEncodeOptions)
	if err != nil {
		return fmt.Errorf("failed to start encoder: %w", err)
	}
	defer encodeSession.Cleanup()

	if err := c.vc.Speaking(true); err != nil {
		return fmt.Errorf("failed to set speaking state: %w", err)
	}
	defer func() {
		if err := c.vc.Speaking(false); err != nil {
			log.Printf("failed to clear speaking state: %v", err)
		}
	}()

	done := make(chan error, 1)
	dca.NewStream(encodeSession, c.vc, done)

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("stream failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Disconnect leaves the voice channel
func (c *voiceConn) Disconnect() error {
	return c.vc.Disconnect()
}
