package media

import (
	"context"
	"fmt"
	"io"
	"regexp"

	"github.com/kkdai/youtube/v2"
)

// videoIDPattern matches a canonical 11-character YouTube video ID. The
// upstream extractor also passes loose tokens through as bare IDs, so the
// extracted value is checked against this before any network call.
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// parseVideoID validates the locator offline and returns its video ID
func parseVideoID(locator string) (string, error) {
	videoID, err := youtube.ExtractVideoID(locator)
	if err != nil || !videoIDPattern.MatchString(videoID) {
		return "", fmt.Errorf("%w: %q", ErrInvalidLocator, locator)
	}

	return videoID, nil
}

// youtubeResolver implements Resolver for YouTube links and video IDs
type youtubeResolver struct {
	client *youtube.Client
}

// NewYouTubeResolver creates a resolver for YouTube locators
func NewYouTubeResolver() *youtubeResolver {
	return &youtubeResolver{
		client: &youtube.Client{},
	}
}

// Resolve validates the locator and prepares an audio-only source. A
// malformed link fails with ErrInvalidLocator before any network call.
func (r *youtubeResolver) Resolve(ctx context.Context, locator string) (Source, error) {
	videoID, err := parseVideoID(locator)
	if err != nil {
		return nil, err
	}

	video, err := r.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video metadata: %w", err)
	}

	formats := video.Formats.Type("audio")
	if len(formats) == 0 {
		return nil, fmt.Errorf("no audio-only format for %q", locator)
	}

	return &youtubeSource{
		client: r.client,
		video:  video,
		format: &formats[0],
	}, nil
}

// youtubeSource implements Source for a resolved YouTube video
type youtubeSource struct {
	client *youtube.Client
	video  *youtube.Video
	format *youtube.Format
}

// Title is the video's title
func (s *youtubeSource) Title() string {
	return s.video.Title
}

// Open starts the audio-only byte stream
func (s *youtubeSource) Open(ctx context.Context) (io.ReadCloser, error) {
	stream, _, err := s.client.GetStreamContext(ctx, s.video, s.format)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio stream: %w", err)
	}

	return stream, nil
}
