package transcription

import (
	"context"
	"time"
)

// Track describes one caption track offered for a video.
type Track struct {
	LanguageCode string
	Language     string
	Generated    bool
}

// Segment is a single timed piece of caption text.
type Segment struct {
	Text     string
	Start    time.Duration
	Duration time.Duration
}

// Provider is the upstream transcript source. Implementations return
// ErrTranscriptsDisabled when the video has no captions.
type Provider interface {
	ListTranscripts(ctx context.Context, videoID string) ([]Track, error)
	FetchSegments(ctx context.Context, videoID string, track Track) ([]Segment, error)
}
