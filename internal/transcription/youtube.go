package transcription

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/kkdai/youtube/v2"
)

// YouTubeProvider reads caption tracks and transcript segments straight
// from YouTube's innertube API.
type YouTubeProvider struct {
	httpClient *http.Client
}

func NewYouTubeProvider(httpClient *http.Client) *YouTubeProvider {
	return &YouTubeProvider{httpClient: httpClient}
}

// client returns a fresh youtube client. The library client mutates
// itself while resolving a video, so it is never shared between requests.
func (p *YouTubeProvider) client() *youtube.Client {
	return &youtube.Client{HTTPClient: p.httpClient}
}

func (p *YouTubeProvider) ListTranscripts(ctx context.Context, videoID string) ([]Track, error) {
	video, err := p.client().GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("error loading video: %w", err)
	}

	if len(video.CaptionTracks) == 0 {
		return nil, ErrTranscriptsDisabled
	}

	tracks := make([]Track, 0, len(video.CaptionTracks))
	for _, ct := range video.CaptionTracks {
		tracks = append(tracks, Track{
			LanguageCode: ct.LanguageCode,
			Language:     ct.Name.SimpleText,
			Generated:    ct.Kind == "asr",
		})
	}
	return tracks, nil
}

// FetchSegments requests the transcript for track.LanguageCode only. Whether
// YouTube serves the manual or the generated track for that code is up to
// YouTube.
func (p *YouTubeProvider) FetchSegments(ctx context.Context, videoID string, track Track) ([]Segment, error) {
	transcript, err := p.client().GetTranscriptCtx(ctx, &youtube.Video{ID: videoID}, track.LanguageCode)
	if errors.Is(err, youtube.ErrTranscriptDisabled) {
		return nil, ErrTranscriptsDisabled
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching transcript: %w", err)
	}

	segments := make([]Segment, 0, len(transcript))
	for _, seg := range transcript {
		segments = append(segments, Segment{
			Text:     seg.Text,
			Start:    time.Duration(seg.StartMs) * time.Millisecond,
			Duration: time.Duration(seg.Duration) * time.Millisecond,
		})
	}
	return segments, nil
}
