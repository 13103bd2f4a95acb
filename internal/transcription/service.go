package transcription

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

const DefaultLanguage = "en"

type Service struct {
	provider Provider
	language string
}

func NewService(provider Provider, language string) *Service {
	if language == "" {
		language = DefaultLanguage
	}
	return &Service{
		provider: provider,
		language: language,
	}
}

// Fetch lists the transcripts of a video, picks the one in the service
// language and returns its segments in caption order.
func (s *Service) Fetch(ctx context.Context, videoID string) ([]Segment, error) {
	logger := zerolog.Ctx(ctx).With().Str("video_id", videoID).Logger()

	tracks, err := s.provider.ListTranscripts(ctx, videoID)
	if err != nil {
		return nil, classify(videoID, fmt.Errorf("list transcripts: %w", err))
	}
	if len(tracks) == 0 {
		return nil, &Error{Kind: KindUnavailable, VideoID: videoID, Err: ErrTranscriptsDisabled}
	}

	track, ok := SelectTrack(tracks, s.language)
	if !ok {
		return nil, &Error{
			Kind:    KindLanguageNotFound,
			VideoID: videoID,
			Err: fmt.Errorf("no transcript found for language %q (available: %s)",
				s.language, strings.Join(languageCodes(tracks), ", ")),
		}
	}

	logger.Debug().
		Str("language", track.LanguageCode).
		Bool("generated", track.Generated).
		Int("tracks", len(tracks)).
		Msg("selected caption track")

	segments, err := s.provider.FetchSegments(ctx, videoID, track)
	if err != nil {
		return nil, classify(videoID, fmt.Errorf("fetch segments: %w", err))
	}
	if len(segments) == 0 {
		return nil, &Error{Kind: KindUnavailable, VideoID: videoID, Err: ErrTranscriptsDisabled}
	}

	logger.Debug().Int("segments", len(segments)).Msg("fetched transcript")
	return segments, nil
}

// FetchText fetches a transcript and renders it with the given formatter.
func (s *Service) FetchText(ctx context.Context, videoID string, formatter Formatter) (string, error) {
	segments, err := s.Fetch(ctx, videoID)
	if err != nil {
		return "", err
	}
	if formatter == nil {
		formatter = TextFormatter{}
	}
	return formatter.Format(segments), nil
}

// SelectTrack returns the track whose language code equals language exactly.
// Manually created tracks win over auto-generated ones. The preference is
// advisory: YouTubeProvider fetches by language code and YouTube picks the
// track it serves for that code.
func SelectTrack(tracks []Track, language string) (Track, bool) {
	for _, t := range tracks {
		if t.LanguageCode == language && !t.Generated {
			return t, true
		}
	}
	for _, t := range tracks {
		if t.LanguageCode == language {
			return t, true
		}
	}
	return Track{}, false
}

func classify(videoID string, err error) error {
	kind := KindFetchFailed
	if errors.Is(err, ErrTranscriptsDisabled) {
		kind = KindUnavailable
	}
	return &Error{Kind: kind, VideoID: videoID, Err: err}
}

func languageCodes(tracks []Track) []string {
	codes := make([]string, 0, len(tracks))
	for _, t := range tracks {
		codes = append(codes, t.LanguageCode)
	}
	return codes
}
