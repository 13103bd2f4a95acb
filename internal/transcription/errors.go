package transcription

import (
	"errors"
	"fmt"
)

// ErrTranscriptsDisabled is returned by providers when a video has no
// caption tracks at all.
var ErrTranscriptsDisabled = errors.New("transcripts are disabled for this video")

// ErrorKind classifies a failed transcript fetch so callers can branch on it
// instead of on error text.
type ErrorKind int

const (
	// KindFetchFailed covers network errors, malformed IDs and private or
	// deleted videos.
	KindFetchFailed ErrorKind = iota

	// KindUnavailable means the video has no transcripts.
	KindUnavailable

	// KindLanguageNotFound means transcripts exist but none in the
	// requested language.
	KindLanguageNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindLanguageNotFound:
		return "language_not_found"
	default:
		return "fetch_failed"
	}
}

type Error struct {
	Kind    ErrorKind
	VideoID string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("transcript %s for video %s", e.Kind, e.VideoID)
	}
	return fmt.Sprintf("transcript %s for video %s: %v", e.Kind, e.VideoID, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the kind of a fetch error. Errors that did not come from
// the fetcher are treated as KindFetchFailed.
func KindOf(err error) ErrorKind {
	var terr *Error
	if errors.As(err, &terr) {
		return terr.Kind
	}
	return KindFetchFailed
}
