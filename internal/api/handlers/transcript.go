package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"
	"jamesfarrell.me/youtube-summarizer/internal/models"
	"jamesfarrell.me/youtube-summarizer/internal/transcription"
)

type TranscriptFetcher interface {
	FetchText(ctx context.Context, videoID string, formatter transcription.Formatter) (string, error)
}

type TranscriptHandler struct {
	fetcher TranscriptFetcher
}

func NewTranscriptHandler(fetcher TranscriptFetcher) *TranscriptHandler {
	return &TranscriptHandler{fetcher: fetcher}
}

func (h *TranscriptHandler) GetTranscript(w http.ResponseWriter, r *http.Request) {
	var req models.TranscriptRequest
	decode(r, &req)

	if req.VideoURL == "" {
		writeError(w, r, http.StatusBadRequest, "Video URL is required", "")
		return
	}

	videoID, err := models.ExtractVideoID(req.VideoURL)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid YouTube URL", "")
		return
	}

	formatter, err := transcription.FormatterFor(req.Format)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Unsupported transcript format", "")
		return
	}

	text, err := h.fetcher.FetchText(r.Context(), videoID, formatter)
	if err != nil {
		logger := hlog.FromRequest(r)
		kind := transcription.KindOf(err)
		logger.Warn().Err(err).Str("video_id", videoID).Stringer("kind", kind).Msg("transcript fetch failed")

		if kind == transcription.KindUnavailable {
			writeError(w, r, http.StatusNotFound, "No transcripts available for this video", "")
			return
		}
		writeError(w, r, http.StatusInternalServerError, "Failed to fetch transcript", transcriptDetails(err))
		return
	}

	writeJSON(w, r, http.StatusOK, models.TranscriptResponse{Transcript: text})
}

// transcriptDetails strips the kind and video id prefix so clients see the
// underlying cause.
func transcriptDetails(err error) string {
	var terr *transcription.Error
	if errors.As(err, &terr) && terr.Err != nil {
		return terr.Err.Error()
	}
	return err.Error()
}
