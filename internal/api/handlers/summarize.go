package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/hlog"
	"jamesfarrell.me/youtube-summarizer/internal/models"
	"jamesfarrell.me/youtube-summarizer/internal/summary"
)

type TranscriptSummarizer interface {
	Provider() string
	Summarize(ctx context.Context, transcript string) (summary.Result, error)
}

type SummaryHandler struct {
	summarizer TranscriptSummarizer
}

func NewSummaryHandler(summarizer TranscriptSummarizer) *SummaryHandler {
	return &SummaryHandler{summarizer: summarizer}
}

func (h *SummaryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req models.SummarizeRequest
	decode(r, &req)

	if req.Transcript == "" {
		writeError(w, r, http.StatusBadRequest, "Transcript is required", "")
		return
	}

	result, err := h.summarizer.Summarize(r.Context(), req.Transcript)
	if err != nil {
		provider := h.summarizer.Provider()
		logger := hlog.FromRequest(r)

		var upErr *summary.UpstreamError
		switch {
		case errors.Is(err, summary.ErrTranscriptRequired):
			writeError(w, r, http.StatusBadRequest, "Transcript is required", "")
		case errors.Is(err, summary.ErrMissingAPIKey):
			logger.Error().Str("provider", provider).Msg("summarizer API key is not configured")
			writeError(w, r, http.StatusInternalServerError, fmt.Sprintf("Missing %s API key", provider), "")
		case errors.As(err, &upErr):
			logger.Error().Err(err).Int("status", upErr.StatusCode).Msg("summarizer upstream failed")
			writeError(w, r, http.StatusInternalServerError, fmt.Sprintf("%s API failed", provider), upErr.Details())
		default:
			logger.Error().Err(err).Msg("summarize failed")
			writeError(w, r, http.StatusInternalServerError, fmt.Sprintf("%s API failed", provider), err.Error())
		}
		return
	}

	writeJSON(w, r, http.StatusOK, models.SummaryResponse{
		Summary:      result.Summary,
		KeyTakeaways: result.KeyTakeaways,
	})
}
