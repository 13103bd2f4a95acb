package api

import (
	"net/http"
	"time"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"jamesfarrell.me/youtube-summarizer/internal/api/handlers"
	"jamesfarrell.me/youtube-summarizer/internal/api/middleware"
	"jamesfarrell.me/youtube-summarizer/internal/logging"
)

type Dependencies struct {
	Transcripts handlers.TranscriptFetcher
	Summarizer  handlers.TranscriptSummarizer
	Logger      zerolog.Logger

	// APIKey, when set, is required in the X-API-Key header of /api requests.
	APIKey string
}

func NewRouter(deps Dependencies) http.Handler {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	// API routes sit on the root router with full paths. Sibling routes on a
	// mux subrouter lose the 405 for a wrong method.
	protected := middleware.APIKey(deps.APIKey)

	transcriptHandler := handlers.NewTranscriptHandler(deps.Transcripts)
	summaryHandler := handlers.NewSummaryHandler(deps.Summarizer)

	r.Handle("/api/transcript", protected(http.HandlerFunc(transcriptHandler.GetTranscript))).Methods(http.MethodPost)
	r.Handle("/api/summarize", protected(http.HandlerFunc(summaryHandler.Summarize))).Methods(http.MethodPost)

	var h http.Handler = r
	h = gorillahandlers.RecoveryHandler(
		gorillahandlers.RecoveryLogger(logging.PrintlnLogger{Logger: deps.Logger}),
	)(h)
	h = hlog.AccessHandler(accessLog)(h)
	h = middleware.RequestID(h)
	h = hlog.NewHandler(deps.Logger)(h)
	h = middleware.CORS(h)

	return h
}

func accessLog(r *http.Request, status, size int, duration time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Msg("request")
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
