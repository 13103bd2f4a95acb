package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"jamesfarrell.me/youtube-summarizer/internal/api"
	"jamesfarrell.me/youtube-summarizer/internal/config"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API.

Endpoints:
  GET  /health          - Health check
  POST /api/transcript  - Fetch a video transcript
  POST /api/summarize   - Summarize a transcript`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.Port = port
				if err := a.cfg.Validate(); err != nil {
					return err
				}
			}
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().IntVar(&port, "port", config.DefaultPort, "Listen port (default: from PORT env)")

	return cmd
}

func (a *app) serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	sum, err := a.summarizer()
	if err != nil {
		return err
	}

	if a.cfg.SummarizerKey() == "" {
		a.logger.Warn().Str("provider", sum.Provider()).Msg("no summarizer API key set, /api/summarize will fail")
	}

	router := api.NewRouter(api.Dependencies{
		Transcripts: a.transcriptService(),
		Summarizer:  sum,
		Logger:      a.logger,
		APIKey:      a.cfg.ServiceAPIKey,
	})

	srv := &http.Server{
		Addr:              a.cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info().
			Str("addr", srv.Addr).
			Str("provider", sum.Provider()).
			Str("api_key", config.MaskKey(a.cfg.SummarizerKey())).
			Bool("auth", a.cfg.ServiceAPIKey != "").
			Msg("starting HTTP server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
