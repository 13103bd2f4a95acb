package main

import (
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"jamesfarrell.me/youtube-summarizer/internal/config"
	"jamesfarrell.me/youtube-summarizer/internal/logging"
	"jamesfarrell.me/youtube-summarizer/internal/summary"
	"jamesfarrell.me/youtube-summarizer/internal/transcription"
)

// app holds what every command needs once configuration has been read.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "service",
		Short: "YouTube transcript and summary relay",
		Long: `Fetches YouTube transcripts and summarizes them with a language model.

Run without a subcommand to start the HTTP API.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}

	serveCmd := newServeCmd(a)
	rootCmd.RunE = serveCmd.RunE
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newTranscriptCmd(a))
	rootCmd.AddCommand(newSummarizeCmd(a))

	return rootCmd
}

func (a *app) load() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	return nil
}

func (a *app) transcriptService() *transcription.Service {
	httpClient := &http.Client{Timeout: a.cfg.UpstreamTimeout}
	return transcription.NewService(transcription.NewYouTubeProvider(httpClient), a.cfg.TranscriptLanguage)
}

func (a *app) summarizer() (*summary.Summarizer, error) {
	scfg := summary.Config{
		Provider: a.cfg.Provider,
		APIKey:   a.cfg.SummarizerKey(),
		Timeout:  a.cfg.UpstreamTimeout,
	}
	switch a.cfg.Provider {
	case summary.ProviderOpenAI:
		scfg.Model = a.cfg.OpenAIModel
		scfg.BaseURL = a.cfg.OpenAIBaseURL
	default:
		scfg.Model = a.cfg.GeminiModel
		scfg.BaseURL = a.cfg.GeminiBaseURL
	}
	return summary.New(scfg)
}
