package summary

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config is built once at startup and never mutated.
type Config struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
}

// Generator sends a prompt to a language model and returns its raw text.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

type Summarizer struct {
	apiKey    string
	generator Generator
}

// New builds a summarizer for the configured provider.
func New(cfg Config) (*Summarizer, error) {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	var gen Generator
	switch cfg.Provider {
	case "", ProviderGemini:
		gen = NewGeminiClient(cfg.APIKey, cfg.Model, cfg.BaseURL, httpClient)
	case ProviderOpenAI:
		gen = NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL, httpClient)
	default:
		return nil, fmt.Errorf("unknown summarizer provider %q", cfg.Provider)
	}

	return NewWithGenerator(cfg.APIKey, gen), nil
}

func NewWithGenerator(apiKey string, gen Generator) *Summarizer {
	return &Summarizer{
		apiKey:    apiKey,
		generator: gen,
	}
}

// Provider names the upstream model API, e.g. "Gemini".
func (s *Summarizer) Provider() string {
	return s.generator.Name()
}

// Summarize prompts the model with the transcript and splits its answer
// into a summary and takeaways. The credential is checked before any
// request is made.
func (s *Summarizer) Summarize(ctx context.Context, transcript string) (Result, error) {
	if transcript == "" {
		return Result{}, ErrTranscriptRequired
	}
	if s.apiKey == "" {
		return Result{}, fmt.Errorf("%s: %w", s.generator.Name(), ErrMissingAPIKey)
	}

	logger := zerolog.Ctx(ctx)
	start := time.Now()

	raw, err := s.generator.Generate(ctx, BuildPrompt(transcript))
	if err != nil {
		return Result{}, err
	}

	logger.Debug().
		Str("provider", s.generator.Name()).
		Int("transcript_chars", len(transcript)).
		Int("response_chars", len(raw)).
		Dur("elapsed", time.Since(start)).
		Msg("summary generated")

	return Split(raw), nil
}
