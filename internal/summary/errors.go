package summary

import (
	"errors"
	"fmt"
)

var (
	ErrTranscriptRequired = errors.New("transcript is required")
	ErrMissingAPIKey      = errors.New("missing API key")
)

// UpstreamError reports a failed call to the language model API. Body holds
// the upstream response body when one was received.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s API failed with status %d: %s", e.Provider, e.StatusCode, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("%s API request failed: %v", e.Provider, e.Err)
	default:
		return fmt.Sprintf("%s API failed", e.Provider)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Details is the diagnostic text handed back to API clients.
func (e *UpstreamError) Details() string {
	if e.Body != "" {
		return e.Body
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return ""
}
