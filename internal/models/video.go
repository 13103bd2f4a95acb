package models

type TranscriptRequest struct {
	VideoURL string `json:"videoUrl"`
	Format   string `json:"format,omitempty"`
}

type TranscriptResponse struct {
	Transcript string `json:"transcript"`
}

type SummarizeRequest struct {
	Transcript string `json:"transcript"`
}

type SummaryResponse struct {
	Summary      string `json:"summary"`
	KeyTakeaways string `json:"keyTakeaways"`
}

// ErrorResponse is the envelope every failed request is answered with.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
