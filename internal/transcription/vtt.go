package transcription

import (
	"fmt"
	"strings"
	"time"
)

// Formatter renders transcript segments as a single string.
type Formatter interface {
	Format(segments []Segment) string
}

// TextFormatter joins segment text with newlines, in caption order.
type TextFormatter struct{}

func (TextFormatter) Format(segments []Segment) string {
	lines := make([]string, 0, len(segments))
	for _, s := range segments {
		lines = append(lines, s.Text)
	}
	return strings.Join(lines, "\n")
}

// WebVTTFormatter renders segments as a WebVTT document.
type WebVTTFormatter struct{}

func (WebVTTFormatter) Format(segments []Segment) string {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")

	for i, s := range segments {
		end := s.Start + s.Duration
		// Cues may not overlap the next one
		if i < len(segments)-1 && end > segments[i+1].Start {
			end = segments[i+1].Start
		}
		fmt.Fprintf(&sb, "%s --> %s\n%s\n", formatVTTTimestamp(s.Start), formatVTTTimestamp(end), s.Text)
		if i < len(segments)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// FormatterFor maps a request format name to a formatter. The empty name
// selects plain text.
func FormatterFor(name string) (Formatter, error) {
	switch strings.ToLower(name) {
	case "", "text":
		return TextFormatter{}, nil
	case "vtt", "webvtt":
		return WebVTTFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported transcript format %q", name)
	}
}

// formatVTTTimestamp renders d as HH:MM:SS.mmm
func formatVTTTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	d -= seconds * time.Second
	milliseconds := d / time.Millisecond

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, milliseconds)
}
