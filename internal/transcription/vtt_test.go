package transcription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFormatter(t *testing.T) {
	tests := []struct {
		name     string
		segments []Segment
		want     string
	}{
		{
			name: "basic",
			segments: []Segment{
				{Text: "Hello, this is the first subtitle"},
				{Text: "This is the second subtitle"},
			},
			want: "Hello, this is the first subtitle\nThis is the second subtitle",
		},
		{
			name:     "single segment",
			segments: []Segment{{Text: "only"}},
			want:     "only",
		},
		{
			name:     "no segments",
			segments: nil,
			want:     "",
		},
		{
			name: "multi-line segment kept as is",
			segments: []Segment{
				{Text: "Hello, this is\na multi-line subtitle"},
				{Text: "Second entry"},
			},
			want: "Hello, this is\na multi-line subtitle\nSecond entry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TextFormatter{}.Format(tt.segments))
		})
	}
}

func TestWebVTTFormatter(t *testing.T) {
	segments := []Segment{
		{Text: "First entry", Start: time.Second, Duration: 3 * time.Second},
		{Text: "Second entry", Start: 4100 * time.Millisecond, Duration: 3900 * time.Millisecond},
	}

	want := "WEBVTT\n\n" +
		"00:00:01.000 --> 00:00:04.000\nFirst entry\n\n" +
		"00:00:04.100 --> 00:00:08.000\nSecond entry\n"
	assert.Equal(t, want, WebVTTFormatter{}.Format(segments))
}

func TestWebVTTFormatterClampsOverlap(t *testing.T) {
	segments := []Segment{
		{Text: "a", Start: 0, Duration: 5 * time.Second},
		{Text: "b", Start: 2 * time.Second, Duration: time.Second},
	}

	got := WebVTTFormatter{}.Format(segments)
	assert.Contains(t, got, "00:00:00.000 --> 00:00:02.000\na\n")
	assert.Contains(t, got, "00:00:02.000 --> 00:00:03.000\nb\n")
}

func TestFormatVTTTimestamp(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{
			name: "zero timestamp",
			d:    0,
			want: "00:00:00.000",
		},
		{
			name: "one second",
			d:    time.Second,
			want: "00:00:01.000",
		},
		{
			name: "with hours",
			d:    time.Hour,
			want: "01:00:00.000",
		},
		{
			name: "with milliseconds",
			d:    500 * time.Millisecond,
			want: "00:00:00.500",
		},
		{
			name: "complex time",
			d:    1*time.Hour + 23*time.Minute + 45*time.Second + 678*time.Millisecond,
			want: "01:23:45.678",
		},
		{
			name: "negative clamps to zero",
			d:    -time.Second,
			want: "00:00:00.000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatVTTTimestamp(tt.d))
		})
	}
}

func TestFormatterFor(t *testing.T) {
	for _, name := range []string{"", "text", "TEXT"} {
		f, err := FormatterFor(name)
		require.NoError(t, err)
		assert.IsType(t, TextFormatter{}, f)
	}

	for _, name := range []string{"vtt", "webvtt"} {
		f, err := FormatterFor(name)
		require.NoError(t, err)
		assert.IsType(t, WebVTTFormatter{}, f)
	}

	_, err := FormatterFor("srt")
	require.Error(t, err)
}
