package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(zerolog.InfoLevel, "json", &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("video_id", "abc").Msg("fetched")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "abc", entry["video_id"])
	assert.Equal(t, "fetched", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := New(zerolog.DebugLevel, "console", &buf)

	logger.Debug().Msg("starting")
	assert.Contains(t, buf.String(), "starting")
	assert.False(t, json.Valid(buf.Bytes()))
}

func TestPrintlnLogger(t *testing.T) {
	var buf bytes.Buffer
	p := PrintlnLogger{Logger: New(zerolog.InfoLevel, "json", &buf)}

	p.Println("panic:", "boom")
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "boom")
}
