package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process logger. format is "json" or "console"; anything
// else falls back to json.
func New(level zerolog.Level, format string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// PrintlnLogger adapts a zerolog.Logger to the Println-style logger some
// middleware expects.
type PrintlnLogger struct {
	Logger zerolog.Logger
}

func (p PrintlnLogger) Println(v ...interface{}) {
	p.Logger.Error().Msg(fmt.Sprint(v...))
}
