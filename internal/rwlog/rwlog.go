// Package rwlog is a small zerolog wrapper: compact field names, a
// Debug-gated level, and a way to tag a burst of related log lines with
// one correlation id.
package rwlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

func init() {
	zerolog.TimestampFieldName = "T"
	zerolog.LevelFieldName = "L"
	zerolog.MessageFieldName = "M"
	zerolog.LevelDebugValue = "DEBUG"
	zerolog.LevelInfoValue = "INFO"
	zerolog.LevelWarnValue = "WARN"
	zerolog.LevelErrorValue = "ERROR"
}

// Logger embeds zerolog.Logger so every zerolog method is usable
// directly (l.Debug().Msg(...), l.Info().Uint32(...), ...).
type Logger struct {
	zerolog.Logger
}

// Options configures a new Logger.
type Options struct {
	Debug bool
}

// New returns a Logger writing to stdout at Info level, or Debug level
// when opts.Debug is set.
func New(opts Options) *Logger {
	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}
	var output io.Writer = os.Stdout
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &Logger{logger}
}

// Discard returns a Logger that writes nothing, for callers that don't
// want progress logged.
func Discard() *Logger {
	return &Logger{zerolog.New(io.Discard)}
}

// WithCorrelationID returns a child logger tagging every line it writes
// with id. The same method covers both uses in this codebase: a rewrite
// run id (rewrite.Run) and an HTTP request id (the server middleware) —
// in both cases the point is to group a burst of log lines under one
// id, so there is no need for a separate method per caller.
func (l *Logger) WithCorrelationID(id string) *Logger {
	return &Logger{l.With().Str("correlationID", id).Logger()}
}
