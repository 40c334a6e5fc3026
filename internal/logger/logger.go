// Package logger constructs the process logger. Log lines go to stderr so
// they never interleave with the activity screens on stdout.
package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a console-formatted logger writing to w at the given level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
