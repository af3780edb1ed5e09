// Package diagnostics configures the process-wide diagnostic logger. The
// simulation kernel itself never imports this package — it stays
// dependency-light and returns plain errors; only the CLI logs them.
package diagnostics

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger configures zerolog with pretty console output to stderr, the
// channel spec.md §6 reserves for diagnostics.
func NewLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
