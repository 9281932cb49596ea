// Package xlog provides a configurable logger shared across the
// module's components, grounded directly on gnark's logger package:
// github.com/rs/zerolog with a console writer on stdout when the
// NUMTHEORY_DEBUG environment variable is set, and a no-op logger
// otherwise.
package xlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger()

	if os.Getenv("NUMTHEORY_DEBUG") == "" {
		logger = zerolog.Nop()
	}
}

// SetOutput changes the output of the global logger.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Set lets a caller override the global logger entirely.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable silences the global logger.
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns the shared logger.
func Logger() zerolog.Logger {
	return logger
}
