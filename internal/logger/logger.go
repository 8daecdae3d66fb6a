package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a JSON logger, or a human-readable one in development.
func New(env string) zerolog.Logger {
	var out io.Writer = os.Stdout
	if env == "development" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	return zerolog.New(out).With().Timestamp().Str("service", "consultorio").Logger()
}
