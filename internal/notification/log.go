package notification

import (
	"context"

	"github.com/rs/zerolog"
)

// LogSender só registra o e-mail; usado em desenvolvimento.
type LogSender struct {
	log zerolog.Logger
}

func NewLogSender(log zerolog.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) SendEmail(_ context.Context, msg Message) error {
	s.log.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Str("body", msg.Text).
		Msg("email not sent (log provider)")
	return nil
}
