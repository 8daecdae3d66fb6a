package notification

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/consultorio/internal/config"
)

// NewSender escolhe o provedor pelo MAIL_PROVIDER.
func NewSender(cfg *config.Config, log zerolog.Logger) (EmailSender, error) {
	switch cfg.MailProvider {
	case "resend":
		return NewResendSender(cfg.MailAPIKey, cfg.MailFrom)
	case "sendgrid":
		return NewSendGridSender(cfg.MailAPIKey, cfg.MailFrom)
	case "log", "":
		return NewLogSender(log), nil
	default:
		return nil, fmt.Errorf("unknown MAIL_PROVIDER %q", cfg.MailProvider)
	}
}
