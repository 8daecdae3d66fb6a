package notification

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type SendGridSender struct {
	from   *sgmail.Email
	client *sendgrid.Client
}

func NewSendGridSender(apiKey, from string) (*SendGridSender, error) {
	if apiKey == "" {
		return nil, errors.New("MAIL_API_KEY not set")
	}

	addr, err := mail.ParseAddress(from)
	if err != nil {
		return nil, fmt.Errorf("invalid MAIL_FROM: %w", err)
	}

	return &SendGridSender{
		from:   sgmail.NewEmail(addr.Name, addr.Address),
		client: sendgrid.NewSendClient(apiKey),
	}, nil
}

func (s *SendGridSender) SendEmail(ctx context.Context, msg Message) error {
	to := sgmail.NewEmail("", msg.To)
	message := sgmail.NewSingleEmail(s.from, msg.Subject, to, msg.Text, msg.HTML)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
