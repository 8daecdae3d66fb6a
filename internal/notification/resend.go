package notification

import (
	"context"
	"errors"

	"github.com/resend/resend-go/v2"
)

type ResendSender struct {
	from   string
	client *resend.Client
}

func NewResendSender(apiKey, from string) (*ResendSender, error) {
	if apiKey == "" {
		return nil, errors.New("MAIL_API_KEY not set")
	}
	return &ResendSender{
		from:   from,
		client: resend.NewClient(apiKey),
	}, nil
}

func (s *ResendSender) SendEmail(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Text,
		Html:    msg.HTML,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	return err
}
