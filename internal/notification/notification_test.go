package notification

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/consultorio/internal/config"
)

type recordingSender struct {
	sent []Message
	err  error
}

func (r *recordingSender) SendEmail(_ context.Context, msg Message) error {
	r.sent = append(r.sent, msg)
	return r.err
}

func TestEmailNotifier_SendLoginCode(t *testing.T) {
	rec := &recordingSender{}
	n := NewEmailNotifier(rec, 30*time.Minute)

	require.NoError(t, n.SendLoginCode(context.Background(), "a@x.com", "12345678"))

	require.Len(t, rec.sent, 1)
	assert.Equal(t, "a@x.com", rec.sent[0].To)
	assert.Contains(t, rec.sent[0].Text, "12345678")
	assert.Contains(t, rec.sent[0].HTML, "<strong>12345678</strong>")
}

func TestEmailNotifier_SendResetCode(t *testing.T) {
	rec := &recordingSender{}
	n := NewEmailNotifier(rec, 30*time.Minute)

	require.NoError(t, n.SendResetCode(context.Background(), "a@x.com", "AB12CD"))

	require.Len(t, rec.sent, 1)
	assert.Equal(t, "Redefinição de senha", rec.sent[0].Subject)
	assert.Contains(t, rec.sent[0].Text, "AB12CD")
	assert.Contains(t, rec.sent[0].Text, "expira em 30 minutos")
}

func TestEmailNotifier_Validity(t *testing.T) {
	cases := map[time.Duration]string{
		30 * time.Second: "1 minuto",
		15 * time.Minute: "15 minutos",
		time.Hour:        "1 hora",
		2 * time.Hour:    "2 horas",
		90 * time.Minute: "90 minutos",
	}
	for ttl, want := range cases {
		n := NewEmailNotifier(&recordingSender{}, ttl)
		assert.Equal(t, want, n.validity(), ttl.String())
	}
}

func TestEmailNotifier_WrapsProviderError(t *testing.T) {
	boom := errors.New("provider down")
	n := NewEmailNotifier(&recordingSender{err: boom}, 30*time.Minute)

	err := n.SendResetCode(context.Background(), "a@x.com", "AB12CD")
	assert.ErrorIs(t, err, boom)
}

func TestNewSender(t *testing.T) {
	log := zerolog.New(&bytes.Buffer{})

	s, err := NewSender(&config.Config{MailProvider: "log"}, log)
	require.NoError(t, err)
	assert.IsType(t, &LogSender{}, s)

	_, err = NewSender(&config.Config{MailProvider: "resend"}, log)
	assert.Error(t, err, "resend requires an api key")

	_, err = NewSender(&config.Config{MailProvider: "sendgrid", MailAPIKey: "k", MailFrom: "not an address"}, log)
	assert.Error(t, err)

	s, err = NewSender(&config.Config{MailProvider: "sendgrid", MailAPIKey: "k", MailFrom: "Consultório <a@x.com>"}, log)
	require.NoError(t, err)
	assert.IsType(t, &SendGridSender{}, s)

	_, err = NewSender(&config.Config{MailProvider: "pombo"}, log)
	assert.Error(t, err)
}

func TestLogSender(t *testing.T) {
	var buf bytes.Buffer
	s := NewLogSender(zerolog.New(&buf))

	require.NoError(t, s.SendEmail(context.Background(), Message{To: "a@x.com", Subject: "oi", Text: "corpo"}))
	assert.Contains(t, buf.String(), `"to":"a@x.com"`)
}
