// Package notification envia os e-mails transacionais do consultório:
// código de login após o cadastro e código de redefinição de senha.
package notification

import (
	"context"
	"fmt"
	"html"
	"time"
)

// Notifier é o gateway usado pelos casos de uso. Erros devem ser apenas
// registrados por quem chama.
type Notifier interface {
	SendLoginCode(ctx context.Context, email, code string) error
	SendResetCode(ctx context.Context, email, code string) error
}

// EmailSender é implementado por cada provedor (Resend, SendGrid, log).
type EmailSender interface {
	SendEmail(ctx context.Context, msg Message) error
}

type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

type EmailNotifier struct {
	sender   EmailSender
	resetTTL time.Duration
}

// NewEmailNotifier usa resetTTL só para informar a validade no e-mail.
func NewEmailNotifier(sender EmailSender, resetTTL time.Duration) *EmailNotifier {
	return &EmailNotifier{sender: sender, resetTTL: resetTTL}
}

func (n *EmailNotifier) SendLoginCode(ctx context.Context, email, code string) error {
	msg := Message{
		To:      email,
		Subject: "Seu código de acesso ao consultório",
		Text:    fmt.Sprintf("Cadastro realizado! Seu código de login é: %s", code),
		HTML: fmt.Sprintf(
			"<p>Cadastro realizado!</p><p>Seu código de login é: <strong>%s</strong></p>",
			html.EscapeString(code),
		),
	}
	if err := n.sender.SendEmail(ctx, msg); err != nil {
		return fmt.Errorf("send login code: %w", err)
	}
	return nil
}

func (n *EmailNotifier) SendResetCode(ctx context.Context, email, code string) error {
	msg := Message{
		To:      email,
		Subject: "Redefinição de senha",
		Text: fmt.Sprintf(
			"Use o código %s para redefinir sua senha. Ele expira em %s.", code, n.validity(),
		),
		HTML: fmt.Sprintf(
			"<p>Use o código <strong>%s</strong> para redefinir sua senha.</p><p>Ele expira em %s.</p>",
			html.EscapeString(code), n.validity(),
		),
	}
	if err := n.sender.SendEmail(ctx, msg); err != nil {
		return fmt.Errorf("send reset code: %w", err)
	}
	return nil
}

func (n *EmailNotifier) validity() string {
	m := int(n.resetTTL.Round(time.Minute) / time.Minute)
	switch {
	case m <= 1:
		return "1 minuto"
	case m%60 == 0 && m >= 120:
		return fmt.Sprintf("%d horas", m/60)
	case m == 60:
		return "1 hora"
	default:
		return fmt.Sprintf("%d minutos", m)
	}
}
