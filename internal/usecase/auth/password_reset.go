package auth

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/consultorio/internal/audit"
	"github.com/BruksfildServices01/consultorio/internal/domain/physician"
	"github.com/BruksfildServices01/consultorio/internal/httperr"
	"github.com/BruksfildServices01/consultorio/internal/models"
	"github.com/BruksfildServices01/consultorio/internal/notification"
	"github.com/BruksfildServices01/consultorio/internal/timezone"
)

// SessionRevoker encerra as sessões abertas de um médico.
type SessionRevoker interface {
	DeleteByPhysician(ctx context.Context, physicianID uint) error
}

// PasswordReset conduz a recuperação de senha:
// pedido → código emitido → código verificado → senha redefinida.
// O próprio token é a credencial; não há sessão de redefinição.
type PasswordReset struct {
	repo     physician.Repository
	codes    physician.CodeSource
	notifier notification.Notifier
	sessions SessionRevoker
	audit    *audit.Dispatcher
	log      zerolog.Logger

	ttl time.Duration
	now func() time.Time
}

func NewPasswordReset(
	repo physician.Repository,
	codes physician.CodeSource,
	notifier notification.Notifier,
	sessions SessionRevoker,
	audit *audit.Dispatcher,
	log zerolog.Logger,
	ttl time.Duration,
) *PasswordReset {
	return &PasswordReset{
		repo:     repo,
		codes:    codes,
		notifier: notifier,
		sessions: sessions,
		audit:    audit,
		log:      log,
		ttl:      ttl,
		now:      timezone.Now,
	}
}

// WithClock troca o relógio (testes).
func (uc *PasswordReset) WithClock(now func() time.Time) *PasswordReset {
	uc.now = now
	return uc
}

// --------------------------------------------------
// 1️⃣ Pedido
// --------------------------------------------------

// Request gera e envia o token. Se o envio falhar o token continua gravado
// e o erro de negócio reset_email_failed é devolvido.
func (uc *PasswordReset) Request(ctx context.Context, email string) error {
	p, err := uc.repo.FindByEmail(ctx, email)
	if errors.Is(err, physician.ErrNotFound) {
		return httperr.ErrBusiness("email_not_found")
	}
	if err != nil {
		return err
	}

	token, err := uc.freeResetToken(ctx)
	if err != nil {
		return err
	}

	if err := uc.repo.SetResetToken(ctx, p.ID, token, uc.now().Add(uc.ttl)); err != nil {
		return err
	}

	if err := uc.notifier.SendResetCode(ctx, p.Email, token); err != nil {
		uc.log.Error().Err(err).Uint("physician_id", p.ID).Msg("reset code email not sent")
		return httperr.ErrBusiness("reset_email_failed")
	}

	return nil
}

func (uc *PasswordReset) freeResetToken(ctx context.Context) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		token, err := uc.codes.ResetToken()
		if err != nil {
			return "", err
		}

		taken, err := uc.repo.ExistsByResetToken(ctx, token)
		if err != nil {
			return "", err
		}
		if !taken {
			return token, nil
		}
	}
	return "", ErrCodesExhausted
}

// --------------------------------------------------
// 2️⃣ Verificação
// --------------------------------------------------

// Verify confere o código digitado e devolve o token para a próxima etapa.
func (uc *PasswordReset) Verify(ctx context.Context, email, code string) (string, error) {
	p, err := uc.repo.FindByEmail(ctx, email)
	if errors.Is(err, physician.ErrNotFound) {
		return "", httperr.ErrBusiness("email_not_found")
	}
	if err != nil {
		return "", err
	}

	code = physician.NormalizeResetToken(code)
	if p.ResetToken == nil || !physician.TokensEqual(*p.ResetToken, code) {
		return "", httperr.ErrBusiness("invalid_code")
	}

	if !p.ResetTokenValid(uc.now()) {
		return "", httperr.ErrBusiness("token_expired")
	}

	return *p.ResetToken, nil
}

// --------------------------------------------------
// 3️⃣ Nova senha
// --------------------------------------------------

// CheckToken valida o token antes de exibir o formulário de nova senha.
func (uc *PasswordReset) CheckToken(ctx context.Context, token string) error {
	_, err := uc.validToken(ctx, token)
	return err
}

type FinalizeInput struct {
	Token        string
	Password     string
	Confirmation string
}

func (uc *PasswordReset) Finalize(ctx context.Context, in FinalizeInput) error {
	if in.Password != in.Confirmation {
		return httperr.ErrBusiness("passwords_mismatch")
	}
	if len(in.Password) < physician.MinPasswordLen || physician.PasswordTooLong(in.Password) {
		return httperr.ErrBusiness("invalid_password")
	}

	p, err := uc.validToken(ctx, in.Token)
	if err != nil {
		return err
	}

	hash, err := physician.HashPassword(in.Password)
	if err != nil {
		return err
	}

	ok, err := uc.repo.ConsumeResetToken(ctx, p.ID, *p.ResetToken, hash)
	if err != nil {
		return err
	}
	if !ok {
		// outra requisição usou o token entre a leitura e o update
		return httperr.ErrBusiness("invalid_token")
	}

	// sessões abertas com a senha antiga deixam de valer
	if uc.sessions != nil {
		if err := uc.sessions.DeleteByPhysician(ctx, p.ID); err != nil {
			uc.log.Error().Err(err).Uint("physician_id", p.ID).Msg("revoke sessions after reset")
		}
	}

	uc.audit.Dispatch(audit.Event{
		PhysicianID: audit.Uint(p.ID),
		Action:      audit.ActionPasswordReset,
		Entity:      "physician",
		EntityID:    audit.Uint(p.ID),
	})

	return nil
}

func (uc *PasswordReset) validToken(ctx context.Context, token string) (*models.Physician, error) {
	token = physician.NormalizeResetToken(token)
	if token == "" {
		return nil, httperr.ErrBusiness("invalid_token")
	}

	p, err := uc.repo.FindByResetToken(ctx, token)
	if errors.Is(err, physician.ErrNotFound) {
		return nil, httperr.ErrBusiness("invalid_token")
	}
	if err != nil {
		return nil, err
	}

	if !p.ResetTokenValid(uc.now()) {
		return nil, httperr.ErrBusiness("token_expired")
	}
	return p, nil
}
