package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/consultorio/internal/audit"
	"github.com/BruksfildServices01/consultorio/internal/domain/physician"
	"github.com/BruksfildServices01/consultorio/internal/httperr"
	"github.com/BruksfildServices01/consultorio/internal/models"
	"github.com/BruksfildServices01/consultorio/internal/notification"
)

const (
	maxSpecialties = 2

	// tentativas de gerar um código livre antes de desistir
	maxCodeAttempts = 20
	// tentativas de INSERT quando outro cadastro leva o mesmo código
	maxInsertAttempts = 3
)

var ErrCodesExhausted = errors.New("could not generate a unique code")

// DomainChecker confere se o domínio do e-mail recebe mensagens.
type DomainChecker interface {
	IsEmailDomainValid(ctx context.Context, email string) bool
}

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	SpecialtyIDs []uint
}

// ======================================================
// USE CASE
// ======================================================

type RegisterPhysician struct {
	repo     physician.Repository
	codes    physician.CodeSource
	notifier notification.Notifier
	domains  DomainChecker
	audit    *audit.Dispatcher
	log      zerolog.Logger
}

// NewRegisterPhysician aceita domains nil, o que desliga a checagem de MX.
func NewRegisterPhysician(
	repo physician.Repository,
	codes physician.CodeSource,
	notifier notification.Notifier,
	domains DomainChecker,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *RegisterPhysician {
	return &RegisterPhysician{
		repo:     repo,
		codes:    codes,
		notifier: notifier,
		domains:  domains,
		audit:    audit,
		log:      log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RegisterPhysician) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.Physician, error) {

	name := strings.TrimSpace(in.Name)
	email := physician.NormalizeEmail(in.Email)
	if name == "" || email == "" || len(in.Password) < physician.MinPasswordLen {
		return nil, httperr.ErrBusiness("registration_fields_required")
	}
	if physician.PasswordTooLong(in.Password) {
		return nil, httperr.ErrBusiness("password_too_long")
	}

	// --------------------------------------------------
	// 1️⃣ E-mail único (checado antes de tudo)
	// --------------------------------------------------
	exists, err := uc.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness("email_already_registered")
	}

	// --------------------------------------------------
	// 2️⃣ Especialidades: 1 ou 2, todas existentes
	// --------------------------------------------------
	ids := uniqueIDs(in.SpecialtyIDs)
	if len(ids) == 0 {
		return nil, httperr.ErrBusiness("specialty_required")
	}
	if len(ids) > maxSpecialties {
		return nil, httperr.ErrBusiness("too_many_specialties")
	}

	specialties, err := uc.repo.FindSpecialtiesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(specialties) != len(ids) {
		return nil, httperr.ErrBusiness("invalid_specialty")
	}

	// --------------------------------------------------
	// 3️⃣ Domínio do e-mail (opcional)
	// --------------------------------------------------
	if uc.domains != nil && !uc.domains.IsEmailDomainValid(ctx, email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	hash, err := physician.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Código de login + persistência
	// --------------------------------------------------
	p := &models.Physician{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	for attempt := 1; ; attempt++ {
		code, err := uc.freeLoginCode(ctx)
		if err != nil {
			return nil, err
		}
		p.ID = 0
		p.LoginCode = code

		err = uc.repo.Create(ctx, p, ids)
		if err == nil {
			break
		}

		switch {
		case httperr.UniqueViolationOn(err, "email"):
			return nil, httperr.ErrBusiness("email_already_registered")
		case httperr.UniqueViolationOn(err, "login_code") && attempt < maxInsertAttempts:
			continue
		default:
			return nil, err
		}
	}
	p.Specialties = specialties

	// --------------------------------------------------
	// 5️⃣ E-mail com o código (falha não desfaz o cadastro)
	// --------------------------------------------------
	if err := uc.notifier.SendLoginCode(ctx, p.Email, p.LoginCode); err != nil {
		uc.log.Warn().Err(err).Uint("physician_id", p.ID).Msg("login code email not sent")
	}

	uc.audit.Dispatch(audit.Event{
		PhysicianID: audit.Uint(p.ID),
		Action:      audit.ActionPhysicianRegistered,
		Entity:      "physician",
		EntityID:    audit.Uint(p.ID),
	})

	return p, nil
}

func (uc *RegisterPhysician) freeLoginCode(ctx context.Context) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code, err := uc.codes.LoginCode()
		if err != nil {
			return "", err
		}

		taken, err := uc.repo.ExistsByLoginCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrCodesExhausted
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
