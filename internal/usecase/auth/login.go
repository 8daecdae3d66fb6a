package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/consultorio/internal/audit"
	"github.com/BruksfildServices01/consultorio/internal/domain/physician"
	"github.com/BruksfildServices01/consultorio/internal/httperr"
	"github.com/BruksfildServices01/consultorio/internal/models"
)

type Login struct {
	repo  physician.Repository
	audit *audit.Dispatcher
}

func NewLogin(repo physician.Repository, audit *audit.Dispatcher) *Login {
	return &Login{repo: repo, audit: audit}
}

// Execute autentica pelo código de login de 8 dígitos e pela senha.
func (uc *Login) Execute(ctx context.Context, code, password string) (*models.Physician, error) {
	p, err := uc.repo.FindByLoginCode(ctx, strings.TrimSpace(code))
	if errors.Is(err, physician.ErrNotFound) {
		return nil, httperr.ErrBusiness("invalid_login_code")
	}
	if err != nil {
		return nil, err
	}

	if !physician.CheckPassword(p.PasswordHash, password) {
		return nil, httperr.ErrBusiness("invalid_password")
	}

	uc.audit.Dispatch(audit.Event{
		PhysicianID: audit.Uint(p.ID),
		Action:      audit.ActionLogin,
		Entity:      "physician",
		EntityID:    audit.Uint(p.ID),
	})

	return p, nil
}
