package patient

import (
	"context"

	"github.com/BruksfildServices01/consultorio/internal/audit"
	domain "github.com/BruksfildServices01/consultorio/internal/domain/patient"
	"github.com/BruksfildServices01/consultorio/internal/models"
)

type CreatePatient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreatePatient(repo domain.Repository, audit *audit.Dispatcher) *CreatePatient {
	return &CreatePatient{repo: repo, audit: audit}
}

// Execute cria o paciente sempre com o médico da sessão como dono.
func (uc *CreatePatient) Execute(
	ctx context.Context,
	physicianID uint,
	in domain.Fields,
) (*models.Patient, error) {

	p := &models.Patient{PhysicianID: physicianID}
	if err := domain.Apply(p, in); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		PhysicianID: audit.Uint(physicianID),
		Action:      audit.ActionPatientCreated,
		Entity:      "patient",
		EntityID:    audit.Uint(p.ID),
	})

	return p, nil
}
