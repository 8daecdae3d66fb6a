package patient

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/consultorio/internal/audit"
	domain "github.com/BruksfildServices01/consultorio/internal/domain/patient"
	"github.com/BruksfildServices01/consultorio/internal/httperr"
	"github.com/BruksfildServices01/consultorio/internal/models"
)

type UpdatePatient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdatePatient(repo domain.Repository, audit *audit.Dispatcher) *UpdatePatient {
	return &UpdatePatient{repo: repo, audit: audit}
}

func (uc *UpdatePatient) Execute(
	ctx context.Context,
	physicianID uint,
	patientID uint,
	in domain.Fields,
) (*models.Patient, error) {

	p, err := uc.repo.FindForPhysician(ctx, patientID, physicianID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrBusiness("patient_not_found")
	}
	if err != nil {
		return nil, err
	}

	if err := domain.Apply(p, in); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateForPhysician(ctx, p); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("patient_not_found")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		PhysicianID: audit.Uint(physicianID),
		Action:      audit.ActionPatientUpdated,
		Entity:      "patient",
		EntityID:    audit.Uint(p.ID),
	})

	return p, nil
}
