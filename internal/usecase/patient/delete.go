package patient

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/consultorio/internal/audit"
	domain "github.com/BruksfildServices01/consultorio/internal/domain/patient"
	"github.com/BruksfildServices01/consultorio/internal/httperr"
)

type DeletePatient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeletePatient(repo domain.Repository, audit *audit.Dispatcher) *DeletePatient {
	return &DeletePatient{repo: repo, audit: audit}
}

// Execute só remove pacientes do próprio médico. Paciente de outro médico
// ou inexistente devolve patient_not_found e nada é apagado.
func (uc *DeletePatient) Execute(ctx context.Context, physicianID, patientID uint) error {
	err := uc.repo.DeleteForPhysician(ctx, patientID, physicianID)
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrBusiness("patient_not_found")
	}
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		PhysicianID: audit.Uint(physicianID),
		Action:      audit.ActionPatientDeleted,
		Entity:      "patient",
		EntityID:    audit.Uint(patientID),
	})

	return nil
}
