package patient

import (
	"context"

	domain "github.com/BruksfildServices01/consultorio/internal/domain/patient"
	"github.com/BruksfildServices01/consultorio/internal/models"
)

type ListPatients struct {
	repo domain.Repository
}

func NewListPatients(repo domain.Repository) *ListPatients {
	return &ListPatients{repo: repo}
}

// Execute lista os pacientes do médico, mais recentes primeiro.
func (uc *ListPatients) Execute(ctx context.Context, physicianID uint) ([]models.Patient, error) {
	return uc.repo.ListByPhysician(ctx, physicianID)
}

// Count alimenta o painel inicial.
func (uc *ListPatients) Count(ctx context.Context, physicianID uint) (int64, error) {
	return uc.repo.CountByPhysician(ctx, physicianID)
}
