package patient

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/consultorio/internal/models"
)

var ErrNotFound = errors.New("patient not found")

// Repository só expõe acesso a pacientes pelo médico dono.
type Repository interface {
	ListByPhysician(ctx context.Context, physicianID uint) ([]models.Patient, error)
	CountByPhysician(ctx context.Context, physicianID uint) (int64, error)

	Create(ctx context.Context, p *models.Patient) error

	FindForPhysician(ctx context.Context, id uint, physicianID uint) (*models.Patient, error)
	UpdateForPhysician(ctx context.Context, p *models.Patient) error
	DeleteForPhysician(ctx context.Context, id uint, physicianID uint) error
}
