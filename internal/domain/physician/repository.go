package physician

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/consultorio/internal/models"
)

var ErrNotFound = errors.New("physician not found")

type Repository interface {
	// -------- Lookup --------
	FindByID(ctx context.Context, id uint) (*models.Physician, error)
	FindByEmail(ctx context.Context, email string) (*models.Physician, error)
	FindByLoginCode(ctx context.Context, code string) (*models.Physician, error)
	FindByResetToken(ctx context.Context, token string) (*models.Physician, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByLoginCode(ctx context.Context, code string) (bool, error)
	ExistsByResetToken(ctx context.Context, token string) (bool, error)

	// -------- Write --------
	Create(ctx context.Context, p *models.Physician, specialtyIDs []uint) error
	UpdatePhoto(ctx context.Context, id uint, photoFile string) error
	SetResetToken(ctx context.Context, id uint, token string, expiresAt time.Time) error

	// ConsumeResetToken troca a senha e limpa o token apenas se ele ainda
	// for o token atual do médico. Retorna false se já foi consumido.
	ConsumeResetToken(ctx context.Context, id uint, token string, passwordHash string) (bool, error)

	// -------- Specialties --------
	ListSpecialties(ctx context.Context) ([]models.Specialty, error)
	FindSpecialtiesByIDs(ctx context.Context, ids []uint) ([]models.Specialty, error)
}
