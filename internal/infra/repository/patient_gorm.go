package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/consultorio/internal/domain/patient"
	"github.com/BruksfildServices01/consultorio/internal/models"
)

type PatientGormRepository struct {
	db *gorm.DB
}

func NewPatientGormRepository(db *gorm.DB) *PatientGormRepository {
	return &PatientGormRepository{db: db}
}

func (r *PatientGormRepository) ListByPhysician(
	ctx context.Context,
	physicianID uint,
) ([]models.Patient, error) {

	var out []models.Patient
	if err := r.db.WithContext(ctx).
		Where("physician_id = ?", physicianID).
		Order("created_at DESC, id DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PatientGormRepository) CountByPhysician(
	ctx context.Context,
	physicianID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Patient{}).
		Where("physician_id = ?", physicianID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PatientGormRepository) Create(ctx context.Context, p *models.Patient) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *PatientGormRepository) FindForPhysician(
	ctx context.Context,
	id uint,
	physicianID uint,
) (*models.Patient, error) {

	var p models.Patient
	if err := r.db.WithContext(ctx).
		Where("id = ? AND physician_id = ?", id, physicianID).
		First(&p).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PatientGormRepository) UpdateForPhysician(ctx context.Context, p *models.Patient) error {
	res := r.db.WithContext(ctx).
		Model(&models.Patient{}).
		Where("id = ? AND physician_id = ?", p.ID, p.PhysicianID).
		Updates(map[string]any{
			"name":             p.Name,
			"age":              p.Age,
			"cpf":              p.CPF,
			"allergies":        p.Allergies,
			"surgical_history": p.SurgicalHistory,
			"notes":            p.Notes,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PatientGormRepository) DeleteForPhysician(
	ctx context.Context,
	id uint,
	physicianID uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND physician_id = ?", id, physicianID).
		Delete(&models.Patient{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*PatientGormRepository)(nil)
