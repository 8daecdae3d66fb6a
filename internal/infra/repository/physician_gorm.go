package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/consultorio/internal/domain/physician"
	"github.com/BruksfildServices01/consultorio/internal/models"
)

type PhysicianGormRepository struct {
	db *gorm.DB
}

func NewPhysicianGormRepository(db *gorm.DB) *PhysicianGormRepository {
	return &PhysicianGormRepository{db: db}
}

// --------------------------------------------------
// Lookup
// --------------------------------------------------

func (r *PhysicianGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Physician, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *PhysicianGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.Physician, error) {
	return r.findOne(ctx, "email = ?", domain.NormalizeEmail(email))
}

func (r *PhysicianGormRepository) FindByLoginCode(
	ctx context.Context,
	code string,
) (*models.Physician, error) {
	return r.findOne(ctx, "login_code = ?", code)
}

// FindByResetToken também encontra tokens expirados; quem chama decide.
func (r *PhysicianGormRepository) FindByResetToken(
	ctx context.Context,
	token string,
) (*models.Physician, error) {
	return r.findOne(ctx, "reset_token = ?", token)
}

func (r *PhysicianGormRepository) findOne(
	ctx context.Context,
	query string,
	arg any,
) (*models.Physician, error) {

	var p models.Physician
	if err := r.db.WithContext(ctx).
		Where(query, arg).
		First(&p).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	specialties, err := r.listSpecialtiesOf(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Specialties = specialties

	return &p, nil
}

func (r *PhysicianGormRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", domain.NormalizeEmail(email))
}

func (r *PhysicianGormRepository) ExistsByLoginCode(ctx context.Context, code string) (bool, error) {
	return r.exists(ctx, "login_code = ?", code)
}

func (r *PhysicianGormRepository) ExistsByResetToken(ctx context.Context, token string) (bool, error) {
	return r.exists(ctx, "reset_token = ?", token)
}

func (r *PhysicianGormRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Physician{}).
		Where(query, arg).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *PhysicianGormRepository) Create(
	ctx context.Context,
	p *models.Physician,
	specialtyIDs []uint,
) error {

	p.Email = domain.NormalizeEmail(p.Email)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(p).Error; err != nil {
			return err
		}

		if len(specialtyIDs) == 0 {
			return nil
		}

		links := make([]models.PhysicianSpecialty, 0, len(specialtyIDs))
		for _, id := range specialtyIDs {
			links = append(links, models.PhysicianSpecialty{
				PhysicianID: p.ID,
				SpecialtyID: id,
			})
		}

		return tx.Omit(clause.Associations).Create(&links).Error
	})
}

func (r *PhysicianGormRepository) UpdatePhoto(
	ctx context.Context,
	id uint,
	photoFile string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Physician{}).
		Where("id = ?", id).
		Update("photo_file", photoFile)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PhysicianGormRepository) SetResetToken(
	ctx context.Context,
	id uint,
	token string,
	expiresAt time.Time,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Physician{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"reset_token":            token,
			"reset_token_expires_at": expiresAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PhysicianGormRepository) ConsumeResetToken(
	ctx context.Context,
	id uint,
	token string,
	passwordHash string,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Physician{}).
		Where("id = ? AND reset_token = ?", id, token).
		Updates(map[string]any{
			"password_hash":          passwordHash,
			"reset_token":            nil,
			"reset_token_expires_at": nil,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// --------------------------------------------------
// Specialties
// --------------------------------------------------

func (r *PhysicianGormRepository) ListSpecialties(ctx context.Context) ([]models.Specialty, error) {
	var out []models.Specialty
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PhysicianGormRepository) FindSpecialtiesByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Specialty, error) {

	var out []models.Specialty
	if len(ids) == 0 {
		return out, nil
	}

	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("name ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PhysicianGormRepository) listSpecialtiesOf(
	ctx context.Context,
	physicianID uint,
) ([]models.Specialty, error) {

	var out []models.Specialty
	if err := r.db.WithContext(ctx).
		Table("specialties").
		Select("specialties.id, specialties.name").
		Joins("JOIN physician_specialties ps ON ps.specialty_id = specialties.id").
		Where("ps.physician_id = ?", physicianID).
		Order("specialties.name ASC").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*PhysicianGormRepository)(nil)
