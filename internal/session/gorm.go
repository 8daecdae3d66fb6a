package session

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/consultorio/internal/models"
)

var _ Store = (*GormStore)(nil)

type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, now: time.Now}
}

func (s *GormStore) Create(ctx context.Context, physicianID uint, ttl time.Duration) (*Session, error) {
	sess := newSession(physicianID, ttl, s.now())

	row := models.Session{
		ID:          sess.ID,
		PhysicianID: sess.PhysicianID,
		ExpiresAt:   sess.ExpiresAt,
	}
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *GormStore) Get(ctx context.Context, id string) (*Session, error) {
	var row models.Session
	if err := s.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, s.now()).
		First(&row).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &Session{
		ID:          row.ID,
		PhysicianID: row.PhysicianID,
		ExpiresAt:   row.ExpiresAt,
	}, nil
}

func (s *GormStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Session{}).Error
}

func (s *GormStore) DeleteByPhysician(ctx context.Context, physicianID uint) error {
	return s.db.WithContext(ctx).
		Where("physician_id = ?", physicianID).
		Delete(&models.Session{}).Error
}

// PurgeExpired apaga sessões vencidas.
func (s *GormStore) PurgeExpired(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("expires_at <= ?", s.now()).
		Delete(&models.Session{})
	return res.RowsAffected, res.Error
}
