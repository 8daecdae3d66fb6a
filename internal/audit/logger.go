package audit

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/consultorio/internal/models"
)

// Ações registradas na trilha de auditoria.
const (
	ActionPhysicianRegistered = "physician_registered"
	ActionLogin               = "login"
	ActionLogout              = "logout"
	ActionPasswordReset       = "password_reset"
	ActionPatientCreated      = "patient_created"
	ActionPatientUpdated      = "patient_updated"
	ActionPatientDeleted      = "patient_deleted"
	ActionPhotoUpdated        = "photo_updated"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		PhysicianID: ev.PhysicianID,
		Action:      ev.Action,
		Entity:      ev.Entity,
		EntityID:    ev.EntityID,
		Metadata:    metaJSON,
	}

	return l.db.WithContext(ctx).Create(&row).Error
}

type Filter struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

// List devolve os eventos do médico, mais recentes primeiro, e o total
// sem paginação.
func (l *Logger) List(ctx context.Context, physicianID uint, f Filter) ([]models.AuditLog, int64, error) {
	q := l.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("physician_id = ?", physicianID)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
