package models

import "time"

type Session struct {
	ID          string    `gorm:"primaryKey;size:64"`
	PhysicianID uint      `gorm:"index;not null"`
	ExpiresAt   time.Time `gorm:"index;not null"`
	CreatedAt   time.Time

	Physician Physician `gorm:"constraint:OnDelete:CASCADE;"`
}
