package models

import "time"

// Paciente pertence sempre a um único médico.
type Patient struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PhysicianID uint      `gorm:"not null;index" json:"physician_id"`
	Physician   Physician `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	Name            string `gorm:"size:150;not null" json:"name"`
	Age             *int   `json:"age"`
	CPF             string `gorm:"size:14" json:"cpf"`
	Allergies       string `gorm:"type:text" json:"allergies"`
	SurgicalHistory string `gorm:"type:text" json:"surgical_history"`
	Notes           string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
