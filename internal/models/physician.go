package models

import "time"

// Physician é o cadastro do médico e também o principal de autenticação.
type Physician struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	LoginCode    string `gorm:"size:8;uniqueIndex;not null" json:"-"`

	ResetToken          *string    `gorm:"size:6;index" json:"-"`
	ResetTokenExpiresAt *time.Time `json:"-"`

	PhotoFile string `gorm:"size:255" json:"photo_file"`

	// Preenchido pelo repositório a partir de physician_specialties.
	Specialties []Specialty `gorm:"-" json:"specialties"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ResetTokenValid indica se o token de redefinição ainda vale em now.
func (p *Physician) ResetTokenValid(now time.Time) bool {
	return p.ResetToken != nil &&
		p.ResetTokenExpiresAt != nil &&
		p.ResetTokenExpiresAt.After(now)
}
