package dto

import (
	"github.com/BruksfildServices01/consultorio/internal/models"
)

// PhotoBaseURL é o prefixo público das fotos de perfil.
const PhotoBaseURL = "/uploads/"

type SpecialtyDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// PhysicianDTO é o perfil exibido no painel e nas configurações.
type PhysicianDTO struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	LoginCode   string         `json:"login_code"`
	PhotoURL    string         `json:"photo_url"`
	Specialties []SpecialtyDTO `json:"specialties"`
}

func NewPhysicianDTO(p *models.Physician) PhysicianDTO {
	out := PhysicianDTO{
		ID:          p.ID,
		Name:        p.Name,
		Email:       p.Email,
		LoginCode:   p.LoginCode,
		Specialties: NewSpecialtyDTOs(p.Specialties),
	}
	if p.PhotoFile != "" {
		out.PhotoURL = PhotoBaseURL + p.PhotoFile
	}
	return out
}

func NewSpecialtyDTOs(in []models.Specialty) []SpecialtyDTO {
	out := make([]SpecialtyDTO, 0, len(in))
	for _, s := range in {
		out = append(out, SpecialtyDTO{ID: s.ID, Name: s.Name})
	}
	return out
}
