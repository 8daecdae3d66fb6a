package dto

import (
	"strconv"
	"time"

	"github.com/BruksfildServices01/consultorio/internal/models"
)

type PatientDTO struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Age             string    `json:"age"`
	CPF             string    `json:"cpf"`
	Allergies       string    `json:"allergies"`
	SurgicalHistory string    `json:"surgical_history"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewPatientDTOs(in []models.Patient) []PatientDTO {
	out := make([]PatientDTO, 0, len(in))
	for _, p := range in {
		d := PatientDTO{
			ID:              p.ID,
			Name:            p.Name,
			CPF:             p.CPF,
			Allergies:       p.Allergies,
			SurgicalHistory: p.SurgicalHistory,
			Notes:           p.Notes,
			CreatedAt:       p.CreatedAt,
		}
		if p.Age != nil {
			d.Age = strconv.Itoa(*p.Age)
		}
		out = append(out, d)
	}
	return out
}
