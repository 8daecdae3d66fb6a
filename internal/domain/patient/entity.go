package patient

import (
	"strconv"
	"strings"

	"github.com/BruksfildServices01/consultorio/internal/httperr"
	"github.com/BruksfildServices01/consultorio/internal/models"
)

// Fields são os campos do formulário de paciente, ainda como texto.
type Fields struct {
	Name            string
	Age             string
	CPF             string
	Allergies       string
	SurgicalHistory string
	Notes           string
}

// Apply valida os campos e copia para o paciente. Nome é obrigatório,
// idade é opcional e precisa ser inteiro não negativo.
func Apply(p *models.Patient, f Fields) error {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return httperr.ErrBusiness("name_required")
	}

	var age *int
	if s := strings.TrimSpace(f.Age); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 || n > 150 {
			return httperr.ErrBusiness("invalid_age")
		}
		age = &n
	}

	p.Name = name
	p.Age = age
	p.CPF = strings.TrimSpace(f.CPF)
	p.Allergies = strings.TrimSpace(f.Allergies)
	p.SurgicalHistory = strings.TrimSpace(f.SurgicalHistory)
	p.Notes = strings.TrimSpace(f.Notes)
	return nil
}
