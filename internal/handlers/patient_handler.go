package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/consultorio/internal/domain/patient"
	"github.com/BruksfildServices01/consultorio/internal/dto"
	"github.com/BruksfildServices01/consultorio/internal/middleware"
	ucPatient "github.com/BruksfildServices01/consultorio/internal/usecase/patient"
)

type PatientHandler struct {
	list   *ucPatient.ListPatients
	create *ucPatient.CreatePatient
	update *ucPatient.UpdatePatient
	remove *ucPatient.DeletePatient
	log    zerolog.Logger
}

func NewPatientHandler(
	list *ucPatient.ListPatients,
	create *ucPatient.CreatePatient,
	update *ucPatient.UpdatePatient,
	remove *ucPatient.DeletePatient,
	log zerolog.Logger,
) *PatientHandler {
	return &PatientHandler{
		list:   list,
		create: create,
		update: update,
		remove: remove,
		log:    log,
	}
}

type patientForm struct {
	Name            string `form:"nome"`
	Age             string `form:"idade"`
	CPF             string `form:"cpf"`
	Allergies       string `form:"alergias"`
	SurgicalHistory string `form:"historicoCirurgias"`
	Notes           string `form:"observacoes"`
}

func (f patientForm) fields() domain.Fields {
	return domain.Fields{
		Name:            f.Name,
		Age:             f.Age,
		CPF:             f.CPF,
		Allergies:       f.Allergies,
		SurgicalHistory: f.SurgicalHistory,
		Notes:           f.Notes,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *PatientHandler) List(c *gin.Context) {
	doc := middleware.CurrentPhysician(c)

	patients, err := h.list.Execute(c.Request.Context(), doc.ID)
	if err != nil {
		h.log.Error().Err(err).Uint("physician_id", doc.ID).Msg("list patients")
		c.HTML(http.StatusInternalServerError, "pacientes", gin.H{
			"medico": dto.NewPhysicianDTO(doc),
			"erro":   msgInternal,
		})
		return
	}

	var aviso string
	switch {
	case c.Query("success") == "true":
		aviso = "Paciente cadastrado com sucesso."
	case c.Query("update") == "true":
		aviso = "Paciente atualizado com sucesso."
	case c.Query("delete") == "true":
		aviso = "Paciente excluído com sucesso."
	}

	c.HTML(http.StatusOK, "pacientes", gin.H{
		"medico":    dto.NewPhysicianDTO(doc),
		"pacientes": dto.NewPatientDTOs(patients),
		"aviso":     aviso,
		"erro":      patientFlags[c.Query("error")],
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *PatientHandler) Create(c *gin.Context) {
	doc := middleware.CurrentPhysician(c)

	var form patientForm
	_ = c.ShouldBind(&form)

	if _, err := h.create.Execute(c.Request.Context(), doc.ID, form.fields()); err != nil {
		h.fail(c, doc.ID, err)
		return
	}

	redirect(c, "/pacientes", flag("success", "true"))
}

// ======================================================
// UPDATE
// ======================================================

func (h *PatientHandler) Update(c *gin.Context) {
	doc := middleware.CurrentPhysician(c)

	id, ok := paramID(c, "id")
	if !ok {
		redirect(c, "/pacientes", flag("error", "paciente-nao-encontrado"))
		return
	}

	var form patientForm
	_ = c.ShouldBind(&form)

	if _, err := h.update.Execute(c.Request.Context(), doc.ID, id, form.fields()); err != nil {
		h.fail(c, doc.ID, err)
		return
	}

	redirect(c, "/pacientes", flag("update", "true"))
}

// ======================================================
// DELETE
// ======================================================

// Delete nunca apaga paciente de outro médico; nesse caso avisa
// paciente-nao-encontrado em vez de fingir sucesso.
func (h *PatientHandler) Delete(c *gin.Context) {
	doc := middleware.CurrentPhysician(c)

	id, ok := paramID(c, "id")
	if !ok {
		redirect(c, "/pacientes", flag("error", "paciente-nao-encontrado"))
		return
	}

	if err := h.remove.Execute(c.Request.Context(), doc.ID, id); err != nil {
		h.fail(c, doc.ID, err)
		return
	}

	redirect(c, "/pacientes", flag("delete", "true"))
}

func (h *PatientHandler) fail(c *gin.Context, physicianID uint, err error) {
	switch businessCode(err) {
	case "name_required":
		redirect(c, "/pacientes", flag("error", "nome-obrigatorio"))
	case "invalid_age":
		redirect(c, "/pacientes", flag("error", "idade-invalida"))
	case "patient_not_found":
		redirect(c, "/pacientes", flag("error", "paciente-nao-encontrado"))
	default:
		h.log.Error().Err(err).Uint("physician_id", physicianID).Msg("patient write")
		redirect(c, "/pacientes", flag("error", "interno"))
	}
}
