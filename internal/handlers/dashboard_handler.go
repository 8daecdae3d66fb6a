package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/consultorio/internal/dto"
	"github.com/BruksfildServices01/consultorio/internal/middleware"
	"github.com/BruksfildServices01/consultorio/internal/models"
	ucPatient "github.com/BruksfildServices01/consultorio/internal/usecase/patient"
)

type DashboardHandler struct {
	patients *ucPatient.ListPatients
	log      zerolog.Logger
}

func NewDashboardHandler(patients *ucPatient.ListPatients, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{patients: patients, log: log}
}

func (h *DashboardHandler) Home(c *gin.Context) {
	h.renderHome(c, middleware.CurrentPhysician(c), "")
}

func (h *DashboardHandler) Settings(c *gin.Context) {
	c.HTML(http.StatusOK, "configuracoes", gin.H{
		"medico": dto.NewPhysicianDTO(middleware.CurrentPhysician(c)),
	})
}

// renderHome também serve de retorno do upload de foto com erroFoto.
func (h *DashboardHandler) renderHome(c *gin.Context, doc *models.Physician, erroFoto string) {
	total, err := h.patients.Count(c.Request.Context(), doc.ID)
	if err != nil {
		h.log.Error().Err(err).Uint("physician_id", doc.ID).Msg("count patients")
	}

	c.HTML(http.StatusOK, "home", gin.H{
		"medico":         dto.NewPhysicianDTO(doc),
		"totalPacientes": total,
		"erroFoto":       erroFoto,
	})
}
