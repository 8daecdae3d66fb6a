package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/consultorio/internal/domain/physician"
	"github.com/BruksfildServices01/consultorio/internal/dto"
	"github.com/BruksfildServices01/consultorio/internal/httperr"
	"github.com/BruksfildServices01/consultorio/internal/httpresp"
)

type SpecialtyHandler struct {
	physicians physician.Repository
}

func NewSpecialtyHandler(physicians physician.Repository) *SpecialtyHandler {
	return &SpecialtyHandler{physicians: physicians}
}

// List devolve todas as especialidades em ordem alfabética.
func (h *SpecialtyHandler) List(c *gin.Context) {
	specialties, err := h.physicians.ListSpecialties(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "specialties_list_failed", "Erro ao listar especialidades.")
		return
	}

	httpresp.OK(c, dto.NewSpecialtyDTOs(specialties))
}
