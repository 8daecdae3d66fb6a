package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/consultorio/internal/audit"
	"github.com/BruksfildServices01/consultorio/internal/httperr"
	"github.com/BruksfildServices01/consultorio/internal/httpresp"
	"github.com/BruksfildServices01/consultorio/internal/middleware"
	"github.com/BruksfildServices01/consultorio/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
}

func NewAuditLogsHandler(logs *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	doc := middleware.CurrentPhysician(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}

	// --------------------------------------------------
	// Período (datas no fuso do consultório)
	// --------------------------------------------------

	if s := c.Query("from"); s != "" {
		if from, err := time.ParseInLocation("2006-01-02", s, timezone.Location()); err == nil {
			f.From = &from
		}
	}

	if s := c.Query("to"); s != "" {
		if to, err := time.ParseInLocation("2006-01-02", s, timezone.Location()); err == nil {
			end := to.AddDate(0, 0, 1)
			f.To = &end
		}
	}

	logs, total, err := h.logs.List(c.Request.Context(), doc.ID, f)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	httpresp.Page(c, page, limit, total, logs)
}
