package handlers

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/consultorio/internal/storage"
)

// UploadsHandler serve /uploads/:name a partir do armazenamento de fotos
// quando ele não é um diretório local (S3).
type UploadsHandler struct {
	store storage.PhotoStore
	log   zerolog.Logger
}

func NewUploadsHandler(store storage.PhotoStore, log zerolog.Logger) *UploadsHandler {
	return &UploadsHandler{store: store, log: log}
}

func (h *UploadsHandler) Serve(c *gin.Context) {
	name := c.Param("name")
	if name == "" || name == "." || name == ".." || name != filepath.Base(name) {
		c.Status(http.StatusNotFound)
		return
	}

	rc, err := h.store.Open(c.Request.Context(), name)
	if errors.Is(err, storage.ErrNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("file", name).Msg("open photo")
		c.Status(http.StatusBadGateway)
		return
	}
	defer rc.Close()

	c.Header("Cache-Control", "private, max-age=300")
	c.DataFromReader(http.StatusOK, -1, storage.ContentTypeByName(name), rc, nil)
}
