package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/consultorio/internal/middleware"
	ucProfile "github.com/BruksfildServices01/consultorio/internal/usecase/profile"
)

// folga para os cabeçalhos do multipart além do arquivo
const multipartOverhead = 1 << 20

type ProfileHandler struct {
	upload    *ucProfile.UploadPhoto
	dashboard *DashboardHandler
	maxBytes  int64
	log       zerolog.Logger
}

func NewProfileHandler(
	upload *ucProfile.UploadPhoto,
	dashboard *DashboardHandler,
	maxBytes int64,
	log zerolog.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		upload:    upload,
		dashboard: dashboard,
		maxBytes:  maxBytes,
		log:       log,
	}
}

// UploadPhoto recebe o campo multipart "foto". Qualquer falha volta ao
// painel com erroFoto e o cadastro inalterado.
func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	doc := middleware.CurrentPhysician(c)

	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)
	}

	in := ucProfile.PhotoInput{Content: strings.NewReader("")}

	header, err := c.FormFile("foto")
	switch {
	case err == nil:
		file, err := header.Open()
		if err != nil {
			h.log.Error().Err(err).Uint("physician_id", doc.ID).Msg("open upload")
			h.dashboard.renderHome(c, doc, photoMessages["photo_save_failed"])
			return
		}
		defer file.Close()

		in = ucProfile.PhotoInput{Filename: header.Filename, Size: header.Size, Content: file}

	case isTooLarge(err):
		h.dashboard.renderHome(c, doc, photoMessages["invalid_image"])
		return
	}

	if _, err := h.upload.Execute(c.Request.Context(), doc.ID, in); err != nil {
		msg, ok := photoMessages[businessCode(err)]
		if !ok {
			h.log.Error().Err(err).Uint("physician_id", doc.ID).Msg("upload photo")
			msg = photoMessages["photo_save_failed"]
		}
		h.dashboard.renderHome(c, doc, msg)
		return
	}

	redirect(c, "/home", nil)
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr) || errors.Is(err, multipart.ErrMessageTooLarge)
}
