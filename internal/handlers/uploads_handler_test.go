package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/consultorio/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveUpload(h *UploadsHandler, name string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/uploads/x", nil)
	c.Params = gin.Params{{Key: "name", Value: name}}
	h.Serve(c)
	c.Writer.WriteHeaderNow()
	return w
}

func TestUploadsHandler_Serve(t *testing.T) {
	photos := testutil.NewPhotos()
	photos.Files["medico-1.png"] = []byte("png-bytes")
	photos.Files["medico-2.html"] = []byte("<script>alert(1)</script>")
	h := NewUploadsHandler(photos, zerolog.Nop())

	t.Run("existing photo", func(t *testing.T) {
		w := serveUpload(h, "medico-1.png")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, "png-bytes", w.Body.String())
	})

	t.Run("missing photo", func(t *testing.T) {
		w := serveUpload(h, "medico-9.png")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-image extension is never served as html", func(t *testing.T) {
		w := serveUpload(h, "medico-2.html")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))
	})

	t.Run("path traversal does not reach the store", func(t *testing.T) {
		photos.Opened = nil

		for _, name := range []string{"../segredo.png", "a/b.png", "..", "."} {
			w := serveUpload(h, name)
			assert.Equal(t, http.StatusNotFound, w.Code, name)
		}
		assert.Empty(t, photos.Opened)
	})
}
