package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/consultorio/internal/httperr"
)

const msgInternal = "Ocorreu um erro inesperado. Tente novamente."

// redirect usa 303 para o navegador sempre seguir com GET.
func redirect(c *gin.Context, path string, params url.Values) {
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	c.Redirect(http.StatusSeeOther, path)
}

func flag(key, value string) url.Values {
	return url.Values{key: {value}}
}

// businessCode devolve o código do erro de negócio, ou "" se não for um.
func businessCode(err error) string {
	return httperr.Code(err)
}

func paramID(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
