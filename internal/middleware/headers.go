package middleware

import "github.com/gin-gonic/gin"

// NoSniff impede o navegador de adivinhar o tipo do arquivo servido.
func NoSniff() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Next()
	}
}
