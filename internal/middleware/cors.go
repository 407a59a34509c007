package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barbearia-cta/agenda-api/internal/config"
)

// CORSMiddleware aplica a allow-list de origens da configuração.
// Origem fora da lista é recusada na camada HTTP com texto puro,
// sem o envelope JSON da API.
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		if origin != "" {
			if !cfg.IsOriginAllowed(origin) {
				c.String(http.StatusForbidden,
					"A política de CORS não permite acesso desta Origem.")
				c.Abort()
				return
			}

			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Vary", "Origin")
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set(
				"Access-Control-Allow-Headers",
				"Content-Type, Authorization",
			)
			c.Writer.Header().Set(
				"Access-Control-Allow-Methods",
				"GET, POST, PUT, PATCH, DELETE, OPTIONS",
			)
		}

		// 🔑 PRE-FLIGHT
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent) // 204
			return
		}

		c.Next()
	}
}
