package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS allows the embeddable widget to call the API from arbitrary
// personal sites in production only when the origin is whitelisted; any
// origin is allowed outside production.
func (m Middleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && m.originAllowed(origin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Header("Access-Control-Max-Age", "86400")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (m Middleware) originAllowed(origin string) bool {
	if len(m.corsOrigins) == 0 {
		return true
	}
	for _, allowed := range m.corsOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}
