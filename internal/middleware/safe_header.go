package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SafeHeader adds security-related headers to each response.
// Public GET responses may be cached briefly, everything else is no-store.
func SafeHeader() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")
		c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		if c.Request.Method == http.MethodGet && c.GetHeader("Authorization") == "" {
			c.Header("Cache-Control", "public, max-age=60")
		} else {
			c.Header("Cache-Control", "no-store")
		}
		if gin.Mode() == gin.ReleaseMode {
			c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		}

		c.Next()
	}
}
