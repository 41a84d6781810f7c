package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seifeddinerezgui/gethrought/internal/utilities"
)

// SizeLimit function is a middleware that caps request bodies at maxBodyBytes.
// A declared Content-Length above the cap is rejected with 413 up front; otherwise
// reads past the cap fail with *http.MaxBytesError, which handlers map to 413.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBodyBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, utilities.ErrorResponse{
				Error: "Request body too large",
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

		c.Next()
	}
}
