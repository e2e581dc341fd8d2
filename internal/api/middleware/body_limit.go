package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KrishSharma007/hostel-management/pkg/response"
)

// BodyLimit rejects request bodies larger than maxBytes.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, err := range c.Errors {
			if err.Err != nil && err.Err.Error() == "http: request body too large" {
				response.Error(c, http.StatusRequestEntityTooLarge, "Payload Too Large", "Request body exceeds the allowed size")
				return
			}
		}
	}
}
