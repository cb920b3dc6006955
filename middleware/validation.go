package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hranalyzer/utils"
)

// MaxRequestSize limits the request body size
func MaxRequestSize(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}

// ValidateContentType ensures the request has expected content type
func ValidateContentType(expectedTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip validation for GET and DELETE requests
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodDelete {
			c.Next()
			return
		}

		contentType := c.GetHeader("Content-Type")
		for _, expectedType := range expectedTypes {
			if strings.Contains(contentType, expectedType) {
				c.Next()
				return
			}
		}

		utils.BadRequestError(c, "Invalid content type", nil)
		c.Abort()
	}
}
