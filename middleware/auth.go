package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"hranalyzer/services"
	"hranalyzer/utils"
)

// RequireAuth validates the Authorization bearer token and stores the
// authenticated username in the request context.
func RequireAuth(jwtService *services.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			utils.UnauthorizedError(c, "Authentication required")
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.UnauthorizedError(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}
