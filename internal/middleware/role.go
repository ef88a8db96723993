package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karshdev/LeadBlock-BE/internal/pkg/response"
)

// RequireRole ensures that the authenticated user has the specified role.
// Must run after Auth.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole)
		if !exists {
			response.Error(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		if role.(string) != requiredRole {
			response.Error(c, http.StatusForbidden, "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly middleware requires admin role.
func AdminOnly() gin.HandlerFunc {
	return RequireRole("admin")
}
