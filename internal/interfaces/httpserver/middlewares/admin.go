package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodatlas-server/internal/interfaces/httpserver/responses"
)

// RequireAdmin ensures the authenticated principal carries the admin role.
// It must run after an authenticating middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.ID == "" {
			responses.Message(c, http.StatusUnauthorized, "Authentication required. Please log in.")
			return
		}

		if !principal.IsAdmin() {
			responses.Message(c, http.StatusForbidden, "Access denied. Admin privileges required.")
			return
		}

		c.Next()
	}
}
