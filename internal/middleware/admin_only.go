// admin_only.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"miniattic-api/internal/response"
	"miniattic-api/internal/service"
)

// Va después de AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return requireRole(func(v service.Viewer) bool { return v.IsAdmin() })
}

// StaffOnly deja pasar admin y editor.
func StaffOnly() gin.HandlerFunc {
	return requireRole(func(v service.Viewer) bool { return v.IsStaff() })
}

func requireRole(allowed func(service.Viewer) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !allowed(ViewerFrom(c)) {
			response.Fail(c, http.StatusForbidden, response.MsgNoAccess)
			return
		}
		c.Next()
	}
}
