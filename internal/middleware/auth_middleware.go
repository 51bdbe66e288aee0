// auth_middleware.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"miniattic-api/internal/response"
	"miniattic-api/internal/service"
)

const viewerKey = "viewer"

// TokenVerifier es lo único que el middleware necesita del AuthService.
type TokenVerifier interface {
	Verify(token string) (service.Viewer, error)
}

// Middleware que valida el token y guarda el Viewer en el contexto
func AuthMiddleware(verifier TokenVerifier, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		viewer, err := verifier.Verify(token)
		if err != nil {
			response.Error(c, logger, err)
			return
		}
		if viewer.Role == service.RoleNone {
			response.Error(c, logger, service.ErrNoAccess)
			return
		}

		c.Set(viewerKey, viewer)
		c.Next()
	}
}

// ViewerFrom lee la identidad que dejó AuthMiddleware.
func ViewerFrom(c *gin.Context) service.Viewer {
	v, _ := c.Get(viewerKey)
	viewer, _ := v.(service.Viewer)
	return viewer
}
