package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS: en desarrollo (allowAll) se acepta cualquier origen; si no, sólo los
// que contienen keyword. Sin Origin (navegación directa) no aplica.
func CORS(allowAll bool, keyword string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowAll || (keyword != "" && strings.Contains(origin, keyword))
		},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
