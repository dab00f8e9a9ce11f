package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/vish-34/PulseIQ/internal/config"
)

// TriggerTokenAuthMiddleware - middleware для аутентификации по токену срабатывания
func TriggerTokenAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Trigger-Token")
		if token == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if token == "" {
			log.Warn("Trigger token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "trigger token required"})
			return
		}

		isValid := false
		for _, known := range cfg.TriggerTokens {
			if known == token {
				isValid = true
				break
			}
		}

		if !isValid {
			log.Warn("Invalid trigger token provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid trigger token"})
			return
		}

		c.Next()
	}
}
