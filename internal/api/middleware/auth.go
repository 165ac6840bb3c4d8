package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// APIKeyMiddleware authenticates requests by comparing the X-API-Key header
// against the configured bcrypt hash. An empty hash disables authentication,
// which is only sensible in development.
func APIKeyMiddleware(keyHash string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if keyHash == "" {
			c.Next()
			return
		}

		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing API key"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(apiKey)); err != nil {
			logger.Warn("Rejected request with invalid API key", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Next()
	}
}
