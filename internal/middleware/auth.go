package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mbellard/habit-tracker-api/internal/config"
	"github.com/mbellard/habit-tracker-api/internal/constants"
	apierrors "github.com/mbellard/habit-tracker-api/internal/errors"
	"github.com/mbellard/habit-tracker-api/internal/utils"
)

// RequireAuth validates the Bearer token and stores the user ID in the
// request context.
func RequireAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			apierrors.Unauthorized(c, "Authorization header missing")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			apierrors.Unauthorized(c, "Invalid authorization format. Use: Bearer <token>")
			c.Abort()
			return
		}

		userID, err := utils.ParseToken(parts[1], cfg.JWTSecret, cfg.JWTIssuer)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return "", false
	}

	userID, ok := value.(string)
	if !ok || userID == "" {
		return "", false
	}

	return userID, true
}
