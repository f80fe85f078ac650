package context

import (
	"net/http"

	"github.com/clubops/checkin-api/internal/shared/logger"

	sharedError "github.com/clubops/checkin-api/internal/shared/error"
	"github.com/gin-gonic/gin"
)

// Context keys for the authenticated admin
const (
	AdminUsernameKey = "admin_username"
)

func GetAdminUsername(c *gin.Context) (string, bool) {
	value, exists := c.Get(AdminUsernameKey)
	if !exists {
		return "", false
	}

	username, ok := value.(string)
	if !ok || username == "" {
		return "", false
	}

	return username, true
}

// RequireAdmin retrieves the authenticated admin from the Gin context.
// If missing, sends an authentication error response and aborts.
func RequireAdmin(c *gin.Context) (string, bool) {
	username, ok := GetAdminUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    "AUTH-000",
			Message: "Authentication required.",
		})
		c.Abort()
		logger.FromContext(c.Request.Context()).Error("[API] admin identity missing from context")
		return "", false
	}
	return username, true
}
