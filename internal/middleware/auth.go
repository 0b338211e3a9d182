package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"sipm-be-svc/internal/models"
	"sipm-be-svc/internal/service"
	"sipm-be-svc/pkg/utils"
)

// ContextUserKey is the gin context key holding the session user
const ContextUserKey = "session_user"

// RequireSession extracts the session user from the bearer token and puts
// it on the context. It only establishes identity; the role is a label
// and is not used to gate any operation.
func RequireSession(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.UnauthorizedResponse(c, "Missing session token")
			c.Abort()
			return
		}

		user, err := authService.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.UnauthorizedResponse(c, "Invalid session token")
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// SessionUser returns the session user attached by RequireSession, if any
func SessionUser(c *gin.Context) (*models.User, bool) {
	value, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
