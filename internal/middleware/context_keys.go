package middleware

import (
	"github.com/gin-gonic/gin"
)

// contextKey is a private type for request context keys.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
	roleKey      = contextKey("role")
	authTokenKey = contextKey("authToken")
)

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return stringFromRequest(c, userIDKey)
}

// GetRoleFromContext returns the role claim of the authenticated caller.
func GetRoleFromContext(c *gin.Context) (string, bool) {
	return stringFromRequest(c, roleKey)
}

// GetAuthTokenFromContext returns the raw bearer token of the caller. It is forwarded
// to the shop backend, which authorizes entity creation on its own.
func GetAuthTokenFromContext(c *gin.Context) string {
	token, _ := stringFromRequest(c, authTokenKey)
	return token
}

func stringFromRequest(c *gin.Context, key contextKey) (string, bool) {
	if c.Request == nil {
		return "", false
	}
	v, ok := c.Request.Context().Value(key).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
