package middleware

import (
	"github.com/gin-gonic/gin"
)

// ContextUserIDKey is the gin context key storing the acting user's id.
const ContextUserIDKey = "currentUserID"

// CurrentUser stores userID on every request. The id is resolved once at startup.
func CurrentUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// UserID returns the acting user's id, or "" when none is set.
func UserID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(ContextUserIDKey)
}
