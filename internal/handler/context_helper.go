package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/trackme-api/internal/middleware"
	appErrors "github.com/noah-isme/trackme-api/pkg/errors"
	"github.com/noah-isme/trackme-api/pkg/response"
)

// userIDFromContext returns the acting user's id, writing an error response when absent.
func userIDFromContext(c *gin.Context) (string, bool) {
	userID := middleware.UserID(c)
	if userID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrInternal, "no current user"))
		return "", false
	}
	return userID, true
}
