package utils

import (
	"strings"

	"github.com/gin-gonic/gin"

	"weiyue/internal/shared/constants"
)

// GetUserID returns the authenticated user ID, or "" when the request carries
// no valid token.
func GetUserID(c *gin.Context) string {
	v, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}

// ActorID prefers the ID given in the request body and falls back to the
// authenticated user.
func ActorID(c *gin.Context, fromBody string) string {
	if id := strings.TrimSpace(fromBody); id != "" {
		return id
	}
	return GetUserID(c)
}
