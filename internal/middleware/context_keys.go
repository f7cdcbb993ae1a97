package middleware

import (
	"slices"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey       = contextKey("userID")
	capabilitiesKey = contextKey("capabilities")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		if userID, ok := c.Request.Context().Value(userIDKey).(string); ok {
			return userID, true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	return userID, ok
}

// HasCapability reports whether the authenticated user was granted capability.
func HasCapability(c *gin.Context, capability string) bool {
	caps, ok := c.Request.Context().Value(capabilitiesKey).([]string)
	if !ok {
		return false
	}
	return slices.Contains(caps, capability)
}
