package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// currentUserID reads the authenticated user id that AuthMiddleware placed in
// the context. When it is missing or malformed the request is already
// answered and false is returned.
func currentUserID(c *gin.Context) (int, bool) {
	userIDInterface, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}

	userID, ok := userIDInterface.(int)
	if !ok || userID <= 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID"})
		return 0, false
	}

	return userID, true
}
