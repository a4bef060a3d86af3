package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/Pooji-A/travelitineraryproject/internal/database"
	"github.com/Pooji-A/travelitineraryproject/internal/store"
	"github.com/gin-gonic/gin"
)

// DeleteProfile removes the authenticated user together with their sessions
// and itineraries.
func DeleteProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	summary, err := store.DeleteUserData(database.DB, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("Error deleting profile for user_id=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile deleted successfully",
		"summary": summary,
	})
}

// MonitorDeleteUserByUsername is an operator escape hatch behind the
// monitoring key.
func MonitorDeleteUserByUsername(c *gin.Context) {
	if !checkMonitoringToken(c) {
		return
	}

	username := strings.TrimSpace(c.Query("username"))
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username query parameter is required"})
		return
	}

	var userID int
	if err := database.DB.QueryRow(`SELECT id FROM users WHERE username = $1`, username).Scan(&userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	summary, err := store.DeleteUserData(database.DB, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("Error deleting user by monitoring username=%s user_id=%d: %v", username, userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "User deleted successfully",
		"username": username,
		"user_id":  strconv.Itoa(userID),
		"summary":  summary,
	})
}
