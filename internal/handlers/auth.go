package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Pooji-A/travelitineraryproject/internal/database"
	"github.com/Pooji-A/travelitineraryproject/internal/session"
	"github.com/Pooji-A/travelitineraryproject/internal/store"
	"github.com/gin-gonic/gin"
)

var sessionStore *session.Store

// SetSessionStore registers the session store used by auth handlers and
// middleware wiring in main.
func SetSessionStore(s *session.Store) {
	sessionStore = s
}

func getSessionStore() *session.Store {
	if sessionStore == nil {
		sessionStore = session.NewStore(database.DB)
	}
	return sessionStore
}

// Register handles user registration
func Register(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := store.RegisterUser(database.DB, req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username, email, and password are required"})
			return
		}
		if errors.Is(err, store.ErrDuplicateIdentity) {
			c.JSON(http.StatusConflict, gin.H{"error": "User with this username or email already exists"})
			return
		}
		log.Printf("Error inserting user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User registered successfully",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// Login handles user login
func Login(c *gin.Context) {
	var credentials struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	user, err := store.AuthenticateUser(database.DB, credentials.Username, credentials.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		log.Printf("Error querying user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error logging in"})
		return
	}

	token, err := getSessionStore().Establish(user.ID)
	if err != nil {
		log.Printf("Error establishing session for user_id=%d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error establishing session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// Logout terminates the current session. Logging out twice is fine.
func Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
		return
	}

	if err := getSessionStore().Terminate(tokenParts[1]); err != nil {
		log.Printf("Error terminating session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error logging out"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
