package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Pooji-A/travelitineraryproject/internal/session"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer session token and injects the user id
// into the request context. Requests without a valid session are rejected
// with 401 so clients can redirect to login.
func AuthMiddleware(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header is required",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header must be in the format 'Bearer {token}'",
			})
			c.Abort()
			return
		}

		userID, err := sessions.Resolve(tokenParts[1])
		if err != nil {
			if !errors.Is(err, session.ErrUnauthenticated) {
				log.Printf("Error resolving session: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error resolving session"})
				c.Abort()
				return
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired session",
			})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
