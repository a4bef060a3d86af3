package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Pooji-A/travelitineraryproject/internal/database"
	"github.com/Pooji-A/travelitineraryproject/internal/store"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

func parseISODate(raw string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(raw))
}

// CreateItinerary creates a new trip plan for the authenticated user
func CreateItinerary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Destination string `json:"destination"`
		StartDate   string `json:"start_date"`
		EndDate     string `json:"end_date"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	startDate, err := parseISODate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be a valid YYYY-MM-DD date"})
		return
	}

	endDate, err := parseISODate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be a valid YYYY-MM-DD date"})
		return
	}

	itinerary, err := store.CreateItinerary(database.DB, userID, req.Destination, startDate, endDate, req.Description)
	if err != nil {
		if errors.Is(err, store.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Destination and description are required"})
			return
		}
		if errors.Is(err, store.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "End date cannot be before start date"})
			return
		}
		log.Printf("Error creating itinerary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating itinerary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Itinerary created!",
		"itinerary_id": itinerary.ID,
		"itinerary": gin.H{
			"id":          itinerary.ID,
			"destination": itinerary.Destination,
			"start_date":  itinerary.StartDate.Format(dateLayout),
			"end_date":    itinerary.EndDate.Format(dateLayout),
			"num_days":    itinerary.NumDays,
			"description": itinerary.Description,
		},
	})
}

// GetUserItineraries returns the authenticated user's itineraries in
// insertion order
func GetUserItineraries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	itineraries, err := store.ListItinerariesByOwner(database.DB, userID)
	if err != nil {
		log.Printf("Error retrieving itineraries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving itineraries"})
		return
	}

	out := make([]gin.H, 0, len(itineraries))
	for _, itinerary := range itineraries {
		out = append(out, gin.H{
			"id":          itinerary.ID,
			"destination": itinerary.Destination,
			"start_date":  itinerary.StartDate.Format(dateLayout),
			"end_date":    itinerary.EndDate.Format(dateLayout),
			"num_days":    itinerary.NumDays,
			"description": itinerary.Description,
			"created_at":  itinerary.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"itineraries": out,
		"count":       len(out),
	})
}

// DeleteItinerary deletes one of the authenticated user's itineraries by id
func DeleteItinerary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	itineraryID, err := strconv.Atoi(c.Param("itinerary_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid itinerary ID"})
		return
	}

	if err := store.DeleteItinerary(database.DB, itineraryID, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Itinerary not found"})
			return
		}
		if errors.Is(err, store.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You don't have permission to delete this itinerary"})
			return
		}
		log.Printf("Error deleting itinerary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting itinerary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Itinerary deleted successfully",
	})
}
