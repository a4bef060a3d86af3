package store

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/Pooji-A/travelitineraryproject/internal/models"
)

// NumDays returns the inclusive day count for a date range. Dates are stored
// at midnight UTC, so the subtraction is an exact multiple of 24h.
func NumDays(startDate, endDate time.Time) int {
	return int(endDate.Sub(startDate).Hours()/24) + 1
}

// CreateItinerary inserts a new trip plan for the owner. The day count is
// derived from the date range here and never recomputed afterwards.
func CreateItinerary(db *sql.DB, ownerID int, destination string, startDate, endDate time.Time, description string) (models.Itinerary, error) {
	var itinerary models.Itinerary

	destination = strings.TrimSpace(destination)
	description = strings.TrimSpace(description)
	if destination == "" || description == "" {
		return itinerary, ErrInvalidInput
	}
	if endDate.Before(startDate) {
		return itinerary, ErrInvalidDateRange
	}

	numDays := NumDays(startDate, endDate)

	query := `
		INSERT INTO itineraries (user_id, destination, start_date, end_date, num_days, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := db.QueryRow(query, ownerID, destination, startDate, endDate, numDays, description).
		Scan(&itinerary.ID, &itinerary.CreatedAt)
	if err != nil {
		return models.Itinerary{}, err
	}

	itinerary.UserID = ownerID
	itinerary.Destination = destination
	itinerary.StartDate = startDate
	itinerary.EndDate = endDate
	itinerary.NumDays = numDays
	itinerary.Description = description
	return itinerary, nil
}

// ListItinerariesByOwner returns all itineraries owned by the user in
// insertion order.
func ListItinerariesByOwner(db *sql.DB, ownerID int) ([]models.Itinerary, error) {
	query := `
		SELECT id, user_id, destination, start_date, end_date, num_days, description, created_at
		FROM itineraries
		WHERE user_id = $1
		ORDER BY id ASC
	`

	rows, err := db.Query(query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	itineraries := make([]models.Itinerary, 0)
	for rows.Next() {
		var itinerary models.Itinerary
		err := rows.Scan(
			&itinerary.ID,
			&itinerary.UserID,
			&itinerary.Destination,
			&itinerary.StartDate,
			&itinerary.EndDate,
			&itinerary.NumDays,
			&itinerary.Description,
			&itinerary.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		itineraries = append(itineraries, itinerary)
	}

	return itineraries, rows.Err()
}

// DeleteItinerary removes an itinerary after verifying the requesting user
// owns it. A concurrent delete of the same id surfaces as ErrNotFound.
func DeleteItinerary(db *sql.DB, itineraryID, requestingUserID int) error {
	var ownerID int
	err := db.QueryRow(`SELECT user_id FROM itineraries WHERE id = $1`, itineraryID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if ownerID != requestingUserID {
		return ErrForbidden
	}

	result, err := db.Exec(`DELETE FROM itineraries WHERE id = $1 AND user_id = $2`, itineraryID, requestingUserID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
