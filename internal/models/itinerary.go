package models

import (
	"time"
)

// Itinerary is a single trip plan owned by one user. NumDays is computed
// once at creation time from the date range and stored alongside the dates.
type Itinerary struct {
	ID          int       `json:"id" db:"id"`
	UserID      int       `json:"user_id" db:"user_id"`
	Destination string    `json:"destination" db:"destination"`
	StartDate   time.Time `json:"start_date" db:"start_date"`
	EndDate     time.Time `json:"end_date" db:"end_date"`
	NumDays     int       `json:"num_days" db:"num_days"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Suggestion is a static destination recommendation shown to every user.
type Suggestion struct {
	Destination string `json:"destination"`
	Description string `json:"description"`
}
