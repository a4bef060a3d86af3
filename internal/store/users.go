package store

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/Pooji-A/travelitineraryproject/internal/models"
	"github.com/Pooji-A/travelitineraryproject/internal/utils"
	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

// Comparing against a real bcrypt hash keeps the unknown-user path roughly as
// expensive as the wrong-password path, so login failures stay indistinguishable.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// RegisterUser creates a new account with a bcrypt-hashed password.
// Username and email must each be unique.
func RegisterUser(db *sql.DB, username, email, password string) (models.User, error) {
	var user models.User

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return user, ErrInvalidInput
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return user, err
	}

	query := `INSERT INTO users (username, email, password) VALUES ($1, $2, $3) RETURNING id, created_at`
	err = db.QueryRow(query, username, email, hashedPassword).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return user, ErrDuplicateIdentity
		}
		return user, err
	}

	user.Username = username
	user.Email = email
	return user, nil
}

// AuthenticateUser verifies a username/password pair and returns the matching
// user. Unknown username and wrong password produce the same error.
func AuthenticateUser(db *sql.DB, username, password string) (models.User, error) {
	var user models.User
	var hashedPassword string

	query := `SELECT id, username, email, password FROM users WHERE username = $1`
	err := db.QueryRow(query, username).Scan(&user.ID, &user.Username, &user.Email, &hashedPassword)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.CheckPasswordHash(password, dummyPasswordHash)
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if !utils.CheckPasswordHash(password, hashedPassword) {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// DeleteUserSummary reports what a cascading profile deletion removed.
type DeleteUserSummary struct {
	UserID             int   `json:"user_id"`
	DeletedItineraries int64 `json:"deleted_itineraries"`
	DeletedSessions    int64 `json:"deleted_sessions"`
}

// DeleteUserData removes a user together with their sessions and itineraries
// in one transaction.
func DeleteUserData(db *sql.DB, userID int) (DeleteUserSummary, error) {
	summary := DeleteUserSummary{UserID: userID}

	tx, err := db.Begin()
	if err != nil {
		return summary, err
	}
	defer tx.Rollback()

	var existingUserID int
	if err := tx.QueryRow(`SELECT id FROM users WHERE id = $1`, userID).Scan(&existingUserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return summary, ErrUserNotFound
		}
		return summary, err
	}

	result, err := tx.Exec(`DELETE FROM sessions WHERE user_id = $1`, userID)
	if err != nil {
		return summary, err
	}
	if summary.DeletedSessions, err = result.RowsAffected(); err != nil {
		return summary, err
	}

	result, err = tx.Exec(`DELETE FROM itineraries WHERE user_id = $1`, userID)
	if err != nil {
		return summary, err
	}
	if summary.DeletedItineraries, err = result.RowsAffected(); err != nil {
		return summary, err
	}

	result, err = tx.Exec(`DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return summary, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return summary, err
	}
	if rowsAffected == 0 {
		return summary, ErrUserNotFound
	}

	if err := tx.Commit(); err != nil {
		return summary, err
	}

	return summary, nil
}
