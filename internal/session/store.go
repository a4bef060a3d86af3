package session

import (
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/Pooji-A/travelitineraryproject/internal/utils"
	"github.com/google/uuid"
)

// ErrUnauthenticated covers every failure mode of resolving a token: absent,
// expired, tampered, or revoked sessions all look the same to the caller.
var ErrUnauthenticated = errors.New("no valid session")

const defaultSessionTTL = 24 * time.Hour

// Store keeps sessions in the database so they can be revoked server-side.
// The token handed to clients is a signed JWT whose ID claim is the session
// row's uuid; both the signature and the row must check out on resolve.
type Store struct {
	db  *sql.DB
	ttl time.Duration
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, ttl: defaultSessionTTL}
}

// Establish creates a session for the user and returns the signed token.
func (s *Store) Establish(userID int) (string, error) {
	sessionID := uuid.NewString()
	expiresAt := time.Now().Add(s.ttl)

	query := `INSERT INTO sessions (id, user_id, expires_at) VALUES ($1, $2, $3)`
	if _, err := s.db.Exec(query, sessionID, userID, expiresAt); err != nil {
		return "", err
	}

	token, err := utils.GenerateToken(userID, sessionID, expiresAt)
	if err != nil {
		// The orphaned row is harmless; the cleanup loop reaps it.
		return "", err
	}

	return token, nil
}

// Resolve maps a token back to the user it authenticates.
func (s *Store) Resolve(token string) (int, error) {
	claims, err := utils.ValidateToken(token)
	if err != nil {
		return 0, ErrUnauthenticated
	}

	var userID int
	var expiresAt time.Time
	query := `SELECT user_id, expires_at FROM sessions WHERE id = $1`
	err = s.db.QueryRow(query, claims.ID).Scan(&userID, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrUnauthenticated
		}
		return 0, err
	}

	if time.Now().After(expiresAt) {
		if _, err := s.db.Exec(`DELETE FROM sessions WHERE id = $1`, claims.ID); err != nil {
			log.Printf("Error deleting expired session %s: %v", claims.ID, err)
		}
		return 0, ErrUnauthenticated
	}

	if userID != claims.UserID {
		return 0, ErrUnauthenticated
	}

	return userID, nil
}

// Terminate revokes the session behind the token. Terminating a session that
// is already gone is not an error.
func (s *Store) Terminate(token string) error {
	claims, err := utils.ValidateToken(token)
	if err != nil {
		return nil
	}

	_, err = s.db.Exec(`DELETE FROM sessions WHERE id = $1`, claims.ID)
	return err
}

// CleanupExpired deletes sessions past their expiry and reports how many.
func (s *Store) CleanupExpired() (int64, error) {
	result, err := s.db.Exec(`DELETE FROM sessions WHERE expires_at < $1`, time.Now())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
