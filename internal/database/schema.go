package database

import (
	"fmt"
	"log"
)

// CreateTables creates all required tables in the database
func CreateTables() {
	createUsersTable()
	createItinerariesTable()
	createSessionsTable()
}

// createUsersTable creates the users table
func createUsersTable() {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(80) UNIQUE NOT NULL,
		email VARCHAR(120) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := DB.Exec(query)
	if err != nil {
		log.Fatal("Failed to create users table:", err)
	}

	fmt.Println("Users table created successfully")
}

func createItinerariesTable() {
	query := `
	CREATE TABLE IF NOT EXISTS itineraries (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		destination VARCHAR(100) NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		num_days INTEGER NOT NULL,
		description TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		CHECK (end_date >= start_date)
	);
	`

	_, err := DB.Exec(query)
	if err != nil {
		log.Fatal("Failed to create itineraries table:", err)
	}

	ensureItinerariesSchema()
	fmt.Println("Itineraries table created successfully")
}

func createSessionsTable() {
	query := `
	CREATE TABLE IF NOT EXISTS sessions (
		id UUID PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		expires_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := DB.Exec(query)
	if err != nil {
		log.Fatal("Failed to create sessions table:", err)
	}

	ensureSessionsSchema()
	fmt.Println("Sessions table created successfully")
}

func ensureItinerariesSchema() {
	if _, err := DB.Exec(`CREATE INDEX IF NOT EXISTS itineraries_user_id_idx ON itineraries(user_id, id)`); err != nil {
		log.Fatal("Failed to ensure itineraries user/id index:", err)
	}
}

func ensureSessionsSchema() {
	if _, err := DB.Exec(`CREATE INDEX IF NOT EXISTS sessions_expires_at_idx ON sessions(expires_at)`); err != nil {
		log.Fatal("Failed to ensure sessions expiry index:", err)
	}

	if _, err := DB.Exec(`CREATE INDEX IF NOT EXISTS sessions_user_id_idx ON sessions(user_id)`); err != nil {
		log.Fatal("Failed to ensure sessions user index:", err)
	}
}
