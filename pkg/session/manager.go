package session

import (
	"database/sql"
	"time"
)

// Sessions age out on the same horizon as tokens, so neither channel outlives
// the other.
const sessionTTL = time.Hour * 4

type MySQLSessionRepo struct {
	DB *sql.DB
}

func NewMySQLSessionRepo(db *sql.DB) *MySQLSessionRepo {
	return &MySQLSessionRepo{DB: db}
}

func (r *MySQLSessionRepo) Create(userID string, sessionID string) (string, error) {
	now := time.Now().UTC()
	_, err := r.DB.Exec(`
		INSERT INTO sessions (id, user_id, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`, sessionID, userID, now, now.Add(sessionTTL))

	return sessionID, err
}

func (r *MySQLSessionRepo) Invalidate(sessionID string) error {
	_, err := r.DB.Exec(`
		DELETE FROM sessions WHERE id = ?
	`, sessionID)
	return err
}
