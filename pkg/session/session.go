package session

import "time"

// Session is the server-side login record, keyed by the id delivered in the
// session cookie. It is bookkeeping alongside the bearer token: the token is
// what authorizes requests, the session is created at login and destroyed at
// logout.
type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

type Repository interface {
	Create(userID, sessionID string) (string, error)
	Invalidate(sessionID string) error
}
