package blacklist

import "time"

// Entry holds the literal token string that was revoked. The collection's TTL
// index drops entries once CreatedAt is older than the token lifetime; nothing
// here ever deletes them.
type Entry struct {
	Token     string    `bson:"token"`
	CreatedAt time.Time `bson:"created_at"`
}

type Repository interface {
	Add(token string) error
	Contains(token string) (bool, error)
}
