package models

import "time"

// Session is one administrator login, stored in redis under its id. Presence
// of the redis entry is what makes a request authenticated; expiry is handled
// by the key TTL.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
