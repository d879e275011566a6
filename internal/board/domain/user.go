package domain

import "time"

// User is an account holder. PasswordHash is the argon2id-encoded password
// and must never be serialized to clients; the json tag enforces that at the
// encoding boundary.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
