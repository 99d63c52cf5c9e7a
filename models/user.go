package models

import "time"

// User represents an account entity used for the registration and login
// flows. Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user, assigned by the
	// database on insert.
	ID int64 `json:"-"`

	// Username is the display name chosen at registration.
	// It is non-sensitive and is not required to be unique.
	Username string `json:"username"`

	// Email is the unique identifier used during authentication.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a one-way hash, never plaintext.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
