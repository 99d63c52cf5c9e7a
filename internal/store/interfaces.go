package store

import (
	"context"

	"github.com/JahangirOsman/hdp-webapp/models"
)

// UserRepository is the persistence contract of the credential store: a
// single "users" table supporting insert-of-new-user and lookup-by-email.
type UserRepository interface {
	// CreateUser inserts a new user record and returns it with
	// server-assigned fields populated. Returns ErrEmailAlreadyExists when
	// the email is already registered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves the user registered under email.
	// Returns ErrNoUserWasFound when no such user exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}
