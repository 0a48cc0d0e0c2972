package store

import (
	"context"

	"github.com/brayannhc07/webapiautores/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// The caller must have set HashedPassword; the plaintext is never stored.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// SetAdmin grants or revokes the admin flag for the user with this email.
	// Setting the flag to its current value is not an error.
	// Returns ErrUserNotFound if the user does not exist.
	SetAdmin(ctx context.Context, email string, isAdmin bool) error

	// WithTx returns a new UserStore that uses the provided transaction.
	WithTx(tx *sqlx.Tx) UserStore
}
