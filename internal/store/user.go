package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/storefront/storefront-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// Returns ErrEmailExists or ErrUsernameExists if a unique constraint
	// is violated, and validation errors from the domain User if data is
	// invalid. The write executes atomically in its own scoped session.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetAll retrieves all users ordered by creation time.
	// Returns an empty slice if the store holds no users.
	GetAll(ctx context.Context) ([]*domain.User, error)

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of users in the store.
	Count(ctx context.Context) (int64, error)

	// WithTx returns a new UserStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) UserStore
}
