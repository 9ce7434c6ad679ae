package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/storefront/storefront-api/internal/domain"
)

// NotificationStore defines the interface for notification data persistence.
type NotificationStore interface {
	// Create saves a new notification to the store.
	// Returns ErrInvalidEntity if the referenced user does not exist
	// (foreign key violation), and validation errors from the domain
	// Notification if data is invalid.
	Create(ctx context.Context, notification *domain.Notification) error

	// GetByID retrieves a notification by its unique ID.
	// Returns ErrNotificationNotFound if the notification does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)

	// GetByUser retrieves all notifications addressed to the given user,
	// newest first.
	// Returns an empty slice if the user has no notifications.
	GetByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Notification, error)

	// UpdateStatus updates the delivery status of an existing notification.
	// Returns ErrNotificationNotFound if the notification does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.NotificationStatus) error

	// Delete removes a notification from the store by its ID.
	// Returns ErrNotificationNotFound if the notification does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new NotificationStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) NotificationStore
}
