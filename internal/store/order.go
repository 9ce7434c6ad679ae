package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/storefront/storefront-api/internal/domain"
)

// OrderStore defines the interface for order data persistence.
type OrderStore interface {
	// Create saves a new order to the store.
	// Returns ErrInvalidEntity if the referenced user does not exist
	// (foreign key violation), and validation errors from the domain
	// Order if data is invalid.
	Create(ctx context.Context, order *domain.Order) error

	// GetByID retrieves an order by its unique ID.
	// Returns ErrOrderNotFound if the order does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)

	// GetByUser retrieves all orders placed by the given user,
	// ordered by creation time.
	// Returns an empty slice if the user has no orders.
	GetByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Order, error)

	// UpdateStatus updates the status of an existing order.
	// Returns ErrOrderNotFound if the order does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error

	// Count returns the total number of orders in the store.
	Count(ctx context.Context) (int64, error)

	// TotalRevenue returns the sum of total_amount across all orders,
	// or zero when the store holds no orders.
	TotalRevenue(ctx context.Context) (float64, error)

	// WithTx returns a new OrderStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) OrderStore
}
