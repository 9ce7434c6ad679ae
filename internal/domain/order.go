package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

// Valid order statuses.
const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order represents a purchase placed by a user.
type Order struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"user_id"`
	TotalAmount float64     `json:"total_amount"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// NewOrder creates a new Order for the given user with the given total.
// New orders always start in the pending status.
// Returns an error if validation fails.
func NewOrder(userID uuid.UUID, totalAmount float64) (*Order, error) {
	order := &Order{
		ID:          uuid.New(),
		UserID:      userID,
		TotalAmount: totalAmount,
		Status:      OrderStatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate checks if the Order has valid data.
func (o *Order) Validate() error {
	if o.ID == uuid.Nil {
		return ErrEmptyID
	}

	if o.UserID == uuid.Nil {
		return ErrEmptyUserID
	}

	if o.TotalAmount <= 0 {
		return ErrInvalidAmount
	}

	switch o.Status {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCancelled:
		return nil
	default:
		return ErrInvalidOrderStatus
	}
}
