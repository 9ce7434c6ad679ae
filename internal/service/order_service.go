package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/storefront/storefront-api/internal/domain"
	"github.com/storefront/storefront-api/internal/store"
)

// OrderService provides order-related operations.
type OrderService interface {
	// CreateOrder creates a new order for the given user.
	// Returns a *ValidationError if the referenced user does not exist;
	// in that case nothing is persisted.
	CreateOrder(ctx context.Context, userID uuid.UUID, totalAmount float64) (*domain.Order, error)

	// GetOrder retrieves an order by its ID.
	// Returns (nil, nil) if the order does not exist.
	GetOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)

	// GetUserOrders retrieves all orders placed by the given user.
	GetUserOrders(ctx context.Context, userID uuid.UUID) ([]*domain.Order, error)
}

// OrderServiceImpl implements the OrderService interface.
type OrderServiceImpl struct {
	orderStore store.OrderStore
	userStore  store.UserStore
	txRunner   store.TxRunner
	logger     *slog.Logger
}

// NewOrderService creates a new OrderService.
// The user store is a sibling dependency used for cross-entity validation.
func NewOrderService(
	orderStore store.OrderStore,
	userStore store.UserStore,
	txRunner store.TxRunner,
	logger *slog.Logger,
) OrderService {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderServiceImpl{
		orderStore: orderStore,
		userStore:  userStore,
		txRunner:   txRunner,
		logger:     logger.With("component", "order_service"),
	}
}

// CreateOrder validates that the referenced user exists, then persists the
// order in its own scoped session. The validation runs before any write,
// so a failure leaves no persistence side effect.
func (s *OrderServiceImpl) CreateOrder(
	ctx context.Context,
	userID uuid.UUID,
	totalAmount float64,
) (*domain.Order, error) {
	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("order rejected: user does not exist", "user_id", userID)
			return nil, NewUserNotFoundValidation(userID)
		}
		s.logger.Error("failed to verify user for order",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	order, err := domain.NewOrder(userID, totalAmount)
	if err != nil {
		s.logger.Warn("order payload failed domain validation",
			"error", err,
			"user_id", userID)
		return nil, NewValidationError(err.Error(), err)
	}

	err = s.txRunner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.orderStore.WithTx(tx).Create(ctx, order)
	})
	if err != nil {
		s.logger.Error("failed to create order",
			"error", err,
			"order_id", order.ID,
			"user_id", userID)
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info("order created",
		"order_id", order.ID,
		"user_id", userID,
		"total_amount", totalAmount)
	return order, nil
}

// GetOrder retrieves an order by ID, returning (nil, nil) when absent.
func (s *OrderServiceImpl) GetOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.orderStore.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			s.logger.Debug("order not found", "order_id", orderID)
			return nil, nil
		}
		s.logger.Error("failed to retrieve order",
			"error", err,
			"order_id", orderID)
		return nil, fmt.Errorf("failed to retrieve order: %w", err)
	}

	return order, nil
}

// GetUserOrders retrieves all orders placed by the given user.
func (s *OrderServiceImpl) GetUserOrders(ctx context.Context, userID uuid.UUID) ([]*domain.Order, error) {
	orders, err := s.orderStore.GetByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list orders for user",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}
