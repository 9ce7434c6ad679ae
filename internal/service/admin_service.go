package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/storefront/storefront-api/internal/store"
)

// AdminStats aggregates platform-wide totals for the admin dashboard.
type AdminStats struct {
	TotalUsers   int64   `json:"total_users"`
	TotalOrders  int64   `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
}

// AdminService provides administrative reporting operations.
type AdminService interface {
	// GetStats returns platform-wide totals: users, orders, and revenue.
	GetStats(ctx context.Context) (*AdminStats, error)
}

// AdminServiceImpl implements the AdminService interface.
type AdminServiceImpl struct {
	userStore  store.UserStore
	orderStore store.OrderStore
	logger     *slog.Logger
}

// NewAdminService creates a new AdminService.
func NewAdminService(userStore store.UserStore, orderStore store.OrderStore, logger *slog.Logger) AdminService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminServiceImpl{
		userStore:  userStore,
		orderStore: orderStore,
		logger:     logger.With("component", "admin_service"),
	}
}

// GetStats implements AdminService.GetStats.
// The three aggregates run as independent reads; a dashboard snapshot does
// not need them to be transactionally consistent with each other.
func (s *AdminServiceImpl) GetStats(ctx context.Context) (*AdminStats, error) {
	users, err := s.userStore.Count(ctx)
	if err != nil {
		s.logger.Error("failed to count users", "error", err)
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	orders, err := s.orderStore.Count(ctx)
	if err != nil {
		s.logger.Error("failed to count orders", "error", err)
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	revenue, err := s.orderStore.TotalRevenue(ctx)
	if err != nil {
		s.logger.Error("failed to sum revenue", "error", err)
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	return &AdminStats{
		TotalUsers:   users,
		TotalOrders:  orders,
		TotalRevenue: revenue,
	}, nil
}
