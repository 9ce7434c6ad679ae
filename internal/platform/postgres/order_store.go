package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/storefront/storefront-api/internal/domain"
	"github.com/storefront/storefront-api/internal/platform/logger"
	"github.com/storefront/storefront-api/internal/store"
)

// PostgresOrderStore implements the store.OrderStore interface
// using a PostgreSQL database as the storage backend.
type PostgresOrderStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresOrderStore creates a new PostgreSQL implementation of the OrderStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresOrderStore(db store.DBTX, log *slog.Logger) *PostgresOrderStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &PostgresOrderStore{
		db:     db,
		logger: log.With(slog.String("component", "order_store")),
	}
}

// Ensure PostgresOrderStore implements store.OrderStore interface
var _ store.OrderStore = (*PostgresOrderStore)(nil)

// Create implements store.OrderStore.Create
// Returns store.ErrInvalidEntity if the referenced user does not exist.
func (s *PostgresOrderStore) Create(ctx context.Context, order *domain.Order) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := order.Validate(); err != nil {
		log.Warn("order validation failed during create",
			slog.String("error", err.Error()),
			slog.String("order_id", order.ID.String()))
		return err
	}

	query := `
		INSERT INTO orders (id, user_id, total_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		order.ID,
		order.UserID,
		order.TotalAmount,
		order.Status,
		order.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			log.Warn("foreign key violation during order creation",
				slog.String("order_id", order.ID.String()),
				slog.String("user_id", order.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, order.UserID)
		}

		log.Error("failed to create order",
			slog.String("error", err.Error()),
			slog.String("order_id", order.ID.String()),
			slog.String("user_id", order.UserID.String()))
		return store.NewStoreError("order", "create", "insert failed", err)
	}

	log.Info("order created successfully",
		slog.String("order_id", order.ID.String()),
		slog.String("user_id", order.UserID.String()),
		slog.String("status", string(order.Status)))
	return nil
}

// GetByID implements store.OrderStore.GetByID
// Returns store.ErrOrderNotFound if the order does not exist.
func (s *PostgresOrderStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, total_amount, status, created_at
		FROM orders
		WHERE id = $1
	`

	var order domain.Order
	var status string

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.TotalAmount,
		&status,
		&order.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("order not found", slog.String("order_id", id.String()))
			return nil, store.ErrOrderNotFound
		}
		log.Error("failed to get order by ID",
			slog.String("error", err.Error()),
			slog.String("order_id", id.String()))
		return nil, store.NewStoreError("order", "get_by_id", "query failed", err)
	}

	order.Status = domain.OrderStatus(status)

	return &order, nil
}

// GetByUser implements store.OrderStore.GetByUser
func (s *PostgresOrderStore) GetByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Order, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, total_amount, status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list orders for user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, store.NewStoreError("order", "get_by_user", "query failed", err)
	}
	defer func() { _ = rows.Close() }()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		var order domain.Order
		var status string
		if err := rows.Scan(&order.ID, &order.UserID, &order.TotalAmount, &status, &order.CreatedAt); err != nil {
			log.Error("failed to scan order row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("order", "get_by_user", "scan failed", err)
		}
		order.Status = domain.OrderStatus(status)
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("order", "get_by_user", "row iteration failed", err)
	}

	return orders, nil
}

// UpdateStatus implements store.OrderStore.UpdateStatus
// Returns store.ErrOrderNotFound if the order does not exist.
func (s *PostgresOrderStore) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	switch status {
	case domain.OrderStatusPending, domain.OrderStatusPaid,
		domain.OrderStatusShipped, domain.OrderStatusCancelled:
	default:
		return domain.ErrInvalidOrderStatus
	}

	query := `
		UPDATE orders
		SET status = $1
		WHERE id = $2
	`

	result, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		log.Error("failed to update order status",
			slog.String("error", err.Error()),
			slog.String("order_id", id.String()),
			slog.String("status", string(status)))
		return store.NewStoreError("order", "update_status", "update failed", err)
	}

	if err := CheckRowsAffected(result, store.ErrOrderNotFound); err != nil {
		log.Debug("order not found for status update", slog.String("order_id", id.String()))
		return err
	}

	log.Info("order status updated successfully",
		slog.String("order_id", id.String()),
		slog.String("status", string(status)))
	return nil
}

// Count implements store.OrderStore.Count
func (s *PostgresOrderStore) Count(ctx context.Context) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		log.Error("failed to count orders", slog.String("error", err.Error()))
		return 0, store.NewStoreError("order", "count", "count failed", err)
	}

	return count, nil
}

// TotalRevenue implements store.OrderStore.TotalRevenue
// COALESCE keeps the empty-table case at zero instead of NULL.
func (s *PostgresOrderStore) TotalRevenue(ctx context.Context) (float64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var revenue float64
	query := `SELECT COALESCE(SUM(total_amount), 0) FROM orders`
	if err := s.db.QueryRowContext(ctx, query).Scan(&revenue); err != nil {
		log.Error("failed to sum order revenue", slog.String("error", err.Error()))
		return 0, store.NewStoreError("order", "total_revenue", "aggregate failed", err)
	}

	return revenue, nil
}

// WithTx implements store.OrderStore.WithTx
func (s *PostgresOrderStore) WithTx(tx *sql.Tx) store.OrderStore {
	return NewPostgresOrderStore(tx, s.logger)
}
