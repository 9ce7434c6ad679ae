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

// PostgresNotificationStore implements the store.NotificationStore interface
// using a PostgreSQL database as the storage backend.
type PostgresNotificationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresNotificationStore creates a new PostgreSQL implementation of the
// NotificationStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresNotificationStore(db store.DBTX, log *slog.Logger) *PostgresNotificationStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &PostgresNotificationStore{
		db:     db,
		logger: log.With(slog.String("component", "notification_store")),
	}
}

// Ensure PostgresNotificationStore implements store.NotificationStore interface
var _ store.NotificationStore = (*PostgresNotificationStore)(nil)

// Create implements store.NotificationStore.Create
// Returns store.ErrInvalidEntity if the referenced user does not exist.
func (s *PostgresNotificationStore) Create(ctx context.Context, notification *domain.Notification) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := notification.Validate(); err != nil {
		log.Warn("notification validation failed during create",
			slog.String("error", err.Error()),
			slog.String("notification_id", notification.ID.String()))
		return err
	}

	query := `
		INSERT INTO notifications (id, user_id, title, message, notification_type, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		notification.ID,
		notification.UserID,
		notification.Title,
		notification.Message,
		notification.Type,
		notification.Status,
		notification.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			log.Warn("foreign key violation during notification creation",
				slog.String("notification_id", notification.ID.String()),
				slog.String("user_id", notification.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, notification.UserID)
		}

		log.Error("failed to create notification",
			slog.String("error", err.Error()),
			slog.String("notification_id", notification.ID.String()),
			slog.String("user_id", notification.UserID.String()))
		return store.NewStoreError("notification", "create", "insert failed", err)
	}

	log.Info("notification created successfully",
		slog.String("notification_id", notification.ID.String()),
		slog.String("user_id", notification.UserID.String()),
		slog.String("type", string(notification.Type)))
	return nil
}

// GetByID implements store.NotificationStore.GetByID
// Returns store.ErrNotificationNotFound if the notification does not exist.
func (s *PostgresNotificationStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, title, message, notification_type, status, created_at
		FROM notifications
		WHERE id = $1
	`

	notification, err := scanNotification(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("notification not found", slog.String("notification_id", id.String()))
			return nil, store.ErrNotificationNotFound
		}
		log.Error("failed to get notification by ID",
			slog.String("error", err.Error()),
			slog.String("notification_id", id.String()))
		return nil, store.NewStoreError("notification", "get_by_id", "query failed", err)
	}

	return notification, nil
}

// GetByUser implements store.NotificationStore.GetByUser
// Notifications are returned newest first.
func (s *PostgresNotificationStore) GetByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Notification, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, title, message, notification_type, status, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list notifications for user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, store.NewStoreError("notification", "get_by_user", "query failed", err)
	}
	defer func() { _ = rows.Close() }()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		notification, err := scanNotification(rows)
		if err != nil {
			log.Error("failed to scan notification row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("notification", "get_by_user", "scan failed", err)
		}
		notifications = append(notifications, notification)
	}

	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("notification", "get_by_user", "row iteration failed", err)
	}

	return notifications, nil
}

// UpdateStatus implements store.NotificationStore.UpdateStatus
// Returns store.ErrNotificationNotFound if the notification does not exist.
func (s *PostgresNotificationStore) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.NotificationStatus,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	switch status {
	case domain.NotificationStatusPending, domain.NotificationStatusSent,
		domain.NotificationStatusFailed, domain.NotificationStatusRead:
	default:
		return domain.ErrInvalidNotificationStatus
	}

	query := `
		UPDATE notifications
		SET status = $1
		WHERE id = $2
	`

	result, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		log.Error("failed to update notification status",
			slog.String("error", err.Error()),
			slog.String("notification_id", id.String()),
			slog.String("status", string(status)))
		return store.NewStoreError("notification", "update_status", "update failed", err)
	}

	if err := CheckRowsAffected(result, store.ErrNotificationNotFound); err != nil {
		log.Debug("notification not found for status update",
			slog.String("notification_id", id.String()))
		return err
	}

	log.Info("notification status updated successfully",
		slog.String("notification_id", id.String()),
		slog.String("status", string(status)))
	return nil
}

// Delete implements store.NotificationStore.Delete
// Returns store.ErrNotificationNotFound if the notification does not exist.
func (s *PostgresNotificationStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM notifications WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete notification",
			slog.String("error", err.Error()),
			slog.String("notification_id", id.String()))
		return store.NewStoreError("notification", "delete", "delete failed", err)
	}

	if err := CheckRowsAffected(result, store.ErrNotificationNotFound); err != nil {
		log.Debug("notification not found for delete",
			slog.String("notification_id", id.String()))
		return err
	}

	log.Info("notification deleted successfully", slog.String("notification_id", id.String()))
	return nil
}

// WithTx implements store.NotificationStore.WithTx
func (s *PostgresNotificationStore) WithTx(tx *sql.Tx) store.NotificationStore {
	return NewPostgresNotificationStore(tx, s.logger)
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNotification(row rowScanner) (*domain.Notification, error) {
	var notification domain.Notification
	var notificationType, status string

	err := row.Scan(
		&notification.ID,
		&notification.UserID,
		&notification.Title,
		&notification.Message,
		&notificationType,
		&status,
		&notification.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	notification.Type = domain.NotificationType(notificationType)
	notification.Status = domain.NotificationStatus(status)
	return &notification, nil
}
