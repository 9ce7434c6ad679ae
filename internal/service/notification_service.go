package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/storefront/storefront-api/internal/domain"
	"github.com/storefront/storefront-api/internal/messaging"
	"github.com/storefront/storefront-api/internal/store"
)

// CreateNotificationParams carries the payload for creating a notification.
type CreateNotificationParams struct {
	UserID  uuid.UUID
	Title   string
	Message string
	Type    domain.NotificationType

	// SkipSend suppresses the delivery attempt after the notification is
	// persisted. The default (false) matches the common case: persist,
	// then deliver.
	SkipSend bool
}

// NotificationService provides notification-related operations.
type NotificationService interface {
	// CreateNotification validates the referenced user, persists the
	// notification and, unless SkipSend is set, delivers it through the
	// configured messaging provider.
	//
	// Delivery is at-least-once relative to the stored row: the row is
	// committed before the provider runs, and a delivery failure marks
	// the notification failed rather than rolling the row back.
	// Returns a *ValidationError if the referenced user does not exist;
	// in that case nothing is persisted and nothing is sent.
	CreateNotification(ctx context.Context, params CreateNotificationParams) (*domain.Notification, error)

	// GetNotification retrieves a notification by its ID.
	// Returns (nil, nil) if the notification does not exist.
	GetNotification(ctx context.Context, notificationID uuid.UUID) (*domain.Notification, error)

	// GetUserNotifications retrieves all notifications for the given
	// user, newest first.
	GetUserNotifications(ctx context.Context, userID uuid.UUID) ([]*domain.Notification, error)

	// MarkAsRead marks a notification as read and returns the updated
	// notification. Returns (nil, nil) if the notification does not exist.
	MarkAsRead(ctx context.Context, notificationID uuid.UUID) (*domain.Notification, error)

	// SendNotificationMessage delivers an already-persisted notification
	// through the messaging provider, resolving the recipient from the
	// owning user. Returns a *ValidationError if that user no longer
	// exists.
	SendNotificationMessage(ctx context.Context, notification *domain.Notification) (*messaging.Receipt, error)
}

// NotificationServiceImpl implements the NotificationService interface.
type NotificationServiceImpl struct {
	notificationStore store.NotificationStore
	userStore         store.UserStore
	provider          messaging.Provider
	txRunner          store.TxRunner
	logger            *slog.Logger
}

// NewNotificationService creates a new NotificationService.
// The user store is a sibling dependency used for cross-entity validation
// and recipient resolution; the provider is whichever delivery strategy
// was selected at wiring time.
func NewNotificationService(
	notificationStore store.NotificationStore,
	userStore store.UserStore,
	provider messaging.Provider,
	txRunner store.TxRunner,
	logger *slog.Logger,
) NotificationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationServiceImpl{
		notificationStore: notificationStore,
		userStore:         userStore,
		provider:          provider,
		txRunner:          txRunner,
		logger:            logger.With("component", "notification_service"),
	}
}

// CreateNotification implements NotificationService.CreateNotification.
func (s *NotificationServiceImpl) CreateNotification(
	ctx context.Context,
	params CreateNotificationParams,
) (*domain.Notification, error) {
	// Cross-entity validation first: no side effects may happen for a
	// notification addressed to a non-existent user.
	if _, err := s.userStore.GetByID(ctx, params.UserID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("notification rejected: user does not exist",
				"user_id", params.UserID)
			return nil, NewUserNotFoundValidation(params.UserID)
		}
		s.logger.Error("failed to verify user for notification",
			"error", err,
			"user_id", params.UserID)
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	notification, err := domain.NewNotification(params.UserID, params.Title, params.Message, params.Type)
	if err != nil {
		s.logger.Warn("notification payload failed domain validation",
			"error", err,
			"user_id", params.UserID)
		return nil, NewValidationError(err.Error(), err)
	}

	err = s.txRunner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.notificationStore.WithTx(tx).Create(ctx, notification)
	})
	if err != nil {
		s.logger.Error("failed to create notification",
			"error", err,
			"notification_id", notification.ID,
			"user_id", params.UserID)
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	if params.SkipSend {
		return notification, nil
	}

	// The row is committed at this point. A delivery failure downgrades
	// the notification to failed instead of undoing the create.
	if _, err := s.SendNotificationMessage(ctx, notification); err != nil {
		s.logger.Warn("notification delivery failed after persist",
			"error", err,
			"notification_id", notification.ID)
		if updateErr := s.notificationStore.UpdateStatus(ctx, notification.ID, domain.NotificationStatusFailed); updateErr != nil {
			s.logger.Error("failed to mark notification as failed",
				"error", updateErr,
				"notification_id", notification.ID)
		}
		notification.Status = domain.NotificationStatusFailed
		return notification, nil
	}

	if err := s.notificationStore.UpdateStatus(ctx, notification.ID, domain.NotificationStatusSent); err != nil {
		s.logger.Error("failed to mark notification as sent",
			"error", err,
			"notification_id", notification.ID)
		return notification, nil
	}
	notification.Status = domain.NotificationStatusSent

	return notification, nil
}

// GetNotification retrieves a notification by ID, returning (nil, nil) when absent.
func (s *NotificationServiceImpl) GetNotification(
	ctx context.Context,
	notificationID uuid.UUID,
) (*domain.Notification, error) {
	notification, err := s.notificationStore.GetByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, store.ErrNotificationNotFound) {
			s.logger.Debug("notification not found", "notification_id", notificationID)
			return nil, nil
		}
		s.logger.Error("failed to retrieve notification",
			"error", err,
			"notification_id", notificationID)
		return nil, fmt.Errorf("failed to retrieve notification: %w", err)
	}

	return notification, nil
}

// GetUserNotifications retrieves all notifications for the given user.
func (s *NotificationServiceImpl) GetUserNotifications(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Notification, error) {
	notifications, err := s.notificationStore.GetByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list notifications for user",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return notifications, nil
}

// MarkAsRead marks a notification as read.
func (s *NotificationServiceImpl) MarkAsRead(
	ctx context.Context,
	notificationID uuid.UUID,
) (*domain.Notification, error) {
	err := s.txRunner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.notificationStore.WithTx(tx).UpdateStatus(ctx, notificationID, domain.NotificationStatusRead)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotificationNotFound) {
			s.logger.Debug("notification not found for mark as read",
				"notification_id", notificationID)
			return nil, nil
		}
		s.logger.Error("failed to mark notification as read",
			"error", err,
			"notification_id", notificationID)
		return nil, fmt.Errorf("failed to mark notification as read: %w", err)
	}

	return s.GetNotification(ctx, notificationID)
}

// SendNotificationMessage implements NotificationService.SendNotificationMessage.
func (s *NotificationServiceImpl) SendNotificationMessage(
	ctx context.Context,
	notification *domain.Notification,
) (*messaging.Receipt, error) {
	user, err := s.userStore.GetByID(ctx, notification.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, NewUserNotFoundValidation(notification.UserID)
		}
		return nil, fmt.Errorf("failed to resolve recipient: %w", err)
	}

	receipt, err := s.provider.Send(ctx, messaging.Message{
		Recipient: user.Email,
		Title:     notification.Title,
		Body:      notification.Message,
		Kind:      string(notification.Type),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to deliver notification: %w", err)
	}

	s.logger.Info("notification delivered",
		"notification_id", notification.ID,
		"provider", receipt.Provider,
		"message_id", receipt.MessageID)
	return receipt, nil
}
