package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/storefront/storefront-api/internal/domain"
	"github.com/storefront/storefront-api/internal/messaging"
	"github.com/storefront/storefront-api/internal/store"
)

func TestNotificationService_CreateNotification(t *testing.T) {
	logger := slog.Default()
	userID := uuid.New()
	user := &domain.User{ID: userID, Username: "alice", Email: "alice@example.com"}
	params := CreateNotificationParams{
		UserID:  userID,
		Title:   "Order shipped",
		Message: "Your order is on its way",
		Type:    domain.NotificationTypeEmail,
	}

	t.Run("persists then delivers", func(t *testing.T) {
		userStore := &MockUserStore{}
		notificationStore := &MockNotificationStore{}
		provider := &MockProvider{}

		userStore.On("GetByID", mock.Anything, userID).Return(user, nil)
		notificationStore.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == userID &&
				n.Title == params.Title &&
				n.Status == domain.NotificationStatusPending
		})).Return(nil)
		provider.On("Send", mock.Anything, mock.MatchedBy(func(msg messaging.Message) bool {
			return msg.Recipient == user.Email && msg.Title == params.Title
		})).Return(&messaging.Receipt{Provider: "email", Recipient: user.Email, MessageID: "email_123"}, nil)
		notificationStore.On("UpdateStatus", mock.Anything, mock.Anything, domain.NotificationStatusSent).Return(nil)

		svc := NewNotificationService(notificationStore, userStore, provider, &passthroughTxRunner{}, logger)

		notification, err := svc.CreateNotification(context.Background(), params)

		require.NoError(t, err)
		require.NotNil(t, notification)
		assert.Equal(t, domain.NotificationStatusSent, notification.Status)
		notificationStore.AssertExpectations(t)
		provider.AssertExpectations(t)
	})

	t.Run("unknown user fails validation with no side effects", func(t *testing.T) {
		userStore := &MockUserStore{}
		notificationStore := &MockNotificationStore{}
		provider := &MockProvider{}

		userStore.On("GetByID", mock.Anything, userID).Return(nil, store.ErrUserNotFound)

		svc := NewNotificationService(notificationStore, userStore, provider, &passthroughTxRunner{}, logger)

		notification, err := svc.CreateNotification(context.Background(), params)

		require.Error(t, err)
		assert.Nil(t, notification)
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		notificationStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		provider.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("delivery failure keeps the row and marks it failed", func(t *testing.T) {
		userStore := &MockUserStore{}
		notificationStore := &MockNotificationStore{}
		provider := &MockProvider{}

		userStore.On("GetByID", mock.Anything, userID).Return(user, nil)
		notificationStore.On("Create", mock.Anything, mock.Anything).Return(nil)
		provider.On("Send", mock.Anything, mock.Anything).Return(nil, errors.New("smtp unreachable"))
		notificationStore.On("UpdateStatus", mock.Anything, mock.Anything, domain.NotificationStatusFailed).Return(nil)

		svc := NewNotificationService(notificationStore, userStore, provider, &passthroughTxRunner{}, logger)

		notification, err := svc.CreateNotification(context.Background(), params)

		require.NoError(t, err)
		require.NotNil(t, notification)
		assert.Equal(t, domain.NotificationStatusFailed, notification.Status)
		notificationStore.AssertExpectations(t)
	})

	t.Run("skip send leaves the notification pending", func(t *testing.T) {
		userStore := &MockUserStore{}
		notificationStore := &MockNotificationStore{}
		provider := &MockProvider{}

		userStore.On("GetByID", mock.Anything, userID).Return(user, nil)
		notificationStore.On("Create", mock.Anything, mock.Anything).Return(nil)

		skipParams := params
		skipParams.SkipSend = true

		svc := NewNotificationService(notificationStore, userStore, provider, &passthroughTxRunner{}, logger)

		notification, err := svc.CreateNotification(context.Background(), skipParams)

		require.NoError(t, err)
		require.NotNil(t, notification)
		assert.Equal(t, domain.NotificationStatusPending, notification.Status)
		provider.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("persist failure surfaces and nothing is sent", func(t *testing.T) {
		userStore := &MockUserStore{}
		notificationStore := &MockNotificationStore{}
		provider := &MockProvider{}

		userStore.On("GetByID", mock.Anything, userID).Return(user, nil)
		notificationStore.On("Create", mock.Anything, mock.Anything).Return(errors.New("database error"))

		svc := NewNotificationService(notificationStore, userStore, provider, &passthroughTxRunner{}, logger)

		notification, err := svc.CreateNotification(context.Background(), params)

		require.Error(t, err)
		assert.Nil(t, notification)
		assert.ErrorContains(t, err, "failed to create notification")
		provider.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}

func TestNotificationService_GetNotification(t *testing.T) {
	logger := slog.Default()
	notificationID := uuid.New()

	t.Run("absent notification yields nil, not an error", func(t *testing.T) {
		userStore := &MockUserStore{}
		notificationStore := &MockNotificationStore{}
		provider := &MockProvider{}
		notificationStore.On("GetByID", mock.Anything, notificationID).Return(nil, store.ErrNotificationNotFound)

		svc := NewNotificationService(notificationStore, userStore, provider, &passthroughTxRunner{}, logger)

		notification, err := svc.GetNotification(context.Background(), notificationID)

		require.NoError(t, err)
		assert.Nil(t, notification)
	})
}

func TestNotificationService_MarkAsRead(t *testing.T) {
	logger := slog.Default()
	notificationID := uuid.New()

	t.Run("success returns the updated notification", func(t *testing.T) {
		updated := &domain.Notification{
			ID:     notificationID,
			UserID: uuid.New(),
			Title:  "Order shipped",
			Status: domain.NotificationStatusRead,
		}
		userStore := &MockUserStore{}
		notificationStore := &MockNotificationStore{}
		provider := &MockProvider{}
		notificationStore.On("UpdateStatus", mock.Anything, notificationID, domain.NotificationStatusRead).Return(nil)
		notificationStore.On("GetByID", mock.Anything, notificationID).Return(updated, nil)

		svc := NewNotificationService(notificationStore, userStore, provider, &passthroughTxRunner{}, logger)

		notification, err := svc.MarkAsRead(context.Background(), notificationID)

		require.NoError(t, err)
		require.NotNil(t, notification)
		assert.Equal(t, domain.NotificationStatusRead, notification.Status)
	})

	t.Run("absent notification yields nil, not an error", func(t *testing.T) {
		userStore := &MockUserStore{}
		notificationStore := &MockNotificationStore{}
		provider := &MockProvider{}
		notificationStore.On("UpdateStatus", mock.Anything, notificationID, domain.NotificationStatusRead).
			Return(store.ErrNotificationNotFound)

		svc := NewNotificationService(notificationStore, userStore, provider, &passthroughTxRunner{}, logger)

		notification, err := svc.MarkAsRead(context.Background(), notificationID)

		require.NoError(t, err)
		assert.Nil(t, notification)
	})
}

func TestNotificationService_SendNotificationMessage(t *testing.T) {
	logger := slog.Default()
	userID := uuid.New()
	user := &domain.User{ID: userID, Username: "alice", Email: "alice@example.com"}
	notification := &domain.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Title:   "Order shipped",
		Message: "Your order is on its way",
		Type:    domain.NotificationTypeEmail,
		Status:  domain.NotificationStatusPending,
	}

	t.Run("resolves recipient and delivers", func(t *testing.T) {
		userStore := &MockUserStore{}
		notificationStore := &MockNotificationStore{}
		provider := &MockProvider{}
		userStore.On("GetByID", mock.Anything, userID).Return(user, nil)
		provider.On("Send", mock.Anything, mock.MatchedBy(func(msg messaging.Message) bool {
			return msg.Recipient == user.Email && msg.Body == notification.Message
		})).Return(&messaging.Receipt{Provider: "email", Recipient: user.Email, MessageID: "email_123"}, nil)

		svc := NewNotificationService(notificationStore, userStore, provider, &passthroughTxRunner{}, logger)

		receipt, err := svc.SendNotificationMessage(context.Background(), notification)

		require.NoError(t, err)
		require.NotNil(t, receipt)
		assert.Equal(t, "email_123", receipt.MessageID)
	})

	t.Run("vanished user fails validation", func(t *testing.T) {
		userStore := &MockUserStore{}
		notificationStore := &MockNotificationStore{}
		provider := &MockProvider{}
		userStore.On("GetByID", mock.Anything, userID).Return(nil, store.ErrUserNotFound)

		svc := NewNotificationService(notificationStore, userStore, provider, &passthroughTxRunner{}, logger)

		receipt, err := svc.SendNotificationMessage(context.Background(), notification)

		require.Error(t, err)
		assert.Nil(t, receipt)
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		provider.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}
