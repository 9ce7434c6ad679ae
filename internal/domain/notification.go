package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NotificationType selects the delivery channel for a notification.
type NotificationType string

// Valid notification types.
const (
	NotificationTypeEmail NotificationType = "email"
	NotificationTypeSMS   NotificationType = "sms"
	NotificationTypePush  NotificationType = "push"
)

// NotificationStatus represents the delivery state of a notification.
type NotificationStatus string

// Valid notification statuses.
const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"
	NotificationStatusRead    NotificationStatus = "read"
)

// Notification represents a message addressed to a user, persisted before
// it is handed to a delivery provider.
type Notification struct {
	ID        uuid.UUID          `json:"id"`
	UserID    uuid.UUID          `json:"user_id"`
	Title     string             `json:"title"`
	Message   string             `json:"message"`
	Type      NotificationType   `json:"notification_type"`
	Status    NotificationStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}

// NewNotification creates a new Notification for the given user.
// New notifications always start in the pending status.
// Returns an error if validation fails.
func NewNotification(
	userID uuid.UUID,
	title, message string,
	notificationType NotificationType,
) (*Notification, error) {
	notification := &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      notificationType,
		Status:    NotificationStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := notification.Validate(); err != nil {
		return nil, err
	}

	return notification, nil
}

// Validate checks if the Notification has valid data.
func (n *Notification) Validate() error {
	if n.ID == uuid.Nil {
		return ErrEmptyID
	}

	if n.UserID == uuid.Nil {
		return ErrEmptyUserID
	}

	if strings.TrimSpace(n.Title) == "" {
		return ErrEmptyTitle
	}

	if strings.TrimSpace(n.Message) == "" {
		return ErrEmptyMessage
	}

	switch n.Type {
	case NotificationTypeEmail, NotificationTypeSMS, NotificationTypePush:
	default:
		return ErrInvalidNotificationType
	}

	switch n.Status {
	case NotificationStatusPending, NotificationStatusSent,
		NotificationStatusFailed, NotificationStatusRead:
	default:
		return ErrInvalidNotificationStatus
	}

	return nil
}
