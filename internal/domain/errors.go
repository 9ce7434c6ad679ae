package domain

import "errors"

// Common validation errors returned by the entity constructors and
// Validate methods.
var (
	ErrEmptyID                 = errors.New("id cannot be empty")
	ErrEmptyUserID             = errors.New("user id cannot be empty")
	ErrEmptyUsername           = errors.New("username cannot be empty")
	ErrEmptyEmail              = errors.New("email cannot be empty")
	ErrInvalidEmail            = errors.New("invalid email format")
	ErrInvalidAmount           = errors.New("order amount must be greater than zero")
	ErrInvalidOrderStatus      = errors.New("invalid order status")
	ErrEmptyTitle              = errors.New("notification title cannot be empty")
	ErrEmptyMessage            = errors.New("notification message cannot be empty")
	ErrInvalidNotificationType = errors.New("invalid notification type")
	ErrInvalidNotificationStatus = errors.New("invalid notification status")
)
