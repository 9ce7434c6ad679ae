package api

import (
	"time"

	"github.com/storefront/storefront-api/internal/domain"
)

// CreateUserRequest defines the payload for the user creation endpoint.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
	Email    string `json:"email"    validate:"required,email"`
}

// UserResponse defines the response shape for a single user.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateOrderRequest defines the payload for the order creation endpoint.
type CreateOrderRequest struct {
	UserID      string  `json:"user_id"      validate:"required,uuid"`
	TotalAmount float64 `json:"total_amount" validate:"required,gt=0"`
}

// OrderResponse defines the response shape for a single order.
type OrderResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateNotificationRequest defines the payload for the notification
// creation endpoint. SkipSend suppresses the delivery attempt.
type CreateNotificationRequest struct {
	UserID   string `json:"user_id" validate:"required,uuid"`
	Title    string `json:"title"   validate:"required,min=1,max=200"`
	Message  string `json:"message" validate:"required,min=1"`
	Type     string `json:"type"    validate:"required,oneof=email sms push"`
	SkipSend bool   `json:"skip_send"`
}

// NotificationResponse defines the response shape for a single notification.
type NotificationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func toUserResponses(users []*domain.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, toUserResponse(user))
	}
	return responses
}

func toOrderResponse(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:          order.ID.String(),
		UserID:      order.UserID.String(),
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
		CreatedAt:   order.CreatedAt,
	}
}

func toOrderResponses(orders []*domain.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, toOrderResponse(order))
	}
	return responses
}

func toNotificationResponse(notification *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        notification.ID.String(),
		UserID:    notification.UserID.String(),
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      string(notification.Type),
		Status:    string(notification.Status),
		CreatedAt: notification.CreatedAt,
	}
}

func toNotificationResponses(notifications []*domain.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		responses = append(responses, toNotificationResponse(notification))
	}
	return responses
}
