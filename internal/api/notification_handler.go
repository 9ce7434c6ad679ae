package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/storefront/storefront-api/internal/api/shared"
	"github.com/storefront/storefront-api/internal/domain"
	"github.com/storefront/storefront-api/internal/service"
)

// NotificationHandler handles notification-related HTTP requests.
type NotificationHandler struct {
	notificationService service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// CreateNotification handles POST /notifications requests.
func (h *NotificationHandler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	var req CreateNotificationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	notification, err := h.notificationService.CreateNotification(r.Context(), service.CreateNotificationParams{
		UserID:   uuid.MustParse(req.UserID),
		Title:    req.Title,
		Message:  req.Message,
		Type:     domain.NotificationType(req.Type),
		SkipSend: req.SkipSend,
	})
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, toNotificationResponse(notification))
}

// GetNotification handles GET /notifications/{id} requests.
func (h *NotificationHandler) GetNotification(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	notification, err := h.notificationService.GetNotification(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	if notification == nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Notification not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toNotificationResponse(notification))
}

// ListUserNotifications handles GET /notifications/user/{userID} requests.
func (h *NotificationHandler) ListUserNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}

	notifications, err := h.notificationService.GetUserNotifications(r.Context(), userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toNotificationResponses(notifications))
}

// MarkAsRead handles PUT /notifications/{id}/read requests.
func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	notification, err := h.notificationService.MarkAsRead(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	if notification == nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Notification not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toNotificationResponse(notification))
}

// ResendNotification handles POST /notifications/{id}/resend requests.
// It re-delivers an existing notification through the configured provider.
func (h *NotificationHandler) ResendNotification(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	notification, err := h.notificationService.GetNotification(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	if notification == nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Notification not found")
		return
	}

	receipt, err := h.notificationService.SendNotificationMessage(r.Context(), notification)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, receipt)
}
