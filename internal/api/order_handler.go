package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/storefront/storefront-api/internal/api/shared"
	"github.com/storefront/storefront-api/internal/service"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CreateOrder handles POST /orders requests.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	// uuid tag in the request model guarantees this parses.
	userID := uuid.MustParse(req.UserID)

	order, err := h.orderService.CreateOrder(r.Context(), userID, req.TotalAmount)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, toOrderResponse(order))
}

// GetOrder handles GET /orders/{id} requests.
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	if order == nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Order not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toOrderResponse(order))
}

// ListUserOrders handles GET /orders/user/{userID} requests.
func (h *OrderHandler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}

	orders, err := h.orderService.GetUserOrders(r.Context(), userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toOrderResponses(orders))
}
