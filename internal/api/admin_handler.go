package api

import (
	"net/http"

	"github.com/storefront/storefront-api/internal/api/shared"
	"github.com/storefront/storefront-api/internal/service"
)

// AdminHandler handles administrative reporting requests.
type AdminHandler struct {
	adminService service.AdminService
	userService  service.UserService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService service.AdminService, userService service.UserService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		userService:  userService,
	}
}

// ListUsers handles GET /admin/users requests.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.GetAllUsers(r.Context())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toUserResponses(users))
}

// GetStats handles GET /admin/stats requests.
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.GetStats(r.Context())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}
