package handlers

import (
	"net/http"

	"github.com/tournoi-uno/webapp/services"
)

type AdminHandler struct {
	adminService services.AdminService
	edition      int
}

func NewAdminHandler(adminService services.AdminService, edition int) *AdminHandler {
	return &AdminHandler{adminService: adminService, edition: edition}
}

// Overview handles GET /admin (admin required by the route guard).
func (h *AdminHandler) Overview(w http.ResponseWriter, r *http.Request) {
	page, err := h.adminService.Overview(r.Context(), h.edition)
	if err != nil {
		serverErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page, nil)
}
