package handlers

import (
	"errors"
	"net/http"

	"github.com/tournoi-uno/webapp/middleware"
	"github.com/tournoi-uno/webapp/services"
)

type UserHandler struct {
	profileService services.ProfileService
	edition        int
}

func NewUserHandler(profileService services.ProfileService, edition int) *UserHandler {
	return &UserHandler{profileService: profileService, edition: edition}
}

// Dashboard handles GET /dashboard (session required by the route guard).
func (h *UserHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		errorResponse(w, http.StatusUnauthorized, "session requise")
		return
	}

	page, err := h.profileService.Dashboard(r.Context(), s.UserID, h.edition)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page, nil)
}

// Profile handles GET /profil.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		errorResponse(w, http.StatusUnauthorized, "session requise")
		return
	}

	page, err := h.profileService.Profile(r.Context(), s.UserID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			errorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		serverErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page, nil)
}
