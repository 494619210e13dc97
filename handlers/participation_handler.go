package handlers

import (
	"net/http"

	"github.com/tournoi-uno/webapp/middleware"
	"github.com/tournoi-uno/webapp/services"
)

type ParticipationHandler struct {
	participationService services.ParticipationService
	edition              int
}

func NewParticipationHandler(participationService services.ParticipationService, edition int) *ParticipationHandler {
	return &ParticipationHandler{
		participationService: participationService,
		edition:              edition,
	}
}

// Register handles POST /api/participation: sign the logged-in user up
// for the current edition.
func (h *ParticipationHandler) Register(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		errorResponse(w, http.StatusUnauthorized, "session requise")
		return
	}

	p, err := h.participationService.Register(r.Context(), s.UserID, h.edition)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, jsonResponse{"success": true, "participation": p}, nil)
}
