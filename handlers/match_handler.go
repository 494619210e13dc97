package handlers

import (
	"net/http"

	"github.com/tournoi-uno/webapp/services"
)

type MatchHandler struct {
	matchService services.MatchService
	edition      int
}

func NewMatchHandler(matchService services.MatchService, edition int) *MatchHandler {
	return &MatchHandler{matchService: matchService, edition: edition}
}

// List handles GET /matchs.
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matchService.ListByEdition(r.Context(), h.edition)
	if err != nil {
		serverErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"edition": h.edition, "matches": matches}, nil)
}
