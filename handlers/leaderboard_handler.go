package handlers

import (
	"net/http"

	"github.com/tournoi-uno/webapp/services"
)

type LeaderboardHandler struct {
	leaderboardService services.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// Standings handles GET /classement.
func (h *LeaderboardHandler) Standings(w http.ResponseWriter, r *http.Request) {
	entries, err := h.leaderboardService.Top(r.Context())
	if err != nil {
		serverErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"standings": entries}, nil)
}
