package handlers

import (
	"net/http"

	"github.com/tournoi-uno/webapp/middleware"
	"github.com/tournoi-uno/webapp/services"
)

// PageHandler serves the public page-data endpoints.
type PageHandler struct {
	homeService services.HomeService
	edition     int
	botUsername string
}

func NewPageHandler(homeService services.HomeService, edition int, botUsername string) *PageHandler {
	return &PageHandler{
		homeService: homeService,
		edition:     edition,
		botUsername: botUsername,
	}
}

// Home handles GET /.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	page, err := h.homeService.Page(r.Context(), h.edition)
	if err != nil {
		serverErrorResponse(w, err)
		return
	}
	_, loggedIn := middleware.SessionFromContext(r.Context())
	writeJSON(w, http.StatusOK, jsonResponse{
		"edition":          page.Edition,
		"stats":            page.Stats,
		"featured_matches": page.Featured,
		"logged_in":        loggedIn,
	}, nil)
}

// Login handles GET /login. A logged-in user is sent straight to the
// dashboard, as the widget has nothing left to do.
func (h *PageHandler) Login(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.SessionFromContext(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"page": "login", "bot_username": h.botUsername}, nil)
}

// Inscription handles GET /inscription.
func (h *PageHandler) Inscription(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, jsonResponse{"page": "inscription", "bot_username": h.botUsername}, nil)
}

// Legal serves the static legal pages.
func (h *PageHandler) Legal(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, jsonResponse{"page": name}, nil)
	}
}
