package handlers

import (
	"net/http"

	"github.com/tournoi-uno/webapp/config"
	"github.com/tournoi-uno/webapp/models"
	"github.com/tournoi-uno/webapp/services"
	"github.com/tournoi-uno/webapp/session"
)

type AuthHandler struct {
	authService services.AuthService
	sessions    *session.Manager
	cfg         *config.Config
}

func NewAuthHandler(authService services.AuthService, sessions *session.Manager, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		cfg:         cfg,
	}
}

// telegramAuthRequest mirrors the payload of the Telegram login widget.
type telegramAuthRequest struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	PhotoURL  string `json:"photo_url"`
}

// TelegramAuth handles POST /api/telegram-auth.
func (h *AuthHandler) TelegramAuth(w http.ResponseWriter, r *http.Request) {
	var req telegramAuthRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, err)
		return
	}

	result, err := h.authService.Authorize(r.Context(), services.TelegramAuthInput{
		ID:        req.ID,
		Username:  req.Username,
		FirstName: req.FirstName,
		PhotoURL:  req.PhotoURL,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	if result.NewUser {
		writeJSON(w, http.StatusOK, jsonResponse{
			"success":  true,
			"new_user": true,
			"telegram_data": jsonResponse{
				"id":         result.Profile.ID,
				"username":   result.Profile.Username,
				"first_name": result.Profile.FirstName,
				"photo_url":  result.Profile.PhotoURL,
			},
		}, nil)
		return
	}

	if err := h.establishSession(w, result.User); err != nil {
		serverErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"success": true, "redirect": "/dashboard"}, nil)
}

// registerRequest carries the registration form; field names are part of
// the public wire contract with the frontend.
type registerRequest struct {
	TelegramUserID   int64  `json:"telegram_user_id"`
	TelegramUsername string `json:"telegram_username"`
	DisplayName      string `json:"pseudo_affichage"`
	FirstName        string `json:"prenom"`
	PhotoURL         string `json:"photo_url"`
	AcceptTerms      bool   `json:"accepte_cgu"`
	AcceptPrivacy    bool   `json:"accepte_confidentialite"`
}

// Register handles POST /api/inscription.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, err)
		return
	}

	user, err := h.authService.Register(r.Context(), services.RegisterInput{
		TelegramUserID:   req.TelegramUserID,
		TelegramUsername: req.TelegramUsername,
		DisplayName:      req.DisplayName,
		FirstName:        req.FirstName,
		PhotoURL:         req.PhotoURL,
		AcceptTerms:      req.AcceptTerms,
		AcceptPrivacy:    req.AcceptPrivacy,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	if err := h.establishSession(w, user); err != nil {
		serverErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"success": true, "redirect": "/dashboard"}, nil)
}

// Logout handles GET /logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) establishSession(w http.ResponseWriter, user *models.User) error {
	return h.sessions.Issue(w, session.Session{
		UserID:         user.ID,
		TelegramUserID: user.TelegramUserID,
		DisplayName:    user.DisplayName,
		IsAdmin:        h.cfg.IsAdmin(user.TelegramUserID),
	})
}
