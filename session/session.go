package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Session is the typed content of the login cookie. IsAdmin is computed
// once at login from the configured allow-list.
type Session struct {
	UserID         int
	TelegramUserID int64
	DisplayName    string
	IsAdmin        bool
}

const CookieName = "session"

var (
	ErrNoSession      = errors.New("no session cookie")
	ErrInvalidSession = errors.New("invalid session token")
)

// Manager signs sessions into the cookie and reads them back.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    7 * 24 * time.Hour,
	}
}

func (m *Manager) Issue(w http.ResponseWriter, s Session) error {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":     s.UserID,
		"telegram_id": s.TelegramUserID,
		"name":        s.DisplayName,
		"is_admin":    s.IsAdmin,
		"iat":         now.Unix(),
		"exp":         now.Add(m.ttl).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("failed to sign session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// FromRequest parses and verifies the session cookie.
func (m *Manager) FromRequest(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, ErrNoSession
	}
	return m.Parse(cookie.Value)
}

func (m *Manager) Parse(token string) (*Session, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSession
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidSession
	}

	userID, ok := claims["user_id"].(float64)
	if !ok || userID != float64(int(userID)) || int(userID) <= 0 {
		return nil, ErrInvalidSession
	}
	telegramID, ok := claims["telegram_id"].(float64)
	if !ok {
		return nil, ErrInvalidSession
	}
	name, _ := claims["name"].(string)
	isAdmin, _ := claims["is_admin"].(bool)

	return &Session{
		UserID:         int(userID),
		TelegramUserID: int64(telegramID),
		DisplayName:    name,
		IsAdmin:        isAdmin,
	}, nil
}
