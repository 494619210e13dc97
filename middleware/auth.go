package middleware

import (
	"context"
	"net/http"

	"github.com/tournoi-uno/webapp/session"
)

type contextKey string

const sessionContextKey contextKey = "session"

// LoadSession parses the session cookie when present and puts the typed
// session into the request context. It never blocks a request by itself.
func LoadSession(manager *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if s, err := manager.FromRequest(r); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), sessionContextKey, s))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSession redirects anonymous requests to the login page.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SessionFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin allows only sessions whose telegram id was in the admin
// allow-list at login time.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := SessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if !s.IsAdmin {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(sessionContextKey).(*session.Session)
	return s, ok
}

// WithSession returns a context carrying the session. Used by tests and
// by the session loader above.
func WithSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, s)
}
