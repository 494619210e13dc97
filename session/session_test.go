package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func issueAndExtract(t *testing.T, m *Manager, s Session) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	if err := m.Issue(rec, s); err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestIssueAndParseRoundTrip(t *testing.T) {
	m := NewManager("test-secret")
	want := Session{
		UserID:         42,
		TelegramUserID: 123456789,
		DisplayName:    "Lucas",
		IsAdmin:        true,
	}

	cookie := issueAndExtract(t, m, want)
	if !cookie.HttpOnly {
		t.Error("session cookie must be http-only")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	got, err := m.FromRequest(req)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if *got != want {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestFromRequestWithoutCookie(t *testing.T) {
	m := NewManager("test-secret")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := m.FromRequest(req); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestParseRejectsTamperedToken(t *testing.T) {
	m := NewManager("test-secret")
	cookie := issueAndExtract(t, m, Session{UserID: 1, TelegramUserID: 2, DisplayName: "x"})

	// Flip a character in the payload segment.
	parts := strings.Split(cookie.Value, ".")
	if len(parts) != 3 {
		t.Fatalf("expected a three-part token, got %d parts", len(parts))
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := m.Parse(tampered); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}

func TestParseRejectsForeignSecret(t *testing.T) {
	theirs := NewManager("their-secret")
	ours := NewManager("our-secret")

	cookie := issueAndExtract(t, theirs, Session{UserID: 7, TelegramUserID: 8})
	if _, err := ours.Parse(cookie.Value); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret")
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := m.Parse(token); !errors.Is(err, ErrInvalidSession) {
			t.Errorf("token %q: expected ErrInvalidSession, got %v", token, err)
		}
	}
}

func TestClearExpiresCookie(t *testing.T) {
	m := NewManager("test-secret")
	rec := httptest.NewRecorder()
	m.Clear(rec)

	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			if c.MaxAge >= 0 {
				t.Errorf("expected negative max-age, got %d", c.MaxAge)
			}
			return
		}
	}
	t.Fatal("clearing cookie not set")
}
