package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MuzikosMokykla/MM-Backend/internal/middleware"
	"github.com/MuzikosMokykla/MM-Backend/internal/utils"
)

// mockFetcher implements middleware.SessionFetcher without any database dependency.
type mockFetcher struct {
	session utils.SessionData
	err     error
}

func (m mockFetcher) FindSessionByID(id string) (utils.SessionData, error) {
	return m.session, m.err
}

// callWithCookie wraps a simple 200-OK inner handler in the provided middleware,
// optionally setting one cookie on the request, and returns the recorded response.
func callWithCookie(t *testing.T, mw func(http.Handler) http.Handler, cookieName, cookieValue string) *httptest.ResponseRecorder {
	t.Helper()

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := mw(inner)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if cookieName != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: cookieValue})
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func liveSession(role string) utils.SessionData {
	return utils.SessionData{
		User:      utils.SessionUser{ID: "user-1", Username: "test", Role: role},
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}
}

// TestSessionMiddleware_MissingCookie verifies that a request with no session_id
// cookie receives a 401 response.
func TestSessionMiddleware_MissingCookie(t *testing.T) {
	mw := middleware.SessionMiddleware(mockFetcher{})

	rec := callWithCookie(t, mw, "", "")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Reikalingas prisijungimas") {
		t.Errorf("expected localized auth message, got: %q", rec.Body.String())
	}
}

// TestSessionMiddleware_ExpiredSession verifies that a valid session_id cookie
// with an expired session receives a 401 response containing the expiry message.
func TestSessionMiddleware_ExpiredSession(t *testing.T) {
	fetcher := mockFetcher{
		session: utils.SessionData{
			User:      utils.SessionUser{ID: "some-user", Role: "admin"},
			ExpiresAt: time.Now().Add(-1 * time.Hour), // 1 hour in the past
		},
	}
	mw := middleware.SessionMiddleware(fetcher)

	rec := callWithCookie(t, mw, middleware.SessionCookieName, "expired-session-id")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Sesija pasibaigusi") {
		t.Errorf("expected expiry message, got: %q", rec.Body.String())
	}
}

// TestSessionMiddleware_FetcherError verifies that a fetcher error (e.g. session not found)
// results in a 401 response.
func TestSessionMiddleware_FetcherError(t *testing.T) {
	fetcher := mockFetcher{err: errors.New("session not found")}
	mw := middleware.SessionMiddleware(fetcher)

	rec := callWithCookie(t, mw, middleware.SessionCookieName, "nonexistent-session-id")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

// TestSessionMiddleware_ValidSession verifies that a request with a valid, non-expired
// session receives a 200 response and that the session user is injected into the context.
func TestSessionMiddleware_ValidSession(t *testing.T) {
	fetcher := mockFetcher{session: liveSession("viewer")}

	// inner handler reads and checks the session user from context
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.GetSessionUserFromContext(r.Context())
		if !ok {
			http.Error(w, "session user not in context", http.StatusInternalServerError)
			return
		}
		if user.ID != "user-1" || user.Role != "viewer" {
			http.Error(w, "wrong session user in context", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.SessionMiddleware(fetcher)(inner)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "valid-session-id"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}
}

// TestAdminMiddleware_MissingUser verifies that AdminMiddleware returns 401 when no
// session user is present in the request context (i.e. SessionMiddleware did not run).
func TestAdminMiddleware_MissingUser(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.AdminMiddleware(inner)
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

// TestAdminMiddleware_Roles verifies that only the admin role passes and every other
// role value, known or not, receives a 403.
func TestAdminMiddleware_Roles(t *testing.T) {
	cases := []struct {
		role string
		want int
	}{
		{"admin", http.StatusOK},
		{"viewer", http.StatusForbidden},
		{"superuser", http.StatusForbidden},
		{"", http.StatusForbidden},
	}

	for _, tc := range cases {
		fetcher := mockFetcher{session: liveSession(tc.role)}

		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		handler := middleware.SessionMiddleware(fetcher)(middleware.AdminMiddleware(inner))

		req := httptest.NewRequest(http.MethodDelete, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "session-id"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != tc.want {
			t.Errorf("role %q: expected %d, got %d", tc.role, tc.want, rec.Code)
		}
	}
}

// TestCORSMiddleware_AllowedOrigin verifies that the configured origin is echoed back
// with credentials and that a preflight OPTIONS request short-circuits with 204.
func TestCORSMiddleware_AllowedOrigin(t *testing.T) {
	mw := middleware.CORSMiddleware("http://localhost:3000")
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := mw(inner)

	req := httptest.NewRequest(http.MethodOptions, "/api/students", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("expected origin echoed back, got %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("expected credentials allowed, got %q", got)
	}
}

// TestCORSMiddleware_UnknownOrigin verifies that an unknown origin receives no CORS
// headers.
func TestCORSMiddleware_UnknownOrigin(t *testing.T) {
	mw := middleware.CORSMiddleware("http://localhost:3000")
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := mw(inner)

	req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no CORS headers for unknown origin, got %q", got)
	}
}
