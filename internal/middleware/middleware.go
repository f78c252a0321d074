package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/MuzikosMokykla/MM-Backend/internal/utils"
)

const SessionCookieName = "session_id"

type SessionFetcher interface {
	FindSessionByID(id string) (utils.SessionData, error)
}

// SessionMiddleware rejects requests without a live session and injects the
// session's user into the request context.
func SessionMiddleware(fetcher SessionFetcher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, "Reikalingas prisijungimas")
				return
			}

			session, err := fetcher.FindSessionByID(cookie.Value)
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, "Reikalingas prisijungimas")
				return
			}

			if session.ExpiresAt.Before(time.Now()) {
				utils.RespondError(w, http.StatusUnauthorized, "Sesija pasibaigusi")
				return
			}

			ctx := context.WithValue(r.Context(), utils.ContextSessionUserKey, session.User)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminMiddleware runs after SessionMiddleware and rejects any session whose
// role is not admin. Unknown roles count as non-admin.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.GetSessionUserFromContext(r.Context())
		if !ok {
			utils.RespondError(w, http.StatusUnauthorized, "Reikalingas prisijungimas")
			return
		}

		if user.Role != "admin" {
			utils.RespondError(w, http.StatusForbidden, "Reikalingos administratoriaus teisės")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// CORSMiddleware echoes the configured browser origin with credentials.
func CORSMiddleware(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Origin") == origin {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin") // important for caches
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods",
					"GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers",
					"Content-Type, Authorization")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
