package auth

import (
	"net/http"

	"github.com/MuzikosMokykla/MM-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	sessionFetcher := SessionInfo{Sessions: h.Sessions}

	r.Post("/login", h.LoginHandler)
	r.Post("/magic/send", h.SendMagicCodeHandler)
	r.Post("/magic/verify", h.VerifyMagicCodeHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))
		r.Post("/logout", h.LogoutHandler)
		r.Get("/me", h.MeHandler)
	})

	return r
}
