package instruments

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Public: the widgets live on the marketing page, before login.
func SetupRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.ListHandler)
	r.Get("/round", h.RoundHandler)
	return r
}
