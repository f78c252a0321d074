package lookup

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Public: backs the landing-page widgets.
func SetupRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/artists/{instrument}", h.ArtistsHandler)
	r.Get("/videos/{instrument}", h.VideosHandler)
	return r
}
