package videos

import (
	"net/http"

	"github.com/MuzikosMokykla/MM-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes(h *Handler, fetcher middleware.SessionFetcher) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.SessionMiddleware(fetcher))

	r.Get("/lesson/{lessonId}", h.FetchHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminMiddleware)
		r.Post("/upload/{lessonId}", h.UploadHandler)
		r.Delete("/{lessonId}", h.DeleteHandler)
	})

	return r
}
