package school

import (
	"net/http"

	"github.com/MuzikosMokykla/MM-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// Reads need an authenticated session; writes additionally need admin.

func SetupStudentRoutes(h *Handler, fetcher middleware.SessionFetcher) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.SessionMiddleware(fetcher))

	r.Get("/", h.ListStudentsHandler)
	r.Get("/filter/instrument/{instrument}", h.FilterStudentsHandler)
	r.Get("/{id}", h.GetStudentHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminMiddleware)
		r.Post("/", h.CreateStudentHandler)
		r.Put("/{id}", h.UpdateStudentHandler)
		r.Delete("/{id}", h.DeleteStudentHandler)
	})

	return r
}

func SetupTeacherRoutes(h *Handler, fetcher middleware.SessionFetcher) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.SessionMiddleware(fetcher))

	r.Get("/", h.ListTeachersHandler)
	r.Get("/{id}", h.GetTeacherHandler)
	r.Get("/{id}/schedule", h.ScheduleHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminMiddleware)
		r.Post("/", h.CreateTeacherHandler)
		r.Put("/{id}", h.UpdateTeacherHandler)
		r.Delete("/{id}", h.DeleteTeacherHandler)
	})

	return r
}

func SetupLessonRoutes(h *Handler, fetcher middleware.SessionFetcher) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.SessionMiddleware(fetcher))

	r.Get("/", h.ListLessonsHandler)
	r.Get("/{id}", h.GetLessonHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminMiddleware)
		r.Post("/", h.CreateLessonHandler)
		r.Put("/{id}", h.UpdateLessonHandler)
		r.Delete("/{id}", h.DeleteLessonHandler)
	})

	return r
}
