package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Authentication is applied per route: reads of
// the catalog are public, writes and GET /api/users require Basic auth.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecover)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.routeNotFound)

	router.Get("/", h.welcome)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Post("/users", h.createUser)
		r.With(h.auth).Get("/users", h.getCurrentUser)

		r.Get("/courses", h.listCourses)
		r.Get("/courses/{id}", h.getCourse)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/courses", h.createCourse)
			r.Put("/courses/{id}", h.updateCourse)
			r.Delete("/courses/{id}", h.deleteCourse)
		})
	})

	return router
}
