package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Unknown routes and unsupported methods both
// answer 404.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5, "application/json"))

	// must precede Route: sub-routers inherit these on mount
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	router.Get("/metrics", h.metrics.Handler().ServeHTTP)
	router.Get("/version", h.getAppInfo)

	router.Group(func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		// plain authentication
		r.Route("/auth", func(r chi.Router) {
			r.Use(h.withRateLimit(h.rateLimit))
			r.Post("/signup", h.plainSignUp)
			r.Post("/signin", h.plainSignIn)
		})

		// token authentication
		r.Route("/jwt", func(r chi.Router) {
			r.Use(h.withRateLimit(h.rateLimit))
			r.Post("/signup", h.tokenSignUp)
			r.Post("/signin", h.tokenSignIn)
		})

		r.Route("/event", func(r chi.Router) {
			r.Post("/", h.createEvent)
			r.Get("/", h.searchEvents)
			r.Get("/{id}", h.getEvent)
			r.Patch("/{id}", h.updateEvent)
			r.Delete("/{id}", h.deleteEvent)
		})

		// records scoped to the token owner
		r.Route("/auth-event", func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", h.createOwnedEvent)
			r.Get("/", h.searchOwnedEvents)
			r.Get("/{id}", h.getOwnedEvent)
			r.Patch("/{id}", h.updateOwnedEvent)
			r.Delete("/{id}", h.deleteOwnedEvent)
		})
	})

	return router
}
