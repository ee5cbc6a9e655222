package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withMetrics)
	router.Use(h.withCORS())

	router.Get("/", h.status)
	router.Get("/health", h.health)
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		// media is streamed as is, range requests need the raw writer
		r.Get("/media/{key}", h.serveMedia)

		r.Group(func(r chi.Router) {
			r.Use(withGZip)

			// routes without authorization
			r.Get("/", h.status)
			r.Get("/version", h.getServerVersion)
			r.Post("/admin/login", h.login)
			r.Get("/projects", h.listProjects)
			r.Get("/projects/{id}", h.getProject)
			r.Get("/site-settings", h.getSiteSettings)
			r.Get("/reviews", h.listReviews)

			// admin routes
			r.Group(func(r chi.Router) {
				r.Use(h.auth)

				r.Get("/admin/verify", h.verify)
				r.Get("/admin/stats", h.stats)

				r.Put("/projects/{id}", h.updateProject)
				r.Delete("/projects/{id}", h.deleteProject)

				r.Put("/site-settings", h.replaceSiteSettings)

				r.Post("/reviews", h.createReview)
				r.Put("/reviews/{id}", h.updateReview)
				r.Delete("/reviews/{id}", h.deleteReview)

				// uploads
				r.Group(func(r chi.Router) {
					r.Use(h.withBodyLimit)

					r.Post("/projects", h.createProject)
					r.Post("/site-settings/logo", h.uploadLogo)
				})
			})
		})
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
