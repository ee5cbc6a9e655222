package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS allows the configured origins to call the API from a browser.
// The ETag header is exposed so that the settings editor can send If-Match.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := h.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "If-Match", traceIDHeader},
		ExposedHeaders:   []string{"ETag", traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
