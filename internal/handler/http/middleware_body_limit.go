package http

import "net/http"

// withBodyLimit caps upload bodies at cfg.MaxUploadBytes. A non-positive cap
// disables the limit.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limit := h.cfg.MaxUploadBytes; limit > 0 {
			if r.ContentLength > limit {
				writeError(w, r, ErrRequestTooLarge, "upload rejected by declared length")
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
