package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/go-chi/chi/v5"
)

// serveMedia streams a stored blob. Seekable bodies go through
// http.ServeContent, which answers range requests for video seeking.
func (h *Handler) serveMedia(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	obj, err := h.services.MediaService.Open(r.Context(), key)
	if err != nil {
		writeError(w, r, err, "error opening media")
		return
	}
	defer obj.Body.Close()

	contentType := obj.ContentType
	if contentType == "" {
		// ServeContent would otherwise guess from the key and the bytes
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Security-Policy", "default-src 'none'; sandbox")

	if seeker, ok := obj.Body.(io.ReadSeeker); ok {
		http.ServeContent(w, r, key, obj.ModifiedAt, seeker)
		return
	}

	if obj.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(obj.Size, 10))
	}
	w.WriteHeader(http.StatusOK)
	if _, err = io.Copy(w, obj.Body); err != nil {
		logger.FromRequest(r).Err(err).Str("key", key).Msg("media stream interrupted")
	}
}
