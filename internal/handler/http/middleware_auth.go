package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header, validates it via
// [service.AuthService.ParseToken] and stores the admin e-mail in the request
// context under [utils.AdminEmailCtxKey] before delegating to the next
// handler. Every rejection is a 401 with a {"detail"} body.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader, "request without token")
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, err, "malformed authorization header")
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err, "token rejected")
			return
		}

		email, err := token.GetEmail()
		if err != nil {
			logger.FromRequest(r).Err(err).Msg("token without subject")
		}
		ctx = context.WithValue(ctx, utils.AdminEmailCtxKey, email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
