// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/rexora-cms/internal/app"
	"github.com/MKhiriev/rexora-cms/internal/utils"
	"github.com/MKhiriev/rexora-cms/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 Method Not Allowed whenever a request path matches a
// registered route but the HTTP method is not handled. This handler answers
// 404 Not Found with the usual {"detail"} body instead, so an unsupported
// method looks exactly like an unknown route.
//
// If the router can in fact serve the method for the path, the request is
// routed again from scratch.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Router) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			// drop the routing state of the failed attempt
			ctx := context.WithValue(r.Context(), chi.RouteCtxKey, (*chi.Context)(nil))
			router.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgRouteNotFound}, http.StatusNotFound)
	}
}
