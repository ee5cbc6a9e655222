// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/rexora-cms/internal/service"
)

const msgServerUnavailable = "Network is unavailable or the server is down"

// humanizeError turns a client service error into the text shown to the
// admin. Service errors already carry the server's message.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, service.ErrNetwork) {
		return msgServerUnavailable
	}
	return err.Error()
}

// isSessionLost reports whether err means the admin has to sign in again.
func isSessionLost(err error) bool {
	return errors.Is(err, service.ErrUnauthorized) || errors.Is(err, service.ErrNotAuthenticated)
}
