// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/rexora-cms/internal/adapter"
	"github.com/MKhiriev/rexora-cms/internal/app"
)

// ClientError is what the admin client reports for a failed action. Message
// is ready to be shown to the admin. Kind is one of the client-side
// sentinels and is matched with errors.Is.
type ClientError struct {
	Kind    error
	Message string
	Err     error
}

func (e *ClientError) Error() string {
	return e.Message
}

func (e *ClientError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// validationError wraps a local validation failure. Its message is the
// validator's message, e.g. the measured size and the limit of a file.
func validationError(err error) error {
	return &ClientError{Kind: ErrValidation, Message: err.Error(), Err: err}
}

// mapAdapterError translates the adapter's transport error into a client
// error carrying the server's message, or fallback when there is none.
func mapAdapterError(err error, fallback string) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	var kind error
	switch {
	case errors.Is(err, adapter.ErrTransport):
		return &ClientError{Kind: ErrNetwork, Message: app.MsgServiceUnavailable, Err: err}

	case errors.Is(err, adapter.ErrBadRequest):
		kind = ErrValidation

	case errors.Is(err, adapter.ErrUnauthorized):
		kind = ErrUnauthorized
		if msg == app.MsgInvalidCredentials {
			return &ClientError{Kind: ErrInvalidCredentials, Message: msg, Err: ErrUnauthorized}
		}

	case errors.Is(err, adapter.ErrNotFound):
		kind = ErrNotFound

	case errors.Is(err, adapter.ErrPreconditionFailed):
		kind = ErrSettingsVersionChange

	case errors.Is(err, adapter.ErrTooManyRequests):
		kind = ErrTooManyAttempts

	default:
		kind = ErrServer
	}

	if msg == "" {
		msg = fallback
	}
	return &ClientError{Kind: kind, Message: msg, Err: err}
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return strings.TrimSpace(msg[idx+2:])
	}
	return ""
}
