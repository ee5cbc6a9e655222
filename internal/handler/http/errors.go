// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrRequestTooLarge is reported when a multipart body exceeds the
	// configured upload cap.
	ErrRequestTooLarge = errors.New("request body is too large")

	// ErrInvalidIfMatch is returned when the If-Match header is present but
	// is not a version ETag.
	ErrInvalidIfMatch = errors.New("invalid `If-Match` header")
)
