// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the admin login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned by a successful login. Token is the only field
// the client persists.
type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// VerifyResponse is returned by the session verification endpoint.
type VerifyResponse struct {
	Valid bool   `json:"valid"`
	Email string `json:"email"`
}

// SessionKey is the single storage key under which the client persists the
// bearer token. Every read and write of the session uses it.
const SessionKey = "admin_token"

// Session is the client-held authentication state. The zero value means
// "not authenticated".
type Session struct {
	Token string
}

// IsZero reports whether s holds no token.
func (s Session) IsZero() bool {
	return s.Token == ""
}

// BearerValue returns the Authorization header value for s.
func (s Session) BearerValue() string {
	return "Bearer " + s.Token
}
