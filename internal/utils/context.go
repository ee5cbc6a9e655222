// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AdminEmailCtxKey is the key used to store the authenticated admin e-mail
// in the request context. It is set by the auth middleware after the bearer
// token has been verified.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.AdminEmailCtxKey, "admin@example.com")
var AdminEmailCtxKey = contextKey("adminEmail")

// GetAdminEmailFromContext retrieves the authenticated admin e-mail.
//
// Returns the e-mail and an ok flag:
//   - ok == true:  value is found, is a string and is non-empty
//   - ok == false: value is missing, empty or has an unexpected type
func GetAdminEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(AdminEmailCtxKey).(string)
	return email, ok && email != ""
}
