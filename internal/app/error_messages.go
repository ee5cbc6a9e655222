// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// CMS server handlers, middleware and the admin client.
//
// All Msg* constants are human-readable message strings that are written into
// the "detail" or "message" field of HTTP response bodies, or shown to the
// admin by the client. Keeping them in one place ensures consistent wording
// on both sides of the wire.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned when the supplied email/password
	// pair does not match the configured admin account.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgLoginSuccessful accompanies the token in a successful login
	// response.
	MsgLoginSuccessful = "Login successful"

	// MsgLoginFailed is the client-side fallback when the server gave no
	// usable message for a failed login.
	MsgLoginFailed = "Login failed"

	// MsgTooManyLoginAttempts is returned when a client IP exceeds the login
	// attempt budget of the current window.
	MsgTooManyLoginAttempts = "too many login attempts, try again later"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNotAuthenticated is returned when a privileged route is called
	// without a bearer token.
	MsgNotAuthenticated = "Not authenticated"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is either
	// expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "Invalid or expired token"

	// MsgProjectNotFound is returned for an unknown project id.
	MsgProjectNotFound = "Project not found"

	// MsgProjectCreated, MsgProjectUpdated and MsgProjectDeleted confirm
	// successful project writes.
	MsgProjectCreated = "Project created successfully"
	MsgProjectUpdated = "Project updated successfully"
	MsgProjectDeleted = "Project deleted successfully"

	// MsgReviewNotFound is returned for an unknown review id.
	MsgReviewNotFound = "Review not found"

	// MsgReviewDeleted confirms a review deletion.
	MsgReviewDeleted = "Review deleted successfully"

	// MsgNoDataToUpdate is returned when a settings save or a review update
	// carries no fields.
	MsgNoDataToUpdate = "No data to update"

	// MsgSettingsUpdated confirms a site settings save.
	MsgSettingsUpdated = "Site settings updated successfully"

	// MsgLogoUploaded confirms a logo upload.
	MsgLogoUploaded = "Logo uploaded successfully"

	// MsgVersionConflict is returned when the If-Match version no longer
	// matches the stored settings. The client should reload before saving.
	MsgVersionConflict = "site settings were changed by someone else, reload and try again"

	// MsgVideoRequired is returned when a project is created without a
	// video part.
	MsgVideoRequired = "Video file is required"

	// MsgMediaNotFound is returned for an unknown media key.
	MsgMediaNotFound = "Media not found"

	// MsgRouteNotFound is returned for unknown routes and methods.
	MsgRouteNotFound = "Not found"

	// MsgRequestTooLarge is returned when a multipart body exceeds the
	// server's upload cap.
	MsgRequestTooLarge = "request body is too large"

	// MsgServiceUnavailable is the client-side fallback when the server
	// could not be reached.
	MsgServiceUnavailable = "server is unavailable, check your connection"

	// MsgAPIRunning is the body of the status route.
	MsgAPIRunning = "Rexora Media API is running"

	// MsgRequestFailed is the client-side fallback when an admin action
	// fails and the server gave no message.
	MsgRequestFailed = "Request failed, please try again"
)
