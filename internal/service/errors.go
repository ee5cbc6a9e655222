package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrTooManyAttempts     = errors.New("too many login attempts")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrAdminIsNotConfigured  = errors.New("admin credentials are not configured")

	ErrProjectNotFound       = errors.New("project not found")
	ErrReviewNotFound        = errors.New("review not found")
	ErrMediaNotFound         = errors.New("media not found")
	ErrSettingsVersionChange = errors.New("site settings were changed by someone else")
	ErrSavingMedia           = errors.New("error saving media")
)

// Client-side errors.
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation error")
	ErrServer           = errors.New("server error")
	ErrNetwork          = errors.New("network error")
)
