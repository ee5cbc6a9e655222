package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/rexora-cms/internal/adapter"
	"github.com/MKhiriev/rexora-cms/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		wantKind error
		wantMsg  string
	}{
		{
			name:     "transport",
			err:      fmt.Errorf("%w: get request: %w", adapter.ErrTransport, errors.New("connection refused")),
			fallback: "ignored",
			wantKind: ErrNetwork,
			wantMsg:  app.MsgServiceUnavailable,
		},
		{
			name:     "bad request keeps server message",
			err:      fmt.Errorf("%w: %s", adapter.ErrBadRequest, "Video size (12.00MB) exceeds maximum allowed size of 10MB"),
			wantKind: ErrValidation,
			wantMsg:  "Video size (12.00MB) exceeds maximum allowed size of 10MB",
		},
		{
			name:     "wrong credentials",
			err:      fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidCredentials),
			wantKind: ErrInvalidCredentials,
			wantMsg:  app.MsgInvalidCredentials,
		},
		{
			name:     "expired token",
			err:      fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgTokenIsExpiredOrInvalid),
			wantKind: ErrUnauthorized,
			wantMsg:  app.MsgTokenIsExpiredOrInvalid,
		},
		{
			name:     "not found without body uses fallback",
			err:      adapter.ErrNotFound,
			fallback: app.MsgProjectNotFound,
			wantKind: ErrNotFound,
			wantMsg:  app.MsgProjectNotFound,
		},
		{
			name:     "stale settings",
			err:      fmt.Errorf("%w: %s", adapter.ErrPreconditionFailed, app.MsgVersionConflict),
			wantKind: ErrSettingsVersionChange,
			wantMsg:  app.MsgVersionConflict,
		},
		{
			name:     "throttled",
			err:      fmt.Errorf("%w: %s", adapter.ErrTooManyRequests, app.MsgTooManyLoginAttempts),
			wantKind: ErrTooManyAttempts,
			wantMsg:  app.MsgTooManyLoginAttempts,
		},
		{
			name:     "server error",
			err:      fmt.Errorf("%w: %s", adapter.ErrInternalServerError, "Internal Server Error"),
			wantKind: ErrServer,
			wantMsg:  "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapAdapterError(tt.err, tt.fallback)

			var clientErr *ClientError
			require.ErrorAs(t, err, &clientErr)
			assert.ErrorIs(t, err, tt.wantKind)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestMapAdapterError_Nil(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil, "x"))
}

func TestMapAdapterError_InvalidCredentialsIsUnauthorized(t *testing.T) {
	err := mapAdapterError(fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidCredentials), "")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestExtractBody(t *testing.T) {
	assert.Equal(t, "Project not found", extractBody(errors.New("not found: Project not found")))
	assert.Equal(t, "a: b", extractBody(errors.New("x: a: b")))
	assert.Empty(t, extractBody(errors.New("plain")))
}
