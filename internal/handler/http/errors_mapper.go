package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/rexora-cms/internal/app"
	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/internal/service"
	"github.com/MKhiriev/rexora-cms/internal/utils"
	"github.com/MKhiriev/rexora-cms/internal/validators"
	"github.com/MKhiriev/rexora-cms/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTooManyAttempts:         http.StatusTooManyRequests,
	service.ErrProjectNotFound:         http.StatusNotFound,
	service.ErrReviewNotFound:          http.StatusNotFound,
	service.ErrMediaNotFound:           http.StatusNotFound,
	service.ErrSettingsVersionChange:   http.StatusPreconditionFailed,
	service.ErrSavingMedia:             http.StatusInternalServerError,

	validators.ErrEmptyTitle:       http.StatusBadRequest,
	validators.ErrVideoRequired:    http.StatusBadRequest,
	validators.ErrInvalidFileType:  http.StatusBadRequest,
	validators.ErrFileTooLarge:     http.StatusBadRequest,
	validators.ErrNoDataToUpdate:   http.StatusBadRequest,
	validators.ErrInvalidIcon:      http.StatusBadRequest,
	validators.ErrInvalidEmail:     http.StatusBadRequest,
	validators.ErrInvalidURL:       http.StatusBadRequest,
	validators.ErrEmptyClientName:  http.StatusBadRequest,
	validators.ErrEmptyReviewText:  http.StatusBadRequest,
	validators.ErrInvalidRating:    http.StatusBadRequest,
	validators.ErrUnknownMediaKind: http.StatusBadRequest,

	models.ErrUnknownIcon: http.StatusBadRequest,

	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrRequestTooLarge:                  http.StatusRequestEntityTooLarge,
	ErrInvalidIfMatch:                   http.StatusBadRequest,
}

// errorMessageMap holds the wording shown to clients. Errors missing here
// are reported with their own text.
var errorMessageMap = map[error]string{
	service.ErrInvalidCredentials:      app.MsgInvalidCredentials,
	service.ErrTokenIsExpiredOrInvalid: app.MsgTokenIsExpiredOrInvalid,
	service.ErrTooManyAttempts:         app.MsgTooManyLoginAttempts,
	service.ErrProjectNotFound:         app.MsgProjectNotFound,
	service.ErrReviewNotFound:          app.MsgReviewNotFound,
	service.ErrMediaNotFound:           app.MsgMediaNotFound,
	service.ErrSettingsVersionChange:   app.MsgVersionConflict,

	validators.ErrVideoRequired:  app.MsgVideoRequired,
	validators.ErrNoDataToUpdate: app.MsgNoDataToUpdate,

	ErrEmptyAuthorizationHeader:         app.MsgNotAuthenticated,
	utils.ErrInvalidAuthorizationHeader: app.MsgNotAuthenticated,
	ErrRequestTooLarge:                  app.MsgRequestTooLarge,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// detailFromError never exposes the text of a server-side failure.
func detailFromError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return app.MsgInternalServerError
	}

	var mediaErr *validators.MediaError
	if errors.As(err, &mediaErr) {
		return mediaErr.Error()
	}

	// an unknown icon is reported the same way whether it failed decoding or
	// validation
	if errors.Is(err, models.ErrUnknownIcon) {
		return validators.ErrInvalidIcon.Error()
	}

	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}

	if errors.Is(err, service.ErrInvalidDataProvided) {
		return app.MsgInvalidDataProvided
	}
	return err.Error()
}

// writeError answers with {"detail": ...} and the status mapped from err.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg(msg)

	utils.WriteJSON(w, models.ErrorResponse{Detail: detailFromError(err, status)}, status)
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgRouteNotFound}, http.StatusNotFound)
}
