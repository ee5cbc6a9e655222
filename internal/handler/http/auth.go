package http

import (
	"net/http"

	"github.com/MKhiriev/rexora-cms/internal/app"
	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/internal/utils"
	"github.com/MKhiriev/rexora-cms/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		writeError(w, r, err, "Invalid JSON was passed")
		return
	}

	token, err := h.services.AuthService.Login(ctx, creds, utils.ClientIP(r))
	if err != nil {
		writeError(w, r, err, "login failed")
		return
	}

	log.Info().Msg("admin logged in")
	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString, Message: app.MsgLoginSuccessful}, http.StatusOK)
}

// verify is mounted behind auth, so reaching it means the token is valid.
func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	email, _ := utils.GetAdminEmailFromContext(r.Context())
	utils.WriteJSON(w, models.VerifyResponse{Valid: true, Email: email}, http.StatusOK)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.StatsService.Dashboard(r.Context()), http.StatusOK)
}
