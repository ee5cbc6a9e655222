package http

import (
	"net/http"

	"github.com/MKhiriev/rexora-cms/internal/app"
	"github.com/MKhiriev/rexora-cms/internal/utils"
	"github.com/MKhiriev/rexora-cms/models"
)

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.StatusResponse{Message: app.MsgAPIRunning, Status: "ok"}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.StatusResponse{Status: "healthy"}, http.StatusOK)
}
