package http

import (
	"net/http"

	"github.com/MKhiriev/rexora-cms/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetVersion(r.Context()), http.StatusOK)
}
