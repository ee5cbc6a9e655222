package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/rexora-cms/internal/app"
	"github.com/MKhiriev/rexora-cms/internal/utils"
	"github.com/MKhiriev/rexora-cms/models"
)

func (h *Handler) getSiteSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.services.SettingsService.Get(r.Context())
	if err != nil {
		writeError(w, r, err, "error getting site settings")
		return
	}

	w.Header().Set("ETag", utils.FormatETag(settings.Version))
	utils.WriteJSON(w, settings, http.StatusOK)
}

// replaceSiteSettings overwrites the whole document. With If-Match the save
// only succeeds when the stored version still matches.
func (h *Handler) replaceSiteSettings(w http.ResponseWriter, r *http.Request) {
	ifMatch, err := ifMatchVersion(r)
	if err != nil {
		writeError(w, r, err, "bad If-Match header")
		return
	}

	var settings models.SiteSettings
	if err = decodeJSON(r, &settings); err != nil {
		writeError(w, r, err, "Invalid JSON was passed")
		return
	}

	saved, err := h.services.SettingsService.Replace(r.Context(), settings, ifMatch)
	if err != nil {
		writeError(w, r, err, "error saving site settings")
		return
	}

	w.Header().Set("ETag", utils.FormatETag(saved.Version))
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgSettingsUpdated}, http.StatusOK)
}

func (h *Handler) uploadLogo(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(r); err != nil {
		writeError(w, r, err, "error parsing logo upload")
		return
	}
	defer r.MultipartForm.RemoveAll()

	logo, err := formFile(r, "logo")
	if err != nil {
		writeError(w, r, err, "error reading logo part")
		return
	}
	if logo == nil {
		logo = &models.MediaFile{}
	}
	defer closeMediaFile(logo)

	ref, err := h.services.SettingsService.UploadLogo(r.Context(), *logo)
	if err != nil {
		writeError(w, r, err, "error uploading logo")
		return
	}

	utils.WriteJSON(w, models.LogoResponse{Message: app.MsgLogoUploaded, Logo: ref}, http.StatusOK)
}

// ifMatchVersion returns 0 when the header is absent or "*".
func ifMatchVersion(r *http.Request) (int64, error) {
	header := strings.TrimSpace(r.Header.Get("If-Match"))
	if header == "" || header == "*" {
		return 0, nil
	}

	version, ok := utils.ParseETag(header)
	if !ok {
		return 0, ErrInvalidIfMatch
	}
	return version, nil
}
