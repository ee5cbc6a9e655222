// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/rexora-cms/internal/app"
	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/internal/utils"
	"github.com/MKhiriev/rexora-cms/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.services.ProjectService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "error listing projects")
		return
	}

	summaries := make([]models.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, p.Summary(models.MediaURL))
	}

	utils.WriteJSON(w, summaries, http.StatusOK)
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.services.ProjectService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "error getting project")
		return
	}

	utils.WriteJSON(w, project.Detail(models.MediaURL), http.StatusOK)
}

// createProject accepts multipart/form-data with the title, description and
// category fields, a required video part and an optional thumbnail part.
func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := parseMultipart(r); err != nil {
		writeError(w, r, err, "error parsing project upload")
		return
	}
	defer r.MultipartForm.RemoveAll()

	video, err := formFile(r, "video")
	if err != nil {
		writeError(w, r, err, "error reading video part")
		return
	}
	defer closeMediaFile(video)

	thumbnail, err := formFile(r, "thumbnail")
	if err != nil {
		writeError(w, r, err, "error reading thumbnail part")
		return
	}
	defer closeMediaFile(thumbnail)

	meta := models.ProjectMetadata{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
	}

	// a missing video part becomes an empty file, which the service rejects
	var videoFile models.MediaFile
	if video != nil {
		videoFile = *video
	}

	project, err := h.services.ProjectService.Create(r.Context(), meta, videoFile, thumbnail)
	if err != nil {
		writeError(w, r, err, "error creating project")
		return
	}

	log.Info().Str("id", project.ID).Msg(app.MsgProjectCreated)
	utils.WriteJSON(w, project.Summary(models.MediaURL), http.StatusCreated)
}

// updateProject replaces the metadata only; media references never change.
func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	var meta models.ProjectMetadata
	if err := decodeJSON(r, &meta); err != nil {
		writeError(w, r, err, "Invalid JSON was passed")
		return
	}

	if _, err := h.services.ProjectService.UpdateMetadata(r.Context(), chi.URLParam(r, "id"), meta); err != nil {
		writeError(w, r, err, "error updating project")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgProjectUpdated}, http.StatusOK)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ProjectService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "error deleting project")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgProjectDeleted}, http.StatusOK)
}
