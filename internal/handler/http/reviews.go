package http

import (
	"net/http"

	"github.com/MKhiriev/rexora-cms/internal/app"
	"github.com/MKhiriev/rexora-cms/internal/utils"
	"github.com/MKhiriev/rexora-cms/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.services.ReviewService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "error listing reviews")
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	utils.WriteJSON(w, reviews, http.StatusOK)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var in models.ReviewInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err, "Invalid JSON was passed")
		return
	}

	review, err := h.services.ReviewService.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err, "error creating review")
		return
	}

	utils.WriteJSON(w, review, http.StatusCreated)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	var u models.ReviewUpdate
	if err := decodeJSON(r, &u); err != nil {
		writeError(w, r, err, "Invalid JSON was passed")
		return
	}

	review, err := h.services.ReviewService.Update(r.Context(), chi.URLParam(r, "id"), u)
	if err != nil {
		writeError(w, r, err, "error updating review")
		return
	}

	utils.WriteJSON(w, review, http.StatusOK)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ReviewService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "error deleting review")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgReviewDeleted}, http.StatusOK)
}
