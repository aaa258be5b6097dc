package http

import (
	"net/http"

	"github.com/MKhiriev/go-item-reviews/internal/utils"
	"github.com/MKhiriev/go-item-reviews/models"
)

func (h *Handler) listItemReviews(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuidParam(r, itemIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	reviews, err := h.services.ReviewService.ListReviewsForItem(r.Context(), itemID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, reviews, http.StatusOK)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	itemID, err := uuidParam(r, itemIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.ReviewRequest
	if err = decodeBody(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	review, err := h.services.ReviewService.CreateReview(r.Context(), userID, itemID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, review, http.StatusCreated)
}

func (h *Handler) myReviews(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	reviews, err := h.services.ReviewService.ListReviewsByUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, reviews, http.StatusOK)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserIsCurrentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	reviewID, err := uuidParam(r, reviewIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.ReviewRequest
	if err = decodeBody(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	review, err := h.services.ReviewService.UpdateReview(r.Context(), models.ReviewUpdate{
		ReviewID: reviewID,
		UserID:   userID,
		Score:    request.Score,
		Text:     request.Text,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, review, http.StatusOK)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserIsCurrentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	reviewID, err := uuidParam(r, reviewIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = h.services.ReviewService.DeleteReview(r.Context(), reviewID, userID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
