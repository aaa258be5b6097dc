package http

import (
	"net/http"

	"github.com/MKhiriev/go-item-reviews/internal/utils"
	"github.com/MKhiriev/go-item-reviews/models"
)

func (h *Handler) listReviewComments(w http.ResponseWriter, r *http.Request) {
	reviewID, err := uuidParam(r, reviewIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	comments, err := h.services.CommentService.ListCommentsForReview(r.Context(), reviewID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}

// createComment comments on the review named by the path. The item segment
// only scopes the URL; the review id alone identifies the target.
func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	reviewID, err := uuidParam(r, reviewIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.CommentRequest
	if err = decodeBody(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	comment, err := h.services.CommentService.CreateComment(r.Context(), userID, reviewID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, comment, http.StatusCreated)
}

func (h *Handler) myComments(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	comments, err := h.services.CommentService.ListCommentsByUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}

func (h *Handler) updateComment(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserIsCurrentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	commentID, err := uuidParam(r, commentIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.CommentRequest
	if err = decodeBody(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	comment, err := h.services.CommentService.UpdateComment(r.Context(), models.CommentUpdate{
		CommentID: commentID,
		UserID:    userID,
		Text:      request.Text,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, comment, http.StatusOK)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserIsCurrentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	commentID, err := uuidParam(r, commentIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = h.services.CommentService.DeleteComment(r.Context(), commentID, userID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
