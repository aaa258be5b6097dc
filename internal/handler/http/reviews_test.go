package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-item-reviews/internal/service"
	"github.com/MKhiriev/go-item-reviews/internal/store"
	"github.com/MKhiriev/go-item-reviews/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithReviews(reviews service.ReviewService) *Handler {
	services := newTestServices()
	services.ReviewService = reviews
	return newTestHandlerWithServices(services)
}

func TestCreateReview(t *testing.T) {
	userID, itemID := uuid.New(), uuid.New()
	reviews := &mockReviewService{
		createReviewFn: func(_ context.Context, uid, iid uuid.UUID, request models.ReviewRequest) (models.Review, error) {
			assert.Equal(t, userID, uid)
			assert.Equal(t, itemID, iid)
			return models.Review{ReviewID: uuid.New(), UserID: uid, ItemID: iid, Score: request.Score, Text: request.Text}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/items/x/reviews", strings.NewReader(`{"score":5,"text":"great"}`))
	req = asUser(withURLParams(req, map[string]string{itemIDParam: itemID.String()}), userID)
	rec := httptest.NewRecorder()

	newHandlerWithReviews(reviews).createReview(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"score":5`)
}

func TestCreateReview_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "second review of the same item", serviceErr: store.ErrUniqueViolation, wantStatus: http.StatusConflict},
		{name: "unknown item", serviceErr: store.ErrReferenceNotFound, wantStatus: http.StatusUnprocessableEntity},
		{name: "score check", serviceErr: store.ErrConstraintViolation, wantStatus: http.StatusBadRequest},
		{name: "validation", serviceErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := &mockReviewService{
				createReviewFn: func(_ context.Context, _, _ uuid.UUID, _ models.ReviewRequest) (models.Review, error) {
					return models.Review{}, tt.serviceErr
				},
			}

			req := httptest.NewRequest(http.MethodPost, "/api/items/x/reviews", strings.NewReader(`{"score":3,"text":"ok"}`))
			req = asUser(withURLParams(req, map[string]string{itemIDParam: uuid.NewString()}), uuid.New())
			rec := httptest.NewRecorder()

			newHandlerWithReviews(reviews).createReview(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestListItemReviewsAndMyReviews(t *testing.T) {
	userID, itemID := uuid.New(), uuid.New()
	reviews := &mockReviewService{
		listReviewsForItemFn: func(_ context.Context, id uuid.UUID) ([]models.Review, error) {
			assert.Equal(t, itemID, id)
			return []models.Review{{ReviewID: uuid.New()}}, nil
		},
		listReviewsByUserFn: func(_ context.Context, id uuid.UUID) ([]models.Review, error) {
			assert.Equal(t, userID, id)
			return []models.Review{{ReviewID: uuid.New()}, {ReviewID: uuid.New()}}, nil
		},
	}
	h := newHandlerWithReviews(reviews)

	rec := httptest.NewRecorder()
	h.listItemReviews(rec, withURLParams(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{itemIDParam: itemID.String()}))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.myReviews(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/reviews/me", nil), userID))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, strings.Count(rec.Body.String(), `"id"`))
}

func TestUpdateReview(t *testing.T) {
	self, reviewID := uuid.New(), uuid.New()

	tests := []struct {
		name       string
		pathUserID uuid.UUID
		serviceErr error
		wantStatus int
		wantCalled bool
	}{
		{name: "own review", pathUserID: self, wantStatus: http.StatusOK, wantCalled: true},
		{name: "path names someone else", pathUserID: uuid.New(), wantStatus: http.StatusForbidden},
		{name: "not found or not owned", pathUserID: self, serviceErr: store.ErrNotFoundOrNotOwned, wantStatus: http.StatusNotFound, wantCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			reviews := &mockReviewService{
				updateReviewFn: func(_ context.Context, update models.ReviewUpdate) (models.Review, error) {
					called = true
					assert.Equal(t, models.ReviewUpdate{ReviewID: reviewID, UserID: self, Score: 2, Text: "meh"}, update)
					return models.Review{ReviewID: reviewID, UserID: self, Score: 2, Text: "meh"}, tt.serviceErr
				},
			}

			req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"score":2,"text":"meh"}`))
			req = asUser(withURLParams(req, map[string]string{
				userIDParam:   tt.pathUserID.String(),
				reviewIDParam: reviewID.String(),
			}), self)
			rec := httptest.NewRecorder()

			newHandlerWithReviews(reviews).updateReview(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}

func TestDeleteReview(t *testing.T) {
	self, reviewID := uuid.New(), uuid.New()
	reviews := &mockReviewService{
		deleteReviewFn: func(_ context.Context, rid, uid uuid.UUID) (models.Review, error) {
			if rid == reviewID && uid == self {
				return models.Review{ReviewID: rid}, nil
			}
			return models.Review{}, store.ErrNotFoundOrNotOwned
		},
	}
	h := newHandlerWithReviews(reviews)

	del := func(pathUser, review uuid.UUID) int {
		req := withURLParams(httptest.NewRequest(http.MethodDelete, "/", nil), map[string]string{
			userIDParam:   pathUser.String(),
			reviewIDParam: review.String(),
		})
		rec := httptest.NewRecorder()
		h.deleteReview(rec, asUser(req, self))
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, del(self, reviewID))
	assert.Equal(t, http.StatusNotFound, del(self, uuid.New()))
	assert.Equal(t, http.StatusForbidden, del(uuid.New(), reviewID))
}
