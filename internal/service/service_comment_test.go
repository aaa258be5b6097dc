package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-item-reviews/internal/logger"
	"github.com/MKhiriev/go-item-reviews/internal/mock"
	"github.com/MKhiriev/go-item-reviews/internal/store"
	"github.com/MKhiriev/go-item-reviews/internal/validators"
	"github.com/MKhiriev/go-item-reviews/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCommentSvc(t *testing.T) (*commentService, *mock.MockCommentRepository) {
	t.Helper()
	repo := mock.NewMockCommentRepository(gomock.NewController(t))
	svc := NewCommentService(repo, validators.NewStructValidator(), logger.Nop()).(*commentService)
	return svc, repo
}

func TestCommentService_CreateComment(t *testing.T) {
	svc, repo := newTestCommentSvc(t)
	commentID, userID, reviewID := uuid.New(), uuid.New(), uuid.New()
	svc.ids = fixedIDs{id: commentID}

	expected := models.Comment{CommentID: commentID, UserID: userID, ReviewID: reviewID, Text: "agreed"}
	repo.EXPECT().CreateComment(gomock.Any(), expected).Return(expected, nil)

	got, err := svc.CreateComment(context.Background(), userID, reviewID, models.CommentRequest{Text: "agreed"})

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestCommentService_CreateComment_EmptyText(t *testing.T) {
	svc, _ := newTestCommentSvc(t)

	_, err := svc.CreateComment(context.Background(), uuid.New(), uuid.New(), models.CommentRequest{})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, store.ErrConstraintViolation)
}

func TestCommentService_CreateComment_Duplicate(t *testing.T) {
	svc, repo := newTestCommentSvc(t)
	repo.EXPECT().CreateComment(gomock.Any(), gomock.Any()).Return(models.Comment{}, store.ErrUniqueViolation)

	_, err := svc.CreateComment(context.Background(), uuid.New(), uuid.New(), models.CommentRequest{Text: "again"})

	assert.ErrorIs(t, err, store.ErrUniqueViolation)
}

func TestCommentService_ListComments(t *testing.T) {
	svc, repo := newTestCommentSvc(t)
	reviewID, userID := uuid.New(), uuid.New()

	forReview := []models.Comment{{CommentID: uuid.New(), ReviewID: reviewID}}
	byUser := []models.Comment{{CommentID: uuid.New(), UserID: userID}}

	repo.EXPECT().ListCommentsForReview(gomock.Any(), reviewID).Return(forReview, nil)
	repo.EXPECT().ListCommentsByUser(gomock.Any(), userID).Return(byUser, nil)

	got, err := svc.ListCommentsForReview(context.Background(), reviewID)
	require.NoError(t, err)
	assert.Equal(t, forReview, got)

	got, err = svc.ListCommentsByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, byUser, got)
}

func TestCommentService_ListCommentsByUser_Error(t *testing.T) {
	svc, repo := newTestCommentSvc(t)
	repo.EXPECT().ListCommentsByUser(gomock.Any(), gomock.Any()).Return(nil, store.ErrScanningRows)

	_, err := svc.ListCommentsByUser(context.Background(), uuid.New())

	assert.ErrorIs(t, err, store.ErrScanningRows)
}

func TestCommentService_UpdateComment(t *testing.T) {
	svc, repo := newTestCommentSvc(t)
	update := models.CommentUpdate{CommentID: uuid.New(), UserID: uuid.New(), Text: "edited"}

	updated := models.Comment{CommentID: update.CommentID, UserID: update.UserID, Text: "edited"}
	repo.EXPECT().UpdateComment(gomock.Any(), update).Return(updated, nil)

	got, err := svc.UpdateComment(context.Background(), update)

	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestCommentService_UpdateComment_NotOwned(t *testing.T) {
	svc, repo := newTestCommentSvc(t)
	repo.EXPECT().UpdateComment(gomock.Any(), gomock.Any()).Return(models.Comment{}, store.ErrNotFoundOrNotOwned)

	_, err := svc.UpdateComment(context.Background(), models.CommentUpdate{CommentID: uuid.New(), UserID: uuid.New(), Text: "x"})

	assert.ErrorIs(t, err, store.ErrNotFoundOrNotOwned)
}

func TestCommentService_DeleteComment(t *testing.T) {
	svc, repo := newTestCommentSvc(t)
	commentID, userID := uuid.New(), uuid.New()

	repo.EXPECT().DeleteComment(gomock.Any(), commentID, userID).Return(models.Comment{CommentID: commentID, UserID: userID}, nil)
	deleted, err := svc.DeleteComment(context.Background(), commentID, userID)
	require.NoError(t, err)
	assert.Equal(t, commentID, deleted.CommentID)

	repo.EXPECT().DeleteComment(gomock.Any(), commentID, userID).Return(models.Comment{}, store.ErrNotFoundOrNotOwned)
	_, err = svc.DeleteComment(context.Background(), commentID, userID)
	assert.ErrorIs(t, err, store.ErrNotFoundOrNotOwned)
}
