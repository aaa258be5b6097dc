package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-item-reviews/internal/logger"
	"github.com/MKhiriev/go-item-reviews/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reviewRowColumns = []string{"id", "user_id", "item_id", "score", "text", "created_at", "updated_at"}

func newTestReviewRepo(t *testing.T) (ReviewRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewReviewRepository(db, logger.Nop()), mock
}

func reviewRow(r models.Review) []driver.Value {
	return []driver.Value{r.ReviewID.String(), r.UserID.String(), r.ItemID.String(), r.Score, r.Text, r.CreatedAt, r.UpdatedAt}
}

func TestReviewRepository_CreateReview(t *testing.T) {
	repo, mock := newTestReviewRepo(t)
	now := time.Now()
	review := models.Review{ReviewID: uuid.New(), UserID: uuid.New(), ItemID: uuid.New(), Score: 4, Text: "solid", CreatedAt: now, UpdatedAt: now}

	mock.ExpectQuery("INSERT INTO reviews").
		WithArgs(review.ReviewID, review.UserID, review.ItemID, 4, "solid").
		WillReturnRows(sqlmock.NewRows(reviewRowColumns).AddRow(reviewRow(review)...))

	created, err := repo.CreateReview(context.Background(), review)
	require.NoError(t, err)
	assert.Equal(t, review.ReviewID, created.ReviewID)
	assert.Equal(t, 4, created.Score)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_CreateReview_ConstraintErrors(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr error
	}{
		{name: "second review of same item", code: pgerrcode.UniqueViolation, wantErr: ErrUniqueViolation},
		{name: "score out of range", code: pgerrcode.CheckViolation, wantErr: ErrConstraintViolation},
		{name: "unknown item", code: pgerrcode.ForeignKeyViolation, wantErr: ErrReferenceNotFound},
		{name: "missing text", code: pgerrcode.NotNullViolation, wantErr: ErrConstraintViolation},
		{name: "numeric out of range", code: pgerrcode.NumericValueOutOfRange, wantErr: ErrConstraintViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestReviewRepo(t)

			mock.ExpectQuery("INSERT INTO reviews").
				WillReturnError(pgError(tt.code))

			_, err := repo.CreateReview(context.Background(), models.Review{ReviewID: uuid.New(), Score: 9})
			assert.ErrorIs(t, err, tt.wantErr)

			var pgErr *pgconn.PgError
			require.ErrorAs(t, err, &pgErr)
			assert.Equal(t, tt.code, pgErr.Code)
		})
	}
}

func TestReviewRepository_ListReviewsForItem(t *testing.T) {
	repo, mock := newTestReviewRepo(t)
	itemID := uuid.New()
	newer := models.Review{ReviewID: uuid.New(), UserID: uuid.New(), ItemID: itemID, Score: 5, Text: "new", CreatedAt: time.Now()}
	older := models.Review{ReviewID: uuid.New(), UserID: uuid.New(), ItemID: itemID, Score: 2, Text: "old", CreatedAt: time.Now().Add(-time.Hour)}

	mock.ExpectQuery("FROM reviews WHERE item_id = \\$1 ORDER BY created_at DESC").
		WithArgs(itemID.String()).
		WillReturnRows(sqlmock.NewRows(reviewRowColumns).
			AddRow(reviewRow(newer)...).
			AddRow(reviewRow(older)...))

	reviews, err := repo.ListReviewsForItem(context.Background(), itemID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, newer.ReviewID, reviews[0].ReviewID)
	assert.Equal(t, older.ReviewID, reviews[1].ReviewID)
}

func TestReviewRepository_ListReviewsByUser_Empty(t *testing.T) {
	repo, mock := newTestReviewRepo(t)
	userID := uuid.New()

	mock.ExpectQuery("FROM reviews WHERE user_id = \\$1 ORDER BY created_at DESC").
		WithArgs(userID.String()).
		WillReturnRows(sqlmock.NewRows(reviewRowColumns))

	reviews, err := repo.ListReviewsByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}

func TestReviewRepository_ListReviewsByUser_QueryError(t *testing.T) {
	repo, mock := newTestReviewRepo(t)

	mock.ExpectQuery("FROM reviews").
		WillReturnError(pgError(pgerrcode.DeadlockDetected))

	_, err := repo.ListReviewsByUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestReviewRepository_AverageScoreForItem(t *testing.T) {
	tests := []struct {
		name string
		avg  float64
	}{
		{name: "with reviews", avg: 3.67},
		{name: "no reviews", avg: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestReviewRepo(t)
			itemID := uuid.New()

			mock.ExpectQuery("SELECT COALESCE\\(ROUND\\(AVG\\(score\\)::numeric, 2\\), 0\\)::float8 FROM reviews WHERE item_id = \\$1").
				WithArgs(itemID.String()).
				WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(tt.avg))

			avg, err := repo.AverageScoreForItem(context.Background(), itemID)
			require.NoError(t, err)
			assert.InDelta(t, tt.avg, avg, 1e-9)
		})
	}
}

func TestReviewRepository_UpdateReview(t *testing.T) {
	repo, mock := newTestReviewRepo(t)
	update := models.ReviewUpdate{ReviewID: uuid.New(), UserID: uuid.New(), Score: 3, Text: "changed my mind"}
	later := time.Now()
	stored := models.Review{ReviewID: update.ReviewID, UserID: update.UserID, ItemID: uuid.New(), Score: 3, Text: update.Text, CreatedAt: later.Add(-time.Hour), UpdatedAt: later}

	mock.ExpectQuery("UPDATE reviews SET score = \\$1, text = \\$2, updated_at = NOW\\(\\) WHERE id = \\$3 AND user_id = \\$4").
		WithArgs(3, update.Text, update.ReviewID.String(), update.UserID.String()).
		WillReturnRows(sqlmock.NewRows(reviewRowColumns).AddRow(reviewRow(stored)...))

	updated, err := repo.UpdateReview(context.Background(), update)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Score)
	assert.Equal(t, "changed my mind", updated.Text)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestReviewRepository_UpdateReview_NotOwned covers both a foreign review and
// a missing one: the filtered statement matches no row either way.
func TestReviewRepository_UpdateReview_NotOwned(t *testing.T) {
	repo, mock := newTestReviewRepo(t)

	mock.ExpectQuery("UPDATE reviews").
		WillReturnRows(sqlmock.NewRows(reviewRowColumns))

	_, err := repo.UpdateReview(context.Background(), models.ReviewUpdate{ReviewID: uuid.New(), UserID: uuid.New(), Score: 3, Text: "x"})
	assert.ErrorIs(t, err, ErrNotFoundOrNotOwned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_UpdateReview_ScoreOutOfRange(t *testing.T) {
	repo, mock := newTestReviewRepo(t)

	mock.ExpectQuery("UPDATE reviews").
		WillReturnError(pgError(pgerrcode.CheckViolation))

	_, err := repo.UpdateReview(context.Background(), models.ReviewUpdate{ReviewID: uuid.New(), UserID: uuid.New(), Score: 0, Text: "x"})
	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestReviewRepository_DeleteReview(t *testing.T) {
	repo, mock := newTestReviewRepo(t)
	reviewID, userID := uuid.New(), uuid.New()
	now := time.Now()
	stored := models.Review{ReviewID: reviewID, UserID: userID, ItemID: uuid.New(), Score: 4, Text: "gone", CreatedAt: now, UpdatedAt: now}

	mock.ExpectQuery("DELETE FROM reviews WHERE id = \\$1 AND user_id = \\$2 RETURNING id, user_id, item_id").
		WithArgs(reviewID.String(), userID.String()).
		WillReturnRows(sqlmock.NewRows(reviewRowColumns).AddRow(reviewRow(stored)...))

	deleted, err := repo.DeleteReview(context.Background(), reviewID, userID)
	require.NoError(t, err)
	assert.Equal(t, reviewID, deleted.ReviewID)
	assert.Equal(t, "gone", deleted.Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_DeleteReview_NotOwned(t *testing.T) {
	repo, mock := newTestReviewRepo(t)

	mock.ExpectQuery("DELETE FROM reviews").
		WillReturnRows(sqlmock.NewRows(reviewRowColumns))

	_, err := repo.DeleteReview(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFoundOrNotOwned)
}

func TestReviewRepository_DeleteReview_DriverError(t *testing.T) {
	repo, mock := newTestReviewRepo(t)

	mock.ExpectQuery("DELETE FROM reviews").
		WillReturnError(errors.New("conn closed"))

	_, err := repo.DeleteReview(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrNotFoundOrNotOwned)
}
