// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-item-reviews/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns           = []string{"id", "username", "email", "created_at"}
	userCredentialColumns = []string{"id", "username", "email", "password", "created_at"}
	itemColumns           = []string{"id", "name", "description", "average_score::float8", "created_at"}
	reviewColumns         = []string{"id", "user_id", "item_id", "score", "text", "created_at", "updated_at"}
	commentColumns        = []string{"id", "user_id", "review_id", "text", "created_at", "updated_at"}
)

// returning renders a RETURNING clause for columns.
func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// eqID matches column against id. uuid.UUID is a byte array, which sq.Eq
// would otherwise expand into an IN list.
func eqID(column string, id uuid.UUID) sq.Eq {
	return sq.Eq{column: id.String()}
}

func toSQL(builder sq.Sqlizer) (string, []any, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return toSQL(psql.Insert(user.TableName()).
		Columns("id", "username", "email", "password").
		Values(user.UserID, user.Username, user.Email, user.Password).
		Suffix(returning(userColumns)))
}

func buildFindUserByEmailQuery(email string) (string, []any, error) {
	return toSQL(psql.Select(userCredentialColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}))
}

func buildFindUserByIDQuery(userID uuid.UUID) (string, []any, error) {
	return toSQL(psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(eqID("id", userID)))
}

func buildDeleteUserQuery(userID uuid.UUID) (string, []any, error) {
	return toSQL(psql.Delete(models.User{}.TableName()).
		Where(eqID("id", userID)).
		Suffix("RETURNING id"))
}

// ── items ─────────────────────────────────────────────────────────────────────

func buildCreateItemQuery(item models.Item) (string, []any, error) {
	return toSQL(psql.Insert(item.TableName()).
		Columns("id", "name", "description").
		Values(item.ItemID, item.Name, item.Description).
		Suffix(returning(itemColumns)))
}

func buildListItemsQuery() (string, []any, error) {
	return toSQL(psql.Select(itemColumns...).
		From(models.Item{}.TableName()))
}

func buildFindItemByIDQuery(itemID uuid.UUID) (string, []any, error) {
	return toSQL(psql.Select(itemColumns...).
		From(models.Item{}.TableName()).
		Where(eqID("id", itemID)))
}

func buildDeleteItemQuery(itemID uuid.UUID) (string, []any, error) {
	return toSQL(psql.Delete(models.Item{}.TableName()).
		Where(eqID("id", itemID)).
		Suffix("RETURNING id"))
}

// ── reviews ───────────────────────────────────────────────────────────────────

func buildCreateReviewQuery(review models.Review) (string, []any, error) {
	return toSQL(psql.Insert(review.TableName()).
		Columns("id", "user_id", "item_id", "score", "text").
		Values(review.ReviewID, review.UserID, review.ItemID, review.Score, review.Text).
		Suffix(returning(reviewColumns)))
}

func buildListReviewsForItemQuery(itemID uuid.UUID) (string, []any, error) {
	return toSQL(psql.Select(reviewColumns...).
		From(models.Review{}.TableName()).
		Where(eqID("item_id", itemID)).
		OrderBy("created_at DESC"))
}

func buildListReviewsByUserQuery(userID uuid.UUID) (string, []any, error) {
	return toSQL(psql.Select(reviewColumns...).
		From(models.Review{}.TableName()).
		Where(eqID("user_id", userID)).
		OrderBy("created_at DESC"))
}

func buildAverageScoreQuery(itemID uuid.UUID) (string, []any, error) {
	return toSQL(psql.Select("COALESCE(ROUND(AVG(score)::numeric, 2), 0)::float8").
		From(models.Review{}.TableName()).
		Where(eqID("item_id", itemID)))
}

// buildUpdateReviewQuery filters by id and owner in the same statement.
func buildUpdateReviewQuery(update models.ReviewUpdate) (string, []any, error) {
	return toSQL(psql.Update(models.Review{}.TableName()).
		Set("score", update.Score).
		Set("text", update.Text).
		Set("updated_at", sq.Expr("NOW()")).
		Where(eqID("id", update.ReviewID)).
		Where(eqID("user_id", update.UserID)).
		Suffix(returning(reviewColumns)))
}

func buildDeleteReviewQuery(reviewID, userID uuid.UUID) (string, []any, error) {
	return toSQL(psql.Delete(models.Review{}.TableName()).
		Where(eqID("id", reviewID)).
		Where(eqID("user_id", userID)).
		Suffix(returning(reviewColumns)))
}

// ── comments ──────────────────────────────────────────────────────────────────

func buildCreateCommentQuery(comment models.Comment) (string, []any, error) {
	return toSQL(psql.Insert(comment.TableName()).
		Columns("id", "user_id", "review_id", "text").
		Values(comment.CommentID, comment.UserID, comment.ReviewID, comment.Text).
		Suffix(returning(commentColumns)))
}

func buildListCommentsForReviewQuery(reviewID uuid.UUID) (string, []any, error) {
	return toSQL(psql.Select(commentColumns...).
		From(models.Comment{}.TableName()).
		Where(eqID("review_id", reviewID)).
		OrderBy("created_at DESC"))
}

func buildListCommentsByUserQuery(userID uuid.UUID) (string, []any, error) {
	return toSQL(psql.Select(commentColumns...).
		From(models.Comment{}.TableName()).
		Where(eqID("user_id", userID)).
		OrderBy("created_at DESC"))
}

func buildUpdateCommentQuery(update models.CommentUpdate) (string, []any, error) {
	return toSQL(psql.Update(models.Comment{}.TableName()).
		Set("text", update.Text).
		Set("updated_at", sq.Expr("NOW()")).
		Where(eqID("id", update.CommentID)).
		Where(eqID("user_id", update.UserID)).
		Suffix(returning(commentColumns)))
}

func buildDeleteCommentQuery(commentID, userID uuid.UUID) (string, []any, error) {
	return toSQL(psql.Delete(models.Comment{}.TableName()).
		Where(eqID("id", commentID)).
		Where(eqID("user_id", userID)).
		Suffix(returning(commentColumns)))
}
