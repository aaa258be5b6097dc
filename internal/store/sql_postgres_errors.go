package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-item-reviews/internal/logger"
	"github.com/MKhiriev/go-item-reviews/internal/metrics"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed statement could succeed if
// issued again.
type ErrorClassification int

const (
	// NonRetryable covers constraint violations, bad input, schema errors and
	// anything unrecognised.
	NonRetryable ErrorClassification = iota

	// Retryable covers transient failures: lost connections, serialization
	// conflicts, deadlocks and a server that is starting or shutting down.
	Retryable
)

// String returns the label used in logs and metrics.
func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non_retryable"
}

// PostgresErrorClassifier classifies errors returned through the pgx driver.
// The store never retries on its own; the classification is reported in
// logs and the query error counter.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify inspects the SQLSTATE of a wrapped *pgconn.PgError. Errors without
// one are retryable only when pgconn reports that nothing reached the server.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	if pgconn.SafeToRetry(err) {
		return Retryable
	}
	return NonRetryable
}

// ClassifyPgError maps a SQLSTATE to a classification.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
// Retryable: class 08 (connection exception), class 40 (transaction
// rollback, including serialization failure and deadlock), and 57P01..57P03
// (admin/crash shutdown, cannot connect now). Everything else, notably
// classes 22, 23 and 42, is not.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code):
		return Retryable
	}

	switch pgErr.Code {
	case pgerrcode.AdminShutdown, pgerrcode.CrashShutdown, pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}

// mapPostgresError wraps err with the store sentinel matching its SQLSTATE.
// Errors that are not PostgreSQL errors, or carry no domain meaning, are
// wrapped with [ErrExecutingQuery].
func mapPostgresError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	switch {
	case pgErr.Code == pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
	case pgErr.Code == pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrReferenceNotFound, err)
	case pgErr.Code == pgerrcode.CheckViolation,
		pgErr.Code == pgerrcode.NotNullViolation,
		pgerrcode.IsDataException(pgErr.Code):
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// handleQueryError logs a failed statement with its retry classification,
// counts it and returns it mapped by [mapPostgresError].
func handleQueryError(ctx context.Context, classifier ErrorClassificator, fn, operation, table string, err error) error {
	classification := classifier.Classify(err).String()

	logger.FromContext(ctx).Err(err).
		Str("func", fn).
		Str("table", table).
		Str("classification", classification).
		Str("sqlstate", postgresErrorCode(err)).
		Msg("database statement failed")
	metrics.RecordQueryError(operation, table, classification)

	return mapPostgresError(err)
}

// postgresErrorCode returns the SQLSTATE of err, or "" for non-PostgreSQL errors.
func postgresErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
