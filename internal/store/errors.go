package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
// Errors raised by PostgreSQL are wrapped together with the sentinel, so the
// underlying *pgconn.PgError stays reachable through [errors.As].
var (
	// ErrNotFound is returned when a lookup by id or email matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrNotFoundOrNotOwned is returned when an update or delete filtered by
	// id and owner affected no row: either the record does not exist or it
	// belongs to someone else. The two cases are deliberately not told apart.
	ErrNotFoundOrNotOwned = errors.New("record not found or not owned by user")

	// ErrUniqueViolation is returned on unique_violation (23505), e.g. a
	// taken username, email or item name, or a second review of the same item.
	ErrUniqueViolation = errors.New("unique constraint violated")

	// ErrConstraintViolation is returned on check_violation (23514),
	// not_null_violation (23502) and data exceptions (class 22).
	ErrConstraintViolation = errors.New("constraint violated")

	// ErrReferenceNotFound is returned on foreign_key_violation (23503):
	// the referenced user, item or review does not exist.
	ErrReferenceNotFound = errors.New("referenced record does not exist")
)

// Low-level database operation errors. These wrap failures that happen
// before any domain mapping can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails for a reason with no domain meaning.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
