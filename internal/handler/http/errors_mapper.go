package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-item-reviews/internal/logger"
	"github.com/MKhiriev/go-item-reviews/internal/service"
	"github.com/MKhiriev/go-item-reviews/internal/store"
)

// errorStatuses is walked in order and the first sentinel found in an error
// chain decides the status. A chain may carry several sentinels, e.g. a
// query error wrapping context.DeadlineExceeded, so the deadline comes first.
var errorStatuses = []struct {
	err    error
	status int
}{
	{context.DeadlineExceeded, http.StatusGatewayTimeout},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidPathParam, http.StatusBadRequest},
	{ErrNoUserInContext, http.StatusUnauthorized},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrMissingToken, http.StatusUnauthorized},
	{service.ErrInvalidToken, http.StatusForbidden},
	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},

	{store.ErrNotFound, http.StatusNotFound},
	{store.ErrNotFoundOrNotOwned, http.StatusNotFound},
	{store.ErrUniqueViolation, http.StatusConflict},
	{store.ErrConstraintViolation, http.StatusBadRequest},
	{store.ErrReferenceNotFound, http.StatusUnprocessableEntity},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

// statusFromError returns the status of the first listed sentinel found in
// err's chain together with that sentinel, or 500 and nil.
func statusFromError(err error) (int, error) {
	for _, entry := range errorStatuses {
		if errors.Is(err, entry.err) {
			return entry.status, entry.err
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError logs err and answers with its mapped status as plain text.
//
// Server errors expose only the status text. Validation failures expose the
// full message so the client sees the offending fields; any other client
// error exposes the sentinel message without driver details.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, target := statusFromError(err)

	message := http.StatusText(status)
	switch {
	case status >= http.StatusInternalServerError:
		log.Error().Err(err).Int("status", status).Msg("request failed")
	case errors.Is(err, service.ErrInvalidDataProvided):
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
		message = err.Error()
	default:
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
		message = target.Error()
	}

	http.Error(w, message, status)
}
