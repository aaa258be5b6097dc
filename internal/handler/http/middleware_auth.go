package http

import (
	"net/http"

	"github.com/MKhiriev/go-item-reviews/internal/logger"
	"github.com/MKhiriev/go-item-reviews/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores
// the verified claims and the user's ID in the request context (see
// [utils.WithUser]) before delegating to the next handler.
//
// Requests are rejected with:
//   - 401 Unauthorized if the header is absent ([ErrEmptyAuthorizationHeader])
//     or is not a "Bearer <token>" pair ([ErrInvalidAuthorizationHeader]).
//   - 403 Forbidden if the token fails verification (bad signature, wrong
//     issuer, expired, malformed).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		log := logger.FromContext(ctx).With().Str("user_id", token.UserClaims.UserID.String()).Logger()

		ctx = utils.WithUser(log.WithContext(ctx), token.UserClaims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
