package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-item-reviews/internal/logger"
	"github.com/MKhiriev/go-item-reviews/internal/utils"
	"github.com/MKhiriev/go-item-reviews/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var request models.RegisterRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("id", registeredUser.UserID.String()).Msg("user registered")
	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("id", foundUser.UserID.String()).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString, User: foundUser}, http.StatusOK)
}

// me returns the identity carried by the verified token.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	utils.WriteJSON(w, claims.User(), http.StatusOK)
}

// deleteUser removes the authenticated account with everything it wrote.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserIsCurrentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AuthService.DeleteUser(r.Context(), userID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
