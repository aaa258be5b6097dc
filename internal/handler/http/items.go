package http

import (
	"net/http"

	"github.com/MKhiriev/go-item-reviews/internal/utils"
	"github.com/MKhiriev/go-item-reviews/models"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.ItemService.ListItems(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var request models.CreateItemRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.services.ItemService.CreateItem(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusCreated)
}

// getItem answers with the item, its reviews and their average score.
func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuidParam(r, itemIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	details, err := h.services.ItemService.GetItemWithReviews(r.Context(), itemID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, details, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuidParam(r, itemIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ItemService.DeleteItem(r.Context(), itemID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
