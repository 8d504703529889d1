package handler

import (
	"net/http"

	"github.com/cs1429/IronTrack/internal/domain"
)

// ListCardioTypes returns the cardio type catalog.
func (h *Handler) ListCardioTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.ListCardioTypes(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, types, http.StatusOK)
}

// CreateCardioType creates a user-defined cardio type.
func (h *Handler) CreateCardioType(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCardioTypeRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	ct, err := h.svc.CreateCardioType(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, ct, http.StatusCreated)
}

// UpdateCardioType applies a partial update to a cardio type.
func (h *Handler) UpdateCardioType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req domain.UpdateCardioTypeRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	ct, err := h.svc.UpdateCardioType(r.Context(), id, req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, ct, http.StatusOK)
}

// DeleteCardioType removes a cardio type.
func (h *Handler) DeleteCardioType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.svc.DeleteCardioType(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
