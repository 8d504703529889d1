package handler

import (
	"net/http"

	"github.com/cs1429/IronTrack/internal/domain"
)

// ListSplits returns every split with its prescribed children.
func (h *Handler) ListSplits(w http.ResponseWriter, r *http.Request) {
	splits, err := h.svc.ListSplits(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, splits, http.StatusOK)
}

// GetSplit returns one split with its prescribed children.
func (h *Handler) GetSplit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	split, err := h.svc.GetSplit(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, split, http.StatusOK)
}

// CreateSplit creates a split with its children.
func (h *Handler) CreateSplit(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSplitRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	split, err := h.svc.CreateSplit(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, split, http.StatusCreated)
}

// DeleteSplit removes a split and its children.
func (h *Handler) DeleteSplit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.svc.DeleteSplit(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSplitWorkouts returns the workouts logged against a split.
func (h *Handler) ListSplitWorkouts(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	workouts, err := h.svc.ListSplitWorkouts(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, workouts, http.StatusOK)
}
