package handler

import (
	"net/http"

	"github.com/cs1429/IronTrack/internal/domain"
)

// ListExercises returns the exercise catalog.
func (h *Handler) ListExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.svc.ListExercises(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, exercises, http.StatusOK)
}

// CreateExercise creates a new exercise.
func (h *Handler) CreateExercise(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateExerciseRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	exercise, err := h.svc.CreateExercise(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, exercise, http.StatusCreated)
}

// UpdateExercise applies a partial update to an exercise.
func (h *Handler) UpdateExercise(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req domain.UpdateExerciseRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	exercise, err := h.svc.UpdateExercise(r.Context(), id, req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, exercise, http.StatusOK)
}
