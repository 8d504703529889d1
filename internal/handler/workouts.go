package handler

import (
	"net/http"

	"github.com/cs1429/IronTrack/internal/domain"
)

// ListWorkouts returns every workout with its children, newest first.
func (h *Handler) ListWorkouts(w http.ResponseWriter, r *http.Request) {
	workouts, err := h.svc.ListWorkouts(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, workouts, http.StatusOK)
}

// GetWorkout returns one workout with its children.
func (h *Handler) GetWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	workout, err := h.svc.GetWorkout(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, workout, http.StatusOK)
}

// CreateWorkout creates a workout with its children.
func (h *Handler) CreateWorkout(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateWorkoutRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	workout, err := h.svc.CreateWorkout(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, workout, http.StatusCreated)
}

// UpdateWorkout applies a sparse child diff to a workout.
func (h *Handler) UpdateWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req domain.UpdateWorkoutRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	workout, err := h.svc.UpdateWorkout(r.Context(), id, req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, workout, http.StatusOK)
}

// DeleteWorkout removes a workout and its children.
func (h *Handler) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.svc.DeleteWorkout(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
