package handler

import "net/http"

// GetExerciseStats returns the per-day aggregated history for an exercise.
func (h *Handler) GetExerciseStats(w http.ResponseWriter, r *http.Request) {
	exerciseID, err := pathID(r, "exerciseId")
	if err != nil {
		respondError(w, err)
		return
	}

	stats, err := h.svc.GetExerciseStats(r.Context(), exerciseID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, stats, http.StatusOK)
}
