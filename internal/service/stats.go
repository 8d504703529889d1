package service

import (
	"context"

	"github.com/cs1429/IronTrack/internal/domain"
)

// GetExerciseStats returns the per-day aggregated history for an exercise.
// The exercise must exist; an existing exercise with no logged sets yields
// an empty slice.
func (t *Tracker) GetExerciseStats(ctx context.Context, exerciseID int64) ([]domain.ExerciseStats, error) {
	if _, err := t.store.GetExercise(ctx, exerciseID); err != nil {
		return nil, err
	}
	return t.store.GetExerciseStats(ctx, exerciseID)
}
