package service

import (
	"context"
	"time"

	"github.com/cs1429/IronTrack/internal/domain"
)

// ListWorkouts returns every workout with its children, newest first.
func (t *Tracker) ListWorkouts(ctx context.Context) ([]domain.WorkoutDetail, error) {
	return t.store.ListWorkouts(ctx)
}

// GetWorkout returns one workout with its children.
func (t *Tracker) GetWorkout(ctx context.Context, id int64) (*domain.WorkoutDetail, error) {
	return t.store.GetWorkout(ctx, id)
}

// CreateWorkout validates the request, parses its ISO 8601 date and creates
// the workout with its children.
func (t *Tracker) CreateWorkout(ctx context.Context, req domain.CreateWorkoutRequest) (*domain.WorkoutDetail, error) {
	if err := t.checkValid(req); err != nil {
		return nil, err
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return nil, &domain.ValidationError{Field: "date", Message: "must be an ISO 8601 timestamp"}
	}
	return t.store.CreateWorkout(ctx, date, req)
}

// UpdateWorkout validates and applies a sparse child diff to a workout.
func (t *Tracker) UpdateWorkout(ctx context.Context, id int64, req domain.UpdateWorkoutRequest) (*domain.WorkoutDetail, error) {
	if err := t.checkValid(req); err != nil {
		return nil, err
	}
	return t.store.UpdateWorkout(ctx, id, req)
}

// DeleteWorkout removes a workout and its children.
func (t *Tracker) DeleteWorkout(ctx context.Context, id int64) error {
	return t.store.DeleteWorkout(ctx, id)
}
