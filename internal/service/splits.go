package service

import (
	"context"

	"github.com/cs1429/IronTrack/internal/domain"
)

// ListSplits returns every split with its prescribed children.
func (t *Tracker) ListSplits(ctx context.Context) ([]domain.SplitDetail, error) {
	return t.store.ListSplits(ctx)
}

// GetSplit returns one split with its prescribed children.
func (t *Tracker) GetSplit(ctx context.Context, id int64) (*domain.SplitDetail, error) {
	return t.store.GetSplit(ctx, id)
}

// CreateSplit validates and creates a split with its children.
func (t *Tracker) CreateSplit(ctx context.Context, req domain.CreateSplitRequest) (*domain.SplitDetail, error) {
	if err := t.checkValid(req); err != nil {
		return nil, err
	}
	return t.store.CreateSplit(ctx, req)
}

// DeleteSplit removes a split and its children.
func (t *Tracker) DeleteSplit(ctx context.Context, id int64) error {
	return t.store.DeleteSplit(ctx, id)
}

// ListSplitWorkouts returns the workouts logged against a split.
func (t *Tracker) ListSplitWorkouts(ctx context.Context, splitID int64) ([]domain.WorkoutDetail, error) {
	return t.store.ListSplitWorkouts(ctx, splitID)
}
