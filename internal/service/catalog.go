package service

import (
	"context"

	"github.com/cs1429/IronTrack/internal/domain"
)

// ListExercises returns the exercise catalog.
func (t *Tracker) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return t.store.ListExercises(ctx)
}

// CreateExercise validates and creates a new exercise.
func (t *Tracker) CreateExercise(ctx context.Context, req domain.CreateExerciseRequest) (*domain.Exercise, error) {
	if err := t.checkValid(req); err != nil {
		return nil, err
	}
	return t.store.CreateExercise(ctx, req)
}

// UpdateExercise validates and applies a partial update to an exercise.
func (t *Tracker) UpdateExercise(ctx context.Context, id int64, req domain.UpdateExerciseRequest) (*domain.Exercise, error) {
	if err := t.checkValid(req); err != nil {
		return nil, err
	}
	return t.store.UpdateExercise(ctx, id, req)
}

// ListCardioTypes returns the cardio type catalog.
func (t *Tracker) ListCardioTypes(ctx context.Context) ([]domain.CardioType, error) {
	return t.store.ListCardioTypes(ctx)
}

// CreateCardioType validates and creates a user-defined cardio type.
func (t *Tracker) CreateCardioType(ctx context.Context, req domain.CreateCardioTypeRequest) (*domain.CardioType, error) {
	if err := t.checkValid(req); err != nil {
		return nil, err
	}
	return t.store.CreateCardioType(ctx, req)
}

// UpdateCardioType validates and applies a partial update to a cardio type.
func (t *Tracker) UpdateCardioType(ctx context.Context, id int64, req domain.UpdateCardioTypeRequest) (*domain.CardioType, error) {
	if err := t.checkValid(req); err != nil {
		return nil, err
	}
	return t.store.UpdateCardioType(ctx, id, req)
}

// DeleteCardioType removes a cardio type by id.
func (t *Tracker) DeleteCardioType(ctx context.Context, id int64) error {
	return t.store.DeleteCardioType(ctx, id)
}
