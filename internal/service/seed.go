package service

import (
	"context"
	"time"

	"github.com/cs1429/IronTrack/internal/domain"
)

// SeedStarterData populates an empty database with a small starter data
// set. A database that already has any exercise is left untouched.
func (t *Tracker) SeedStarterData(ctx context.Context) error {
	existing, err := t.store.ListExercises(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	squat, err := t.store.CreateExercise(ctx, domain.CreateExerciseRequest{Name: "Squat"})
	if err != nil {
		return err
	}
	bench, err := t.store.CreateExercise(ctx, domain.CreateExerciseRequest{Name: "Bench Press"})
	if err != nil {
		return err
	}
	if _, err := t.store.CreateExercise(ctx, domain.CreateExerciseRequest{Name: "Deadlift"}); err != nil {
		return err
	}

	description := "Classic upper and lower body split"
	notes := "Heavy"
	_, err = t.store.CreateSplit(ctx, domain.CreateSplitRequest{
		Name:        "Upper/Lower",
		Description: &description,
		SplitExercises: []domain.SplitExerciseInput{
			{ExerciseID: bench.ID, DayNumber: 1, Sets: 4, RepMin: 6, RepMax: 8, Notes: &notes},
			{ExerciseID: squat.ID, DayNumber: 2, Sets: 4, RepMin: 6, RepMax: 8, Notes: &notes},
		},
	})
	if err != nil {
		return err
	}

	workoutNotes := "First workout!"
	_, err = t.store.CreateWorkout(ctx, time.Now().UTC(), domain.CreateWorkoutRequest{
		Notes: &workoutNotes,
		Sets: []domain.SetInput{
			{ExerciseID: squat.ID, SetNumber: 1, Weight: 135, Reps: 5},
			{ExerciseID: squat.ID, SetNumber: 2, Weight: 135, Reps: 5},
			{ExerciseID: bench.ID, SetNumber: 1, Weight: 95, Reps: 8},
		},
	})
	return err
}
