package service

import (
	"context"
	"errors"
	"testing"

	"github.com/cs1429/IronTrack/internal/domain"
	"github.com/cs1429/IronTrack/internal/repository/sqlite"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	store, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return NewTracker(store)
}

func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func assertFieldError(t *testing.T, err error, field string) {
	t.Helper()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Field != field {
		t.Fatalf("expected field %q, got %q", field, ve.Field)
	}
}

func TestCreateExerciseRequiresName(t *testing.T) {
	tracker := newTestTracker(t)
	_, err := tracker.CreateExercise(context.Background(), domain.CreateExerciseRequest{})
	assertFieldError(t, err, "name")
}

func TestCreateSplitValidatesNestedFields(t *testing.T) {
	tracker := newTestTracker(t)
	ctx := context.Background()

	squat, err := tracker.CreateExercise(ctx, domain.CreateExerciseRequest{Name: "Squat"})
	assertNoError(t, err)

	// Violations inside nested children surface the JSON field path
	_, err = tracker.CreateSplit(ctx, domain.CreateSplitRequest{
		Name: "Lower",
		SplitExercises: []domain.SplitExerciseInput{
			{ExerciseID: squat.ID, Sets: 0},
		},
	})
	assertFieldError(t, err, "splitExercises[0].sets")
}

func TestCreateWorkoutRejectsBadDate(t *testing.T) {
	tracker := newTestTracker(t)
	_, err := tracker.CreateWorkout(context.Background(), domain.CreateWorkoutRequest{Date: "yesterday"})
	assertFieldError(t, err, "date")
}

func TestCreateWorkoutAcceptsJavaScriptISOString(t *testing.T) {
	tracker := newTestTracker(t)
	ctx := context.Background()

	squat, err := tracker.CreateExercise(ctx, domain.CreateExerciseRequest{Name: "Squat"})
	assertNoError(t, err)

	// Date.prototype.toISOString emits fractional seconds
	w, err := tracker.CreateWorkout(ctx, domain.CreateWorkoutRequest{
		Date: "2024-05-01T07:30:00.000Z",
		Sets: []domain.SetInput{{ExerciseID: squat.ID, SetNumber: 1, Weight: 225, Reps: 5}},
	})
	assertNoError(t, err)
	if w.Date.IsZero() {
		t.Fatal("expected parsed workout date")
	}
}

func TestCreateWorkoutValidatesEffortLevel(t *testing.T) {
	tracker := newTestTracker(t)
	effort := "brutal"
	_, err := tracker.CreateWorkout(context.Background(), domain.CreateWorkoutRequest{
		Date: "2024-05-01T07:30:00Z",
		CardioSessions: []domain.CardioSessionInput{
			{CardioTypeID: 1, DurationSeconds: 600, EffortLevel: &effort},
		},
	})
	assertFieldError(t, err, "cardioSessions[0].effortLevel")
}

func TestGetExerciseStatsUnknownExercise(t *testing.T) {
	tracker := newTestTracker(t)
	_, err := tracker.GetExerciseStats(context.Background(), 999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestSeedStarterDataOnlyWhenEmpty(t *testing.T) {
	tracker := newTestTracker(t)
	ctx := context.Background()

	assertNoError(t, tracker.SeedStarterData(ctx))
	exercises, err := tracker.ListExercises(ctx)
	assertNoError(t, err)
	if len(exercises) != 3 {
		t.Fatalf("expected 3 starter exercises, got %d", len(exercises))
	}

	// A populated database is left untouched
	assertNoError(t, tracker.SeedStarterData(ctx))
	exercises, err = tracker.ListExercises(ctx)
	assertNoError(t, err)
	if len(exercises) != 3 {
		t.Fatalf("expected seeding to be skipped, got %d exercises", len(exercises))
	}
}
