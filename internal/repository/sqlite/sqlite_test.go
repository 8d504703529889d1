package sqlite

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/cs1429/IronTrack/internal/domain"
)

// ============================================================================
// Test Helpers
// ============================================================================

// newTestStore creates an in-memory SQLite store for testing
func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// assertNoError fails the test if err is not nil
func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// assertEqual fails the test if expected != actual
func assertEqual(t *testing.T, expected, actual interface{}) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Fatalf("expected %v, got %v", expected, actual)
	}
}

// assertNotFound fails the test unless err matches the not-found sentinel
func assertNotFound(t *testing.T, err error) {
	t.Helper()
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

// assertValidationError fails the test unless err is a validation error
func assertValidationError(t *testing.T, err error, field string) {
	t.Helper()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	assertEqual(t, field, ve.Field)
}

func createExercise(t *testing.T, store *Store, name string) *domain.Exercise {
	t.Helper()
	e, err := store.CreateExercise(context.Background(), domain.CreateExerciseRequest{Name: name})
	assertNoError(t, err)
	return e
}

func createWorkout(t *testing.T, store *Store, date time.Time, sets []domain.SetInput) *domain.WorkoutDetail {
	t.Helper()
	w, err := store.CreateWorkout(context.Background(), date, domain.CreateWorkoutRequest{Sets: sets})
	assertNoError(t, err)
	return w
}

// ============================================================================
// Exercise Tests
// ============================================================================

func TestExerciseCRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	e := createExercise(t, store, "Squat")
	assertEqual(t, "Squat", e.Name)

	got, err := store.GetExercise(ctx, e.ID)
	assertNoError(t, err)
	assertEqual(t, e.ID, got.ID)

	newName := "Back Squat"
	updated, err := store.UpdateExercise(ctx, e.ID, domain.UpdateExerciseRequest{Name: &newName})
	assertNoError(t, err)
	assertEqual(t, "Back Squat", updated.Name)

	list, err := store.ListExercises(ctx)
	assertNoError(t, err)
	assertEqual(t, 1, len(list))
}

func TestExerciseUniqueName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	createExercise(t, store, "Squat")
	_, err := store.CreateExercise(ctx, domain.CreateExerciseRequest{Name: "Squat"})
	assertValidationError(t, err, "name")

	// Failed create leaves the store unchanged
	list, err := store.ListExercises(ctx)
	assertNoError(t, err)
	assertEqual(t, 1, len(list))
}

func TestExerciseUpdateNotFound(t *testing.T) {
	store := newTestStore(t)
	name := "Ghost"
	_, err := store.UpdateExercise(context.Background(), 999, domain.UpdateExerciseRequest{Name: &name})
	assertNotFound(t, err)
}

// ============================================================================
// Cardio Type Tests
// ============================================================================

func TestSeedBuiltInCardioTypes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	assertNoError(t, store.SeedBuiltInCardioTypes(ctx))
	types, err := store.ListCardioTypes(ctx)
	assertNoError(t, err)
	assertEqual(t, 12, len(types))
	for _, ct := range types {
		if !ct.IsBuiltIn {
			t.Fatalf("seeded type %q should be built-in", ct.Name)
		}
	}

	// Seeding again never duplicates
	assertNoError(t, store.SeedBuiltInCardioTypes(ctx))
	types, err = store.ListCardioTypes(ctx)
	assertNoError(t, err)
	assertEqual(t, 12, len(types))
}

func TestSeedPreservesUserEdits(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	assertNoError(t, store.SeedBuiltInCardioTypes(ctx))

	var target *domain.CardioType
	types, err := store.ListCardioTypes(ctx)
	assertNoError(t, err)
	for i := range types {
		if types[i].Name == "Swimming" {
			target = &types[i]
		}
	}
	if target == nil {
		t.Fatal("expected Swimming in seeded catalog")
	}

	desc := "Open water only"
	_, err = store.UpdateCardioType(ctx, target.ID, domain.UpdateCardioTypeRequest{Description: &desc})
	assertNoError(t, err)

	assertNoError(t, store.SeedBuiltInCardioTypes(ctx))
	got, err := store.GetCardioType(ctx, target.ID)
	assertNoError(t, err)
	assertEqual(t, "Open water only", *got.Description)
}

func TestCardioTypeCRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ct, err := store.CreateCardioType(ctx, domain.CreateCardioTypeRequest{
		Name:     "Sled Push",
		Category: "other",
	})
	assertNoError(t, err)
	assertEqual(t, false, ct.IsBuiltIn)

	show := true
	updated, err := store.UpdateCardioType(ctx, ct.ID, domain.UpdateCardioTypeRequest{ShowDistance: &show})
	assertNoError(t, err)
	assertEqual(t, true, updated.ShowDistance)

	assertNoError(t, store.DeleteCardioType(ctx, ct.ID))
	_, err = store.GetCardioType(ctx, ct.ID)
	assertNotFound(t, err)
}

func TestCardioTypeDeleteNotFound(t *testing.T) {
	store := newTestStore(t)
	assertNotFound(t, store.DeleteCardioType(context.Background(), 42))
}

// ============================================================================
// Split Tests
// ============================================================================

func TestCreateSplitWithChildren(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	assertNoError(t, store.SeedBuiltInCardioTypes(ctx))

	bench := createExercise(t, store, "Bench Press")
	types, err := store.ListCardioTypes(ctx)
	assertNoError(t, err)

	split, err := store.CreateSplit(ctx, domain.CreateSplitRequest{
		Name:         "Push/Pull",
		NumberOfDays: 2,
		SplitExercises: []domain.SplitExerciseInput{
			{ExerciseID: bench.ID, DayNumber: 1, Sets: 4, RepMin: 6, RepMax: 8},
		},
		SplitCardio: []domain.SplitCardioInput{
			{CardioTypeID: types[0].ID, DayNumber: 2},
		},
	})
	assertNoError(t, err)
	assertEqual(t, 1, len(split.SplitExercises))
	assertEqual(t, 1, len(split.SplitCardio))
	assertEqual(t, "Bench Press", split.SplitExercises[0].Exercise.Name)

	got, err := store.GetSplit(ctx, split.ID)
	assertNoError(t, err)
	assertEqual(t, split.ID, got.ID)
	assertEqual(t, 1, len(got.SplitExercises))
}

func TestSplitDefaultsNumberOfDays(t *testing.T) {
	store := newTestStore(t)
	split, err := store.CreateSplit(context.Background(), domain.CreateSplitRequest{Name: "Minimal"})
	assertNoError(t, err)
	assertEqual(t, int64(1), split.NumberOfDays)
}

func TestSplitUniqueName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.CreateSplit(ctx, domain.CreateSplitRequest{Name: "PPL"})
	assertNoError(t, err)
	_, err = store.CreateSplit(ctx, domain.CreateSplitRequest{Name: "PPL"})
	assertValidationError(t, err, "name")
}

func TestDeleteSplitCascades(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	squat := createExercise(t, store, "Squat")
	split, err := store.CreateSplit(ctx, domain.CreateSplitRequest{
		Name: "Lower",
		SplitExercises: []domain.SplitExerciseInput{
			{ExerciseID: squat.ID, Sets: 5},
		},
	})
	assertNoError(t, err)

	assertNoError(t, store.DeleteSplit(ctx, split.ID))

	_, err = store.GetSplit(ctx, split.ID)
	assertNotFound(t, err)

	var orphans int
	err = store.db.QueryRow(`SELECT COUNT(*) FROM split_exercises WHERE split_id = ?`, split.ID).Scan(&orphans)
	assertNoError(t, err)
	assertEqual(t, 0, orphans)
}

func TestDeleteSplitNotFound(t *testing.T) {
	store := newTestStore(t)
	assertNotFound(t, store.DeleteSplit(context.Background(), 404))
}

func TestListSplitWorkouts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	squat := createExercise(t, store, "Squat")
	split, err := store.CreateSplit(ctx, domain.CreateSplitRequest{Name: "Lower"})
	assertNoError(t, err)

	_, err = store.CreateWorkout(ctx, time.Now(), domain.CreateWorkoutRequest{
		SplitID: &split.ID,
		Sets:    []domain.SetInput{{ExerciseID: squat.ID, SetNumber: 1, Weight: 135, Reps: 5}},
	})
	assertNoError(t, err)
	createWorkout(t, store, time.Now(), []domain.SetInput{{ExerciseID: squat.ID, SetNumber: 1, Weight: 95, Reps: 5}})

	workouts, err := store.ListSplitWorkouts(ctx, split.ID)
	assertNoError(t, err)
	assertEqual(t, 1, len(workouts))

	_, err = store.ListSplitWorkouts(ctx, 999)
	assertNotFound(t, err)
}

// ============================================================================
// Workout Tests
// ============================================================================

func TestCreateWorkoutDefaultsWeightUnit(t *testing.T) {
	store := newTestStore(t)
	squat := createExercise(t, store, "Squat")

	w := createWorkout(t, store, time.Now(), []domain.SetInput{
		{ExerciseID: squat.ID, SetNumber: 1, Weight: 225, Reps: 5},
	})
	assertEqual(t, 1, len(w.Sets))
	assertEqual(t, "lbs", w.Sets[0].WeightUnit)
	assertEqual(t, "Squat", w.Sets[0].Exercise.Name)
}

func TestWorkoutSetsOrderedBySetNumber(t *testing.T) {
	store := newTestStore(t)
	squat := createExercise(t, store, "Squat")

	w := createWorkout(t, store, time.Now(), []domain.SetInput{
		{ExerciseID: squat.ID, SetNumber: 3, Weight: 100, Reps: 5},
		{ExerciseID: squat.ID, SetNumber: 1, Weight: 100, Reps: 5},
		{ExerciseID: squat.ID, SetNumber: 2, Weight: 100, Reps: 5},
	})
	assertEqual(t, int64(1), w.Sets[0].SetNumber)
	assertEqual(t, int64(2), w.Sets[1].SetNumber)
	assertEqual(t, int64(3), w.Sets[2].SetNumber)
}

func TestListWorkoutsNewestFirst(t *testing.T) {
	store := newTestStore(t)
	squat := createExercise(t, store, "Squat")

	old := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	recent := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	createWorkout(t, store, old, []domain.SetInput{{ExerciseID: squat.ID, SetNumber: 1, Weight: 100, Reps: 5}})
	createWorkout(t, store, recent, []domain.SetInput{{ExerciseID: squat.ID, SetNumber: 1, Weight: 105, Reps: 5}})

	workouts, err := store.ListWorkouts(context.Background())
	assertNoError(t, err)
	assertEqual(t, 2, len(workouts))
	if !workouts[0].Date.After(workouts[1].Date) {
		t.Fatalf("expected newest first, got %v then %v", workouts[0].Date, workouts[1].Date)
	}
}

func TestUpdateWorkoutThreeWayDiff(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	squat := createExercise(t, store, "Squat")
	bench := createExercise(t, store, "Bench Press")

	w := createWorkout(t, store, time.Now(), []domain.SetInput{
		{ExerciseID: squat.ID, SetNumber: 1, Weight: 100, Reps: 5},
		{ExerciseID: squat.ID, SetNumber: 2, Weight: 100, Reps: 5},
	})

	keepID := w.Sets[0].ID
	dropID := w.Sets[1].ID
	notes := "heavier today"
	updated, err := store.UpdateWorkout(ctx, w.ID, domain.UpdateWorkoutRequest{
		Notes:         &notes,
		DeletedSetIDs: []int64{dropID},
		Sets: []domain.SetInput{
			{ID: &keepID, ExerciseID: squat.ID, SetNumber: 1, Weight: 110, Reps: 5},
			{ExerciseID: bench.ID, SetNumber: 2, Weight: 135, Reps: 8},
		},
	})
	assertNoError(t, err)
	assertEqual(t, "heavier today", *updated.Notes)
	assertEqual(t, 2, len(updated.Sets))
	assertEqual(t, int64(110), updated.Sets[0].Weight)
	assertEqual(t, keepID, updated.Sets[0].ID)
	assertEqual(t, bench.ID, updated.Sets[1].ExerciseID)
	if updated.Sets[1].ID == dropID {
		t.Fatal("inserted set must not reuse the deleted id")
	}
}

func TestUpdateWorkoutReconciliationIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	squat := createExercise(t, store, "Squat")

	w := createWorkout(t, store, time.Now(), []domain.SetInput{
		{ExerciseID: squat.ID, SetNumber: 1, Weight: 100, Reps: 5},
		{ExerciseID: squat.ID, SetNumber: 2, Weight: 105, Reps: 3},
	})

	payload := domain.UpdateWorkoutRequest{Sets: []domain.SetInput{
		{ID: &w.Sets[0].ID, ExerciseID: squat.ID, SetNumber: 1, Weight: 100, Reps: 5},
		{ID: &w.Sets[1].ID, ExerciseID: squat.ID, SetNumber: 2, Weight: 105, Reps: 3},
	}}

	first, err := store.UpdateWorkout(ctx, w.ID, payload)
	assertNoError(t, err)
	second, err := store.UpdateWorkout(ctx, w.ID, payload)
	assertNoError(t, err)

	assertEqual(t, 2, len(second.Sets))
	assertEqual(t, first.Sets, second.Sets)
}

func TestUpdateWorkoutNotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.UpdateWorkout(context.Background(), 12345, domain.UpdateWorkoutRequest{})
	assertNotFound(t, err)
}

func TestDeleteWorkoutCascades(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	squat := createExercise(t, store, "Squat")

	w := createWorkout(t, store, time.Now(), []domain.SetInput{
		{ExerciseID: squat.ID, SetNumber: 1, Weight: 100, Reps: 5},
	})

	assertNoError(t, store.DeleteWorkout(ctx, w.ID))

	_, err := store.GetWorkout(ctx, w.ID)
	assertNotFound(t, err)

	var orphans int
	err = store.db.QueryRow(`SELECT COUNT(*) FROM sets WHERE workout_id = ?`, w.ID).Scan(&orphans)
	assertNoError(t, err)
	assertEqual(t, 0, orphans)

	// Deleting again is a no-op
	assertNoError(t, store.DeleteWorkout(ctx, w.ID))
}

func TestWorkoutWithCardioSession(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	assertNoError(t, store.SeedBuiltInCardioTypes(ctx))

	types, err := store.ListCardioTypes(ctx)
	assertNoError(t, err)
	var run *domain.CardioType
	for i := range types {
		if types[i].Name == "Outdoor Run" {
			run = &types[i]
		}
	}

	distance := 3.1
	w, err := store.CreateWorkout(ctx, time.Now(), domain.CreateWorkoutRequest{
		CardioSessions: []domain.CardioSessionInput{
			{CardioTypeID: run.ID, DurationSeconds: 1800, Distance: &distance},
		},
	})
	assertNoError(t, err)
	assertEqual(t, 1, len(w.CardioSessions))
	assertEqual(t, "Outdoor Run", w.CardioSessions[0].CardioType.Name)
	assertEqual(t, 3.1, *w.CardioSessions[0].Distance)
}

// ============================================================================
// Statistics Tests
// ============================================================================

func TestExerciseStatsAggregation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	squat := createExercise(t, store, "Squat")

	day1 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	createWorkout(t, store, day1, []domain.SetInput{
		{ExerciseID: squat.ID, SetNumber: 1, Weight: 100, Reps: 5},
		{ExerciseID: squat.ID, SetNumber: 2, Weight: 120, Reps: 3},
	})
	createWorkout(t, store, day2, []domain.SetInput{
		{ExerciseID: squat.ID, SetNumber: 1, Weight: 110, Reps: 8},
	})

	stats, err := store.GetExerciseStats(ctx, squat.ID)
	assertNoError(t, err)
	assertEqual(t, 2, len(stats))

	assertEqual(t, "2024-03-01", stats[0].Date)
	assertEqual(t, int64(120), stats[0].MaxWeight)
	assertEqual(t, int64(3), stats[0].MaxWeightReps)
	assertEqual(t, int64(860), stats[0].TotalVolume)

	assertEqual(t, "2024-03-02", stats[1].Date)
	assertEqual(t, int64(110), stats[1].MaxWeight)
	assertEqual(t, int64(8), stats[1].MaxWeightReps)
	assertEqual(t, int64(880), stats[1].TotalVolume)
}

func TestExerciseStatsTieKeepsEarlierSet(t *testing.T) {
	store := newTestStore(t)
	squat := createExercise(t, store, "Squat")

	day := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	createWorkout(t, store, day, []domain.SetInput{
		{ExerciseID: squat.ID, SetNumber: 1, Weight: 100, Reps: 5},
		{ExerciseID: squat.ID, SetNumber: 2, Weight: 100, Reps: 8},
	})

	stats, err := store.GetExerciseStats(context.Background(), squat.ID)
	assertNoError(t, err)
	assertEqual(t, int64(100), stats[0].MaxWeight)
	assertEqual(t, int64(5), stats[0].MaxWeightReps)
}

func TestExerciseStatsZeroWeightDayKeepsDefaultUnit(t *testing.T) {
	store := newTestStore(t)
	squat := createExercise(t, store, "Squat")

	day := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	createWorkout(t, store, day, []domain.SetInput{
		{ExerciseID: squat.ID, SetNumber: 1, Weight: 0, Reps: 10, WeightUnit: "kg"},
		{ExerciseID: squat.ID, SetNumber: 2, Weight: 0, Reps: 10, WeightUnit: "kg"},
	})

	stats, err := store.GetExerciseStats(context.Background(), squat.ID)
	assertNoError(t, err)
	assertEqual(t, int64(0), stats[0].MaxWeight)
	assertEqual(t, "lbs", stats[0].MaxWeightUnit)
}

func TestExerciseStatsEmpty(t *testing.T) {
	store := newTestStore(t)
	squat := createExercise(t, store, "Squat")

	stats, err := store.GetExerciseStats(context.Background(), squat.ID)
	assertNoError(t, err)
	assertEqual(t, 0, len(stats))
}

// ============================================================================
// Backup Tests
// ============================================================================

func seedBackupFixture(t *testing.T, store *Store) {
	t.Helper()
	ctx := context.Background()
	squat := createExercise(t, store, "Squat")
	createExercise(t, store, "Bench Press")

	_, err := store.CreateSplit(ctx, domain.CreateSplitRequest{
		Name: "Lower",
		SplitExercises: []domain.SplitExerciseInput{
			{ExerciseID: squat.ID, Sets: 5},
		},
	})
	assertNoError(t, err)

	createWorkout(t, store, time.Date(2024, 5, 1, 7, 0, 0, 0, time.UTC), []domain.SetInput{
		{ExerciseID: squat.ID, SetNumber: 1, Weight: 225, Reps: 5},
	})
}

func TestExportFiltersBuiltInCardioTypes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	assertNoError(t, store.SeedBuiltInCardioTypes(ctx))
	_, err := store.CreateCardioType(ctx, domain.CreateCardioTypeRequest{Name: "Sled Push", Category: "other"})
	assertNoError(t, err)

	backup, err := store.ExportAllData(ctx)
	assertNoError(t, err)
	assertEqual(t, domain.BackupVersion, backup.Version)
	assertEqual(t, 1, len(backup.CardioTypes))
	assertEqual(t, "Sled Push", backup.CardioTypes[0].Name)
}

func TestImportMergeByName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	squat := createExercise(t, store, "Squat")

	// Incoming document uses a different id for the same exercise name
	incomingID := squat.ID + 50
	backup := &domain.Backup{
		Exercises: []domain.Exercise{{ID: incomingID, Name: "Squat"}},
		Workouts: []domain.WorkoutBackup{{
			Workout: domain.Workout{ID: 1, Date: time.Date(2024, 5, 1, 7, 0, 0, 0, time.UTC)},
			Sets: []domain.Set{
				{ID: 1, WorkoutID: 1, ExerciseID: incomingID, SetNumber: 1, Weight: 200, Reps: 5, WeightUnit: "lbs"},
			},
		}},
		Version: domain.BackupVersion,
	}

	counts, err := store.ImportAllData(ctx, backup)
	assertNoError(t, err)
	assertEqual(t, 0, counts.Exercises)
	assertEqual(t, 1, counts.Workouts)

	exercises, err := store.ListExercises(ctx)
	assertNoError(t, err)
	assertEqual(t, 1, len(exercises))

	workouts, err := store.ListWorkouts(ctx)
	assertNoError(t, err)
	assertEqual(t, squat.ID, workouts[0].Sets[0].ExerciseID)
}

func TestImportRemapsSplitReferences(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	incomingSplitID := int64(77)
	backup := &domain.Backup{
		Exercises: []domain.Exercise{},
		Splits: []domain.SplitBackup{{
			Split: domain.Split{ID: incomingSplitID, Name: "Imported Split", NumberOfDays: 2},
		}},
		Workouts: []domain.WorkoutBackup{{
			Workout: domain.Workout{ID: 1, Date: time.Now(), SplitID: &incomingSplitID},
		}},
		Version: domain.BackupVersion,
	}

	_, err := store.ImportAllData(ctx, backup)
	assertNoError(t, err)

	splits, err := store.ListSplits(ctx)
	assertNoError(t, err)
	assertEqual(t, 1, len(splits))

	workouts, err := store.ListWorkouts(ctx)
	assertNoError(t, err)
	assertEqual(t, splits[0].ID, *workouts[0].SplitID)
}

func TestDoubleImportDuplicatesWorkoutsOnly(t *testing.T) {
	source := newTestStore(t)
	seedBackupFixture(t, source)
	ctx := context.Background()

	backup, err := source.ExportAllData(ctx)
	assertNoError(t, err)

	dest := newTestStore(t)
	first, err := dest.ImportAllData(ctx, backup)
	assertNoError(t, err)
	assertEqual(t, 2, first.Exercises)
	assertEqual(t, 1, first.Splits)
	assertEqual(t, 1, first.Workouts)

	second, err := dest.ImportAllData(ctx, backup)
	assertNoError(t, err)
	assertEqual(t, 0, second.Exercises)
	assertEqual(t, 0, second.Splits)
	assertEqual(t, 1, second.Workouts)

	workouts, err := dest.ListWorkouts(ctx)
	assertNoError(t, err)
	assertEqual(t, 2, len(workouts))
}

func TestRoundTripDuplicatesWorkouts(t *testing.T) {
	store := newTestStore(t)
	seedBackupFixture(t, store)
	ctx := context.Background()

	backup, err := store.ExportAllData(ctx)
	assertNoError(t, err)

	counts, err := store.ImportAllData(ctx, backup)
	assertNoError(t, err)
	assertEqual(t, 0, counts.Exercises)
	assertEqual(t, 0, counts.CardioTypes)
	assertEqual(t, 0, counts.Splits)
	// Workouts are never deduplicated; this non-idempotence is deliberate
	assertEqual(t, 1, counts.Workouts)

	workouts, err := store.ListWorkouts(ctx)
	assertNoError(t, err)
	assertEqual(t, 2, len(workouts))
}
