package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cs1429/IronTrack/internal/domain"
)

// ListWorkouts returns every workout with children attached, newest first.
func (s *Store) ListWorkouts(ctx context.Context) ([]domain.WorkoutDetail, error) {
	return s.listWorkoutsWhere(ctx, ``)
}

func (s *Store) listWorkoutsWhere(ctx context.Context, where string, args ...any) ([]domain.WorkoutDetail, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, notes, split_id FROM workouts `+where+` ORDER BY date DESC, id DESC`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	defer rows.Close()

	workouts := []domain.WorkoutDetail{}
	ids := []int64{}
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, *w)
		ids = append(ids, w.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return workouts, nil
	}

	sets, sessions, err := loadWorkoutChildren(ctx, s.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range workouts {
		if ws, ok := sets[workouts[i].ID]; ok {
			workouts[i].Sets = ws
		}
		if cs, ok := sessions[workouts[i].ID]; ok {
			workouts[i].CardioSessions = cs
		}
	}
	return workouts, nil
}

func scanWorkout(row interface{ Scan(...any) error }) (*domain.WorkoutDetail, error) {
	var w domain.WorkoutDetail
	var date string
	if err := row.Scan(&w.ID, &date, &w.Notes, &w.SplitID); err != nil {
		return nil, fmt.Errorf("failed to scan workout: %w", err)
	}
	w.Date = parseTime(date)
	w.Sets = []domain.SetDetail{}
	w.CardioSessions = []domain.CardioSessionDetail{}
	return &w, nil
}

// GetWorkout returns one workout with children attached.
func (s *Store) GetWorkout(ctx context.Context, id int64) (*domain.WorkoutDetail, error) {
	return getWorkout(ctx, s.db, id)
}

func getWorkout(ctx context.Context, q querier, id int64) (*domain.WorkoutDetail, error) {
	row := q.QueryRowContext(ctx,
		`SELECT id, date, notes, split_id FROM workouts WHERE id = ?`, id)

	var w domain.WorkoutDetail
	var date string
	err := row.Scan(&w.ID, &date, &w.Notes, &w.SplitID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "Workout"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workout: %w", err)
	}
	w.Date = parseTime(date)
	w.Sets = []domain.SetDetail{}
	w.CardioSessions = []domain.CardioSessionDetail{}

	sets, sessions, err := loadWorkoutChildren(ctx, q, []int64{id})
	if err != nil {
		return nil, err
	}
	if ws, ok := sets[id]; ok {
		w.Sets = ws
	}
	if cs, ok := sessions[id]; ok {
		w.CardioSessions = cs
	}
	return &w, nil
}

// loadWorkoutChildren fetches the child rows for a batch of workouts in two
// queries and groups them by workout id, sets ordered by set number.
func loadWorkoutChildren(ctx context.Context, q querier, ids []int64) (map[int64][]domain.SetDetail, map[int64][]domain.CardioSessionDetail, error) {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	in := placeholders(len(ids))

	rows, err := q.QueryContext(ctx,
		`SELECT st.id, st.workout_id, st.exercise_id, st.set_number, st.weight,
			st.reps, st.weight_unit, st.exercise_note,
			e.id, e.name, e.description
		FROM sets st
		JOIN exercises e ON e.id = st.exercise_id
		WHERE st.workout_id IN (`+in+`)
		ORDER BY st.set_number, st.id`, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load sets: %w", err)
	}
	defer rows.Close()

	sets := map[int64][]domain.SetDetail{}
	for rows.Next() {
		var d domain.SetDetail
		if err := rows.Scan(&d.ID, &d.WorkoutID, &d.ExerciseID, &d.SetNumber,
			&d.Weight, &d.Reps, &d.WeightUnit, &d.ExerciseNote,
			&d.Exercise.ID, &d.Exercise.Name, &d.Exercise.Description); err != nil {
			return nil, nil, fmt.Errorf("failed to scan set: %w", err)
		}
		sets[d.WorkoutID] = append(sets[d.WorkoutID], d)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	sessionRows, err := q.QueryContext(ctx,
		`SELECT cs.id, cs.workout_id, cs.cardio_type_id, cs.duration_seconds,
			cs.distance, cs.distance_unit, cs.calories, cs.effort_level, cs.rpe,
			cs.avg_heart_rate, cs.max_heart_rate, cs.notes, cs.is_intervals,
			cs.work_seconds, cs.rest_seconds, cs.rounds, cs.elevation_gain,
			cs.incline, cs.resistance_level, cs.strokes_per_minute, cs.pool_length,
			cs.floors_climbed, cs.total_steps, cs.total_jumps,
			ct.id, ct.name, ct.description, ct.category, ct.is_built_in,
			ct.default_distance_unit, ct.show_distance, ct.show_pace, ct.show_speed,
			ct.pace_unit, ct.speed_unit
		FROM cardio_sessions cs
		JOIN cardio_types ct ON ct.id = cs.cardio_type_id
		WHERE cs.workout_id IN (`+in+`)
		ORDER BY cs.id`, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load cardio sessions: %w", err)
	}
	defer sessionRows.Close()

	sessions := map[int64][]domain.CardioSessionDetail{}
	for sessionRows.Next() {
		var d domain.CardioSessionDetail
		ct := &d.CardioType
		if err := sessionRows.Scan(&d.ID, &d.WorkoutID, &d.CardioTypeID, &d.DurationSeconds,
			&d.Distance, &d.DistanceUnit, &d.Calories, &d.EffortLevel, &d.RPE,
			&d.AvgHeartRate, &d.MaxHeartRate, &d.CardioSession.Notes, &d.IsIntervals,
			&d.WorkSeconds, &d.RestSeconds, &d.Rounds, &d.ElevationGain,
			&d.Incline, &d.ResistanceLevel, &d.StrokesPerMinute, &d.PoolLength,
			&d.FloorsClimbed, &d.TotalSteps, &d.TotalJumps,
			&ct.ID, &ct.Name, &ct.Description, &ct.Category, &ct.IsBuiltIn,
			&ct.DefaultDistanceUnit, &ct.ShowDistance, &ct.ShowPace, &ct.ShowSpeed,
			&ct.PaceUnit, &ct.SpeedUnit); err != nil {
			return nil, nil, fmt.Errorf("failed to scan cardio session: %w", err)
		}
		sessions[d.WorkoutID] = append(sessions[d.WorkoutID], d)
	}
	return sets, sessions, sessionRows.Err()
}

// CreateWorkout inserts a workout and its children in one transaction and
// returns the composed view.
func (s *Store) CreateWorkout(ctx context.Context, date time.Time, req domain.CreateWorkoutRequest) (*domain.WorkoutDetail, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO workouts (date, notes, split_id) VALUES (?, ?, ?)`,
		formatTime(date), req.Notes, req.SplitID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert workout: %w", err)
	}
	workoutID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read workout id: %w", err)
	}

	for _, set := range req.Sets {
		if err := insertSet(ctx, tx, workoutID, set); err != nil {
			return nil, err
		}
	}
	for _, session := range req.CardioSessions {
		if err := insertCardioSession(ctx, tx, workoutID, session); err != nil {
			return nil, err
		}
	}

	detail, err := getWorkout(ctx, tx, workoutID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit workout: %w", err)
	}
	return detail, nil
}

func insertSet(ctx context.Context, q querier, workoutID int64, set domain.SetInput) error {
	unit := set.WeightUnit
	if unit == "" {
		unit = "lbs"
	}
	_, err := q.ExecContext(ctx,
		`INSERT INTO sets (workout_id, exercise_id, set_number, weight, reps, weight_unit, exercise_note)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		workoutID, set.ExerciseID, set.SetNumber, set.Weight, set.Reps, unit, set.ExerciseNote)
	if err != nil {
		return fmt.Errorf("failed to insert set: %w", err)
	}
	return nil
}

func insertCardioSession(ctx context.Context, q querier, workoutID int64, cs domain.CardioSessionInput) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO cardio_sessions (workout_id, cardio_type_id, duration_seconds,
			distance, distance_unit, calories, effort_level, rpe, avg_heart_rate,
			max_heart_rate, notes, is_intervals, work_seconds, rest_seconds, rounds,
			elevation_gain, incline, resistance_level, strokes_per_minute, pool_length,
			floors_climbed, total_steps, total_jumps)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		workoutID, cs.CardioTypeID, cs.DurationSeconds,
		cs.Distance, cs.DistanceUnit, cs.Calories, cs.EffortLevel, cs.RPE, cs.AvgHeartRate,
		cs.MaxHeartRate, cs.Notes, cs.IsIntervals, cs.WorkSeconds, cs.RestSeconds, cs.Rounds,
		cs.ElevationGain, cs.Incline, cs.ResistanceLevel, cs.StrokesPerMinute, cs.PoolLength,
		cs.FloorsClimbed, cs.TotalSteps, cs.TotalJumps)
	if err != nil {
		return fmt.Errorf("failed to insert cardio session: %w", err)
	}
	return nil
}

// mutationKind tags one compiled child mutation of a workout update.
type mutationKind int

const (
	mutationDelete mutationKind = iota
	mutationUpdate
	mutationInsert
)

type setMutation struct {
	kind mutationKind
	id   int64
	row  domain.SetInput
}

type cardioMutation struct {
	kind mutationKind
	id   int64
	row  domain.CardioSessionInput
}

// compileSetMutations turns the sparse diff of an update request into an
// ordered mutation list: explicit deletions first, then updates for rows
// carrying an id, then inserts for rows without one.
func compileSetMutations(req domain.UpdateWorkoutRequest) []setMutation {
	muts := []setMutation{}
	for _, id := range req.DeletedSetIDs {
		muts = append(muts, setMutation{kind: mutationDelete, id: id})
	}
	for _, set := range req.Sets {
		if set.ID != nil {
			muts = append(muts, setMutation{kind: mutationUpdate, id: *set.ID, row: set})
		} else {
			muts = append(muts, setMutation{kind: mutationInsert, row: set})
		}
	}
	return muts
}

func compileCardioMutations(req domain.UpdateWorkoutRequest) []cardioMutation {
	muts := []cardioMutation{}
	for _, id := range req.DeletedCardioSessionIDs {
		muts = append(muts, cardioMutation{kind: mutationDelete, id: id})
	}
	for _, session := range req.CardioSessions {
		if session.ID != nil {
			muts = append(muts, cardioMutation{kind: mutationUpdate, id: *session.ID, row: session})
		} else {
			muts = append(muts, cardioMutation{kind: mutationInsert, row: session})
		}
	}
	return muts
}

// UpdateWorkout reconciles a workout's children against a sparse diff in
// one transaction: named ids are deleted, rows carrying an id are updated
// in place, rows without one are inserted under this workout.
func (s *Store) UpdateWorkout(ctx context.Context, id int64, req domain.UpdateWorkoutRequest) (*domain.WorkoutDetail, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM workouts WHERE id = ?`, id).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check workout: %w", err)
	}
	if exists == 0 {
		return nil, &domain.NotFoundError{Resource: "Workout"}
	}

	if req.Notes != nil {
		if _, err := tx.ExecContext(ctx,
			`UPDATE workouts SET notes = ? WHERE id = ?`, req.Notes, id); err != nil {
			return nil, fmt.Errorf("failed to update workout notes: %w", err)
		}
	}

	for _, m := range compileSetMutations(req) {
		switch m.kind {
		case mutationDelete:
			_, err = tx.ExecContext(ctx,
				`DELETE FROM sets WHERE id = ? AND workout_id = ?`, m.id, id)
		case mutationUpdate:
			err = updateSet(ctx, tx, id, m.id, m.row)
		case mutationInsert:
			err = insertSet(ctx, tx, id, m.row)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to apply set mutation: %w", err)
		}
	}

	for _, m := range compileCardioMutations(req) {
		switch m.kind {
		case mutationDelete:
			_, err = tx.ExecContext(ctx,
				`DELETE FROM cardio_sessions WHERE id = ? AND workout_id = ?`, m.id, id)
		case mutationUpdate:
			err = updateCardioSession(ctx, tx, id, m.id, m.row)
		case mutationInsert:
			err = insertCardioSession(ctx, tx, id, m.row)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to apply cardio mutation: %w", err)
		}
	}

	detail, err := getWorkout(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit workout update: %w", err)
	}
	return detail, nil
}

func updateSet(ctx context.Context, q querier, workoutID, setID int64, set domain.SetInput) error {
	unit := set.WeightUnit
	if unit == "" {
		unit = "lbs"
	}
	_, err := q.ExecContext(ctx,
		`UPDATE sets SET exercise_id = ?, set_number = ?, weight = ?, reps = ?,
			weight_unit = ?, exercise_note = ?
		WHERE id = ? AND workout_id = ?`,
		set.ExerciseID, set.SetNumber, set.Weight, set.Reps, unit, set.ExerciseNote,
		setID, workoutID)
	return err
}

func updateCardioSession(ctx context.Context, q querier, workoutID, sessionID int64, cs domain.CardioSessionInput) error {
	_, err := q.ExecContext(ctx,
		`UPDATE cardio_sessions SET cardio_type_id = ?, duration_seconds = ?,
			distance = ?, distance_unit = ?, calories = ?, effort_level = ?, rpe = ?,
			avg_heart_rate = ?, max_heart_rate = ?, notes = ?, is_intervals = ?,
			work_seconds = ?, rest_seconds = ?, rounds = ?, elevation_gain = ?,
			incline = ?, resistance_level = ?, strokes_per_minute = ?, pool_length = ?,
			floors_climbed = ?, total_steps = ?, total_jumps = ?
		WHERE id = ? AND workout_id = ?`,
		cs.CardioTypeID, cs.DurationSeconds,
		cs.Distance, cs.DistanceUnit, cs.Calories, cs.EffortLevel, cs.RPE,
		cs.AvgHeartRate, cs.MaxHeartRate, cs.Notes, cs.IsIntervals,
		cs.WorkSeconds, cs.RestSeconds, cs.Rounds, cs.ElevationGain,
		cs.Incline, cs.ResistanceLevel, cs.StrokesPerMinute, cs.PoolLength,
		cs.FloorsClimbed, cs.TotalSteps, cs.TotalJumps,
		sessionID, workoutID)
	return err
}

// DeleteWorkout removes a workout and its children, children first, in one
// transaction. Deleting a missing workout is a no-op.
func (s *Store) DeleteWorkout(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM sets WHERE workout_id = ?`,
		`DELETE FROM cardio_sessions WHERE workout_id = ?`,
		`DELETE FROM workouts WHERE id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit workout delete: %w", err)
	}
	return nil
}
