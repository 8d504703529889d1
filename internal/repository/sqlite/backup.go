package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cs1429/IronTrack/internal/domain"
)

// ExportAllData reads every table and nests children under their parents.
// Built-in cardio types are omitted; the importing instance reconstructs
// its own catalog.
func (s *Store) ExportAllData(ctx context.Context) (*domain.Backup, error) {
	exercises, err := s.ListExercises(ctx)
	if err != nil {
		return nil, err
	}

	allTypes, err := s.ListCardioTypes(ctx)
	if err != nil {
		return nil, err
	}
	cardioTypes := []domain.CardioType{}
	for _, ct := range allTypes {
		if !ct.IsBuiltIn {
			cardioTypes = append(cardioTypes, ct)
		}
	}

	splits, err := s.exportSplits(ctx)
	if err != nil {
		return nil, err
	}
	workouts, err := s.exportWorkouts(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Backup{
		Exercises:   exercises,
		CardioTypes: cardioTypes,
		Splits:      splits,
		Workouts:    workouts,
		ExportedAt:  time.Now().UTC().Format(time.RFC3339),
		Version:     domain.BackupVersion,
	}, nil
}

func (s *Store) exportSplits(ctx context.Context) ([]domain.SplitBackup, error) {
	details, err := s.ListSplits(ctx)
	if err != nil {
		return nil, err
	}
	splits := []domain.SplitBackup{}
	for _, d := range details {
		sb := domain.SplitBackup{
			Split:          d.Split,
			SplitExercises: []domain.SplitExercise{},
			SplitCardio:    []domain.SplitCardio{},
		}
		for _, se := range d.SplitExercises {
			sb.SplitExercises = append(sb.SplitExercises, se.SplitExercise)
		}
		for _, sc := range d.SplitCardio {
			sb.SplitCardio = append(sb.SplitCardio, sc.SplitCardio)
		}
		splits = append(splits, sb)
	}
	return splits, nil
}

func (s *Store) exportWorkouts(ctx context.Context) ([]domain.WorkoutBackup, error) {
	details, err := s.ListWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	workouts := []domain.WorkoutBackup{}
	for _, d := range details {
		wb := domain.WorkoutBackup{
			Workout:        d.Workout,
			Sets:           []domain.Set{},
			CardioSessions: []domain.CardioSession{},
		}
		for _, set := range d.Sets {
			wb.Sets = append(wb.Sets, set.Set)
		}
		for _, session := range d.CardioSessions {
			wb.CardioSessions = append(wb.CardioSessions, session.CardioSession)
		}
		workouts = append(workouts, wb)
	}
	return workouts, nil
}

// remapID translates an id from the backup's namespace into this database's
// namespace, falling back to the raw incoming id when no mapping exists.
func remapID(mapping map[int64]int64, id int64) int64 {
	if mapped, ok := mapping[id]; ok {
		return mapped
	}
	return id
}

// ImportAllData merges a backup into the current database in one
// transaction. Catalog entries and splits merge onto existing rows by name;
// workouts are always inserted. All child references are remapped through
// the id translation built during the merge.
func (s *Store) ImportAllData(ctx context.Context, backup *domain.Backup) (*domain.ImportCounts, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	counts := &domain.ImportCounts{}
	exerciseIDs := map[int64]int64{}
	cardioTypeIDs := map[int64]int64{}
	splitIDs := map[int64]int64{}

	for _, e := range backup.Exercises {
		id, inserted, err := mergeByName(ctx, tx, `exercises`, e.Name, func() (sql.Result, error) {
			return tx.ExecContext(ctx,
				`INSERT INTO exercises (name, description) VALUES (?, ?)`,
				e.Name, e.Description)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to import exercise %q: %w", e.Name, err)
		}
		exerciseIDs[e.ID] = id
		if inserted {
			counts.Exercises++
		}
	}

	for _, ct := range backup.CardioTypes {
		id, inserted, err := mergeByName(ctx, tx, `cardio_types`, ct.Name, func() (sql.Result, error) {
			return tx.ExecContext(ctx,
				`INSERT INTO cardio_types (name, description, category, is_built_in,
					default_distance_unit, show_distance, show_pace, show_speed, pace_unit, speed_unit)
				VALUES (?, ?, ?, 0, ?, ?, ?, ?, ?, ?)`,
				ct.Name, ct.Description, ct.Category,
				ct.DefaultDistanceUnit, ct.ShowDistance, ct.ShowPace, ct.ShowSpeed,
				ct.PaceUnit, ct.SpeedUnit)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to import cardio type %q: %w", ct.Name, err)
		}
		cardioTypeIDs[ct.ID] = id
		if inserted {
			counts.CardioTypes++
		}
	}

	// Built-in types referenced by incoming sessions were not exported;
	// those references pass through unmapped and land on this database's
	// seeded catalog, which shares the built-in insertion order.
	if err := s.importSplits(ctx, tx, backup.Splits, exerciseIDs, cardioTypeIDs, splitIDs, counts); err != nil {
		return nil, err
	}
	if err := s.importWorkouts(ctx, tx, backup.Workouts, exerciseIDs, cardioTypeIDs, splitIDs, counts); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit import: %w", err)
	}
	return counts, nil
}

// mergeByName resolves a catalog row to an existing id by name, inserting
// it when absent. The second return reports whether an insert happened.
func mergeByName(ctx context.Context, q querier, table, name string, insert func() (sql.Result, error)) (int64, bool, error) {
	var id int64
	err := q.QueryRowContext(ctx,
		`SELECT id FROM `+table+` WHERE name = ?`, name).Scan(&id)
	if err == nil {
		return id, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, false, err
	}

	res, err := insert()
	if err != nil {
		return 0, false, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func (s *Store) importSplits(ctx context.Context, tx *sql.Tx, splits []domain.SplitBackup, exerciseIDs, cardioTypeIDs, splitIDs map[int64]int64, counts *domain.ImportCounts) error {
	for _, sp := range splits {
		id, inserted, err := mergeByName(ctx, tx, `splits`, sp.Name, func() (sql.Result, error) {
			return tx.ExecContext(ctx,
				`INSERT INTO splits (name, description, number_of_days) VALUES (?, ?, ?)`,
				sp.Name, sp.Description, sp.NumberOfDays)
		})
		if err != nil {
			return fmt.Errorf("failed to import split %q: %w", sp.Name, err)
		}
		splitIDs[sp.ID] = id
		if !inserted {
			// Merged onto an existing split; its prescription wins, the
			// incoming children are dropped.
			continue
		}
		counts.Splits++

		for _, se := range sp.SplitExercises {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO split_exercises (split_id, exercise_id, day_number, sets, rep_min, rep_max, notes)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				id, remapID(exerciseIDs, se.ExerciseID), se.DayNumber, se.Sets,
				se.RepMin, se.RepMax, se.Notes)
			if err != nil {
				return fmt.Errorf("failed to import split exercise: %w", err)
			}
		}
		for _, sc := range sp.SplitCardio {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO split_cardio (split_id, cardio_type_id, day_number,
					target_duration_seconds, target_distance, target_distance_unit, notes)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				id, remapID(cardioTypeIDs, sc.CardioTypeID), sc.DayNumber,
				sc.TargetDurationSeconds, sc.TargetDistance, sc.TargetDistanceUnit, sc.Notes)
			if err != nil {
				return fmt.Errorf("failed to import split cardio: %w", err)
			}
		}
	}
	return nil
}

func (s *Store) importWorkouts(ctx context.Context, tx *sql.Tx, workouts []domain.WorkoutBackup, exerciseIDs, cardioTypeIDs, splitIDs map[int64]int64, counts *domain.ImportCounts) error {
	for _, w := range workouts {
		var splitID *int64
		if w.SplitID != nil {
			mapped := remapID(splitIDs, *w.SplitID)
			splitID = &mapped
		}
		res, err := tx.ExecContext(ctx,
			`INSERT INTO workouts (date, notes, split_id) VALUES (?, ?, ?)`,
			formatTime(w.Date), w.Notes, splitID)
		if err != nil {
			return fmt.Errorf("failed to import workout: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read workout id: %w", err)
		}
		counts.Workouts++

		for _, set := range w.Sets {
			unit := set.WeightUnit
			if unit == "" {
				unit = "lbs"
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO sets (workout_id, exercise_id, set_number, weight, reps, weight_unit, exercise_note)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				id, remapID(exerciseIDs, set.ExerciseID), set.SetNumber,
				set.Weight, set.Reps, unit, set.ExerciseNote)
			if err != nil {
				return fmt.Errorf("failed to import set: %w", err)
			}
		}
		for _, cs := range w.CardioSessions {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO cardio_sessions (workout_id, cardio_type_id, duration_seconds,
					distance, distance_unit, calories, effort_level, rpe, avg_heart_rate,
					max_heart_rate, notes, is_intervals, work_seconds, rest_seconds, rounds,
					elevation_gain, incline, resistance_level, strokes_per_minute, pool_length,
					floors_climbed, total_steps, total_jumps)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				id, remapID(cardioTypeIDs, cs.CardioTypeID), cs.DurationSeconds,
				cs.Distance, cs.DistanceUnit, cs.Calories, cs.EffortLevel, cs.RPE, cs.AvgHeartRate,
				cs.MaxHeartRate, cs.Notes, cs.IsIntervals, cs.WorkSeconds, cs.RestSeconds, cs.Rounds,
				cs.ElevationGain, cs.Incline, cs.ResistanceLevel, cs.StrokesPerMinute, cs.PoolLength,
				cs.FloorsClimbed, cs.TotalSteps, cs.TotalJumps)
			if err != nil {
				return fmt.Errorf("failed to import cardio session: %w", err)
			}
		}
	}
	return nil
}
