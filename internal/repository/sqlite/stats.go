package sqlite

import (
	"context"
	"fmt"

	"github.com/cs1429/IronTrack/internal/domain"
)

// GetExerciseStats aggregates an exercise's set history into one entry per
// calendar day, chronological. For each day it reports the heaviest set
// (ties keep the earlier set) and the summed weight*reps volume.
func (s *Store) GetExerciseStats(ctx context.Context, exerciseID int64) ([]domain.ExerciseStats, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT w.date, st.weight, st.reps, st.weight_unit
		FROM sets st
		JOIN workouts w ON w.id = st.workout_id
		WHERE st.exercise_id = ?
		ORDER BY w.date ASC, st.id ASC`, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query exercise stats: %w", err)
	}
	defer rows.Close()

	// Day keys in first-seen order; the source rows are date-ascending so
	// the output is chronological.
	byDay := map[string]*domain.ExerciseStats{}
	order := []string{}
	for rows.Next() {
		var date, unit string
		var weight, reps int64
		if err := rows.Scan(&date, &weight, &reps, &unit); err != nil {
			return nil, fmt.Errorf("failed to scan stats row: %w", err)
		}
		if unit == "" {
			unit = "lbs"
		}

		day := parseTime(date).UTC().Format("2006-01-02")
		entry, ok := byDay[day]
		if !ok {
			// The unit only follows the heaviest set; a day of all
			// zero-weight sets keeps the default.
			entry = &domain.ExerciseStats{Date: day, MaxWeightUnit: "lbs"}
			byDay[day] = entry
			order = append(order, day)
		}
		if weight > entry.MaxWeight {
			entry.MaxWeight = weight
			entry.MaxWeightReps = reps
			entry.MaxWeightUnit = unit
		}
		entry.TotalVolume += weight * reps
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	stats := make([]domain.ExerciseStats, 0, len(order))
	for _, day := range order {
		stats = append(stats, *byDay[day])
	}
	return stats, nil
}
