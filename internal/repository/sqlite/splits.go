package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cs1429/IronTrack/internal/domain"
)

// ListSplits returns every split with its children attached, ordered by id.
func (s *Store) ListSplits(ctx context.Context) ([]domain.SplitDetail, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, number_of_days FROM splits ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list splits: %w", err)
	}
	defer rows.Close()

	splits := []domain.SplitDetail{}
	ids := []int64{}
	for rows.Next() {
		var sp domain.SplitDetail
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.Description, &sp.NumberOfDays); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		sp.SplitExercises = []domain.SplitExerciseDetail{}
		sp.SplitCardio = []domain.SplitCardioDetail{}
		splits = append(splits, sp)
		ids = append(ids, sp.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return splits, nil
	}

	exercises, cardio, err := loadSplitChildren(ctx, s.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range splits {
		if se, ok := exercises[splits[i].ID]; ok {
			splits[i].SplitExercises = se
		}
		if sc, ok := cardio[splits[i].ID]; ok {
			splits[i].SplitCardio = sc
		}
	}
	return splits, nil
}

// GetSplit returns one split with its children attached.
func (s *Store) GetSplit(ctx context.Context, id int64) (*domain.SplitDetail, error) {
	return getSplit(ctx, s.db, id)
}

func getSplit(ctx context.Context, q querier, id int64) (*domain.SplitDetail, error) {
	var sp domain.SplitDetail
	err := q.QueryRowContext(ctx,
		`SELECT id, name, description, number_of_days FROM splits WHERE id = ?`, id).
		Scan(&sp.ID, &sp.Name, &sp.Description, &sp.NumberOfDays)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "Split"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get split: %w", err)
	}

	sp.SplitExercises = []domain.SplitExerciseDetail{}
	sp.SplitCardio = []domain.SplitCardioDetail{}
	exercises, cardio, err := loadSplitChildren(ctx, q, []int64{id})
	if err != nil {
		return nil, err
	}
	if se, ok := exercises[id]; ok {
		sp.SplitExercises = se
	}
	if sc, ok := cardio[id]; ok {
		sp.SplitCardio = sc
	}
	return &sp, nil
}

// loadSplitChildren fetches the child rows for a batch of splits in two
// queries and groups them by split id.
func loadSplitChildren(ctx context.Context, q querier, ids []int64) (map[int64][]domain.SplitExerciseDetail, map[int64][]domain.SplitCardioDetail, error) {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	in := placeholders(len(ids))

	rows, err := q.QueryContext(ctx,
		`SELECT se.id, se.split_id, se.exercise_id, se.day_number, se.sets,
			se.rep_min, se.rep_max, se.notes,
			e.id, e.name, e.description
		FROM split_exercises se
		JOIN exercises e ON e.id = se.exercise_id
		WHERE se.split_id IN (`+in+`)
		ORDER BY se.day_number, se.id`, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load split exercises: %w", err)
	}
	defer rows.Close()

	exercises := map[int64][]domain.SplitExerciseDetail{}
	for rows.Next() {
		var d domain.SplitExerciseDetail
		if err := rows.Scan(&d.ID, &d.SplitID, &d.ExerciseID, &d.DayNumber, &d.Sets,
			&d.RepMin, &d.RepMax, &d.SplitExercise.Notes,
			&d.Exercise.ID, &d.Exercise.Name, &d.Exercise.Description); err != nil {
			return nil, nil, fmt.Errorf("failed to scan split exercise: %w", err)
		}
		exercises[d.SplitID] = append(exercises[d.SplitID], d)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	cardioRows, err := q.QueryContext(ctx,
		`SELECT sc.id, sc.split_id, sc.cardio_type_id, sc.day_number,
			sc.target_duration_seconds, sc.target_distance, sc.target_distance_unit, sc.notes,
			ct.id, ct.name, ct.description, ct.category, ct.is_built_in,
			ct.default_distance_unit, ct.show_distance, ct.show_pace, ct.show_speed,
			ct.pace_unit, ct.speed_unit
		FROM split_cardio sc
		JOIN cardio_types ct ON ct.id = sc.cardio_type_id
		WHERE sc.split_id IN (`+in+`)
		ORDER BY sc.day_number, sc.id`, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load split cardio: %w", err)
	}
	defer cardioRows.Close()

	cardio := map[int64][]domain.SplitCardioDetail{}
	for cardioRows.Next() {
		var d domain.SplitCardioDetail
		ct := &d.CardioType
		if err := cardioRows.Scan(&d.ID, &d.SplitID, &d.CardioTypeID, &d.DayNumber,
			&d.TargetDurationSeconds, &d.TargetDistance, &d.TargetDistanceUnit, &d.SplitCardio.Notes,
			&ct.ID, &ct.Name, &ct.Description, &ct.Category, &ct.IsBuiltIn,
			&ct.DefaultDistanceUnit, &ct.ShowDistance, &ct.ShowPace, &ct.ShowSpeed,
			&ct.PaceUnit, &ct.SpeedUnit); err != nil {
			return nil, nil, fmt.Errorf("failed to scan split cardio: %w", err)
		}
		cardio[d.SplitID] = append(cardio[d.SplitID], d)
	}
	return exercises, cardio, cardioRows.Err()
}

// CreateSplit inserts a split and its prescribed children in one
// transaction and returns the composed view.
func (s *Store) CreateSplit(ctx context.Context, req domain.CreateSplitRequest) (*domain.SplitDetail, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	numberOfDays := req.NumberOfDays
	if numberOfDays < 1 {
		numberOfDays = 1
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO splits (name, description, number_of_days) VALUES (?, ?, ?)`,
		req.Name, req.Description, numberOfDays)
	if err != nil {
		return nil, nameTakenErr(err)
	}
	splitID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read split id: %w", err)
	}

	for _, se := range req.SplitExercises {
		if err := insertSplitExercise(ctx, tx, splitID, se); err != nil {
			return nil, err
		}
	}
	for _, sc := range req.SplitCardio {
		if err := insertSplitCardio(ctx, tx, splitID, sc); err != nil {
			return nil, err
		}
	}

	detail, err := getSplit(ctx, tx, splitID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit split: %w", err)
	}
	return detail, nil
}

func insertSplitExercise(ctx context.Context, q querier, splitID int64, se domain.SplitExerciseInput) error {
	dayNumber := se.DayNumber
	if dayNumber < 1 {
		dayNumber = 1
	}
	_, err := q.ExecContext(ctx,
		`INSERT INTO split_exercises (split_id, exercise_id, day_number, sets, rep_min, rep_max, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		splitID, se.ExerciseID, dayNumber, se.Sets, se.RepMin, se.RepMax, se.Notes)
	if err != nil {
		return fmt.Errorf("failed to insert split exercise: %w", err)
	}
	return nil
}

func insertSplitCardio(ctx context.Context, q querier, splitID int64, sc domain.SplitCardioInput) error {
	dayNumber := sc.DayNumber
	if dayNumber < 1 {
		dayNumber = 1
	}
	_, err := q.ExecContext(ctx,
		`INSERT INTO split_cardio (split_id, cardio_type_id, day_number,
			target_duration_seconds, target_distance, target_distance_unit, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		splitID, sc.CardioTypeID, dayNumber,
		sc.TargetDurationSeconds, sc.TargetDistance, sc.TargetDistanceUnit, sc.Notes)
	if err != nil {
		return fmt.Errorf("failed to insert split cardio: %w", err)
	}
	return nil
}

// DeleteSplit removes a split and its children, children first, in one
// transaction.
func (s *Store) DeleteSplit(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM splits WHERE id = ?`, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check split: %w", err)
	}
	if exists == 0 {
		return &domain.NotFoundError{Resource: "Split"}
	}

	for _, stmt := range []string{
		`DELETE FROM split_exercises WHERE split_id = ?`,
		`DELETE FROM split_cardio WHERE split_id = ?`,
		`DELETE FROM splits WHERE id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			return fmt.Errorf("failed to delete split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit split delete: %w", err)
	}
	return nil
}

// ListSplitWorkouts returns the workouts logged against a split, newest
// first. The split must exist.
func (s *Store) ListSplitWorkouts(ctx context.Context, splitID int64) ([]domain.WorkoutDetail, error) {
	var exists int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM splits WHERE id = ?`, splitID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check split: %w", err)
	}
	if exists == 0 {
		return nil, &domain.NotFoundError{Resource: "Split"}
	}
	return s.listWorkoutsWhere(ctx, `WHERE split_id = ?`, splitID)
}
