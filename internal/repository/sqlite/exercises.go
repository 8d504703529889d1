package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cs1429/IronTrack/internal/domain"
)

// ListExercises returns the full exercise catalog ordered by name.
func (s *Store) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description FROM exercises ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	defer rows.Close()

	exercises := []domain.Exercise{}
	for rows.Next() {
		var e domain.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.Description); err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

// GetExercise returns one exercise by id.
func (s *Store) GetExercise(ctx context.Context, id int64) (*domain.Exercise, error) {
	return getExercise(ctx, s.db, id)
}

func getExercise(ctx context.Context, q querier, id int64) (*domain.Exercise, error) {
	var e domain.Exercise
	err := q.QueryRowContext(ctx,
		`SELECT id, name, description FROM exercises WHERE id = ?`, id).
		Scan(&e.ID, &e.Name, &e.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "Exercise"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get exercise: %w", err)
	}
	return &e, nil
}

// CreateExercise inserts a new exercise. Duplicate names are rejected.
func (s *Store) CreateExercise(ctx context.Context, req domain.CreateExerciseRequest) (*domain.Exercise, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO exercises (name, description) VALUES (?, ?)`,
		req.Name, req.Description)
	if err != nil {
		return nil, nameTakenErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read exercise id: %w", err)
	}
	return getExercise(ctx, s.db, id)
}

// UpdateExercise applies the non-nil fields of req to an existing exercise.
func (s *Store) UpdateExercise(ctx context.Context, id int64, req domain.UpdateExerciseRequest) (*domain.Exercise, error) {
	existing, err := getExercise(ctx, s.db, id)
	if err != nil {
		return nil, err
	}

	name := existing.Name
	if req.Name != nil {
		name = *req.Name
	}
	description := existing.Description
	if req.Description != nil {
		description = req.Description
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE exercises SET name = ?, description = ? WHERE id = ?`,
		name, description, id)
	if err != nil {
		return nil, nameTakenErr(err)
	}
	return getExercise(ctx, s.db, id)
}
