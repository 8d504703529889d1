package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cs1429/IronTrack/internal/domain"
)

const cardioTypeColumns = `id, name, description, category, is_built_in,
	default_distance_unit, show_distance, show_pace, show_speed, pace_unit, speed_unit`

// builtInCardioTypes is the fixed catalog seeded on startup. Rows are
// matched by name so user edits to an already seeded row survive restarts.
var builtInCardioTypes = []domain.CardioType{
	{Name: "Outdoor Run", Category: "run", DefaultDistanceUnit: strp("miles"), ShowDistance: true, ShowPace: true, PaceUnit: strp("min/mile")},
	{Name: "Treadmill Run", Category: "run", DefaultDistanceUnit: strp("miles"), ShowDistance: true, ShowPace: true, PaceUnit: strp("min/mile")},
	{Name: "Walk/Hike", Category: "run", DefaultDistanceUnit: strp("miles"), ShowDistance: true, ShowPace: true, PaceUnit: strp("min/mile")},
	{Name: "Outdoor Cycling", Category: "cycle", DefaultDistanceUnit: strp("miles"), ShowDistance: true, ShowSpeed: true, SpeedUnit: strp("mph")},
	{Name: "Stationary Cycling", Category: "cycle", DefaultDistanceUnit: strp("miles"), ShowDistance: true, ShowSpeed: true, SpeedUnit: strp("mph")},
	{Name: "Rowing (Erg)", Category: "row", DefaultDistanceUnit: strp("meters"), ShowDistance: true, ShowPace: true, PaceUnit: strp("min/500m")},
	{Name: "Elliptical", Category: "other"},
	{Name: "Stair Climber", Category: "other"},
	{Name: "Swimming", Category: "swim", DefaultDistanceUnit: strp("meters"), ShowDistance: true, ShowPace: true, PaceUnit: strp("min/100m")},
	{Name: "Jump Rope", Category: "other"},
	{Name: "HIIT/Intervals", Category: "other"},
	{Name: "Other Cardio", Category: "other", ShowDistance: true},
}

func scanCardioType(row interface{ Scan(...any) error }) (*domain.CardioType, error) {
	var ct domain.CardioType
	err := row.Scan(&ct.ID, &ct.Name, &ct.Description, &ct.Category, &ct.IsBuiltIn,
		&ct.DefaultDistanceUnit, &ct.ShowDistance, &ct.ShowPace, &ct.ShowSpeed,
		&ct.PaceUnit, &ct.SpeedUnit)
	if err != nil {
		return nil, err
	}
	return &ct, nil
}

// ListCardioTypes returns the full cardio type catalog ordered by name.
func (s *Store) ListCardioTypes(ctx context.Context) ([]domain.CardioType, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+cardioTypeColumns+` FROM cardio_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cardio types: %w", err)
	}
	defer rows.Close()

	types := []domain.CardioType{}
	for rows.Next() {
		ct, err := scanCardioType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cardio type: %w", err)
		}
		types = append(types, *ct)
	}
	return types, rows.Err()
}

// GetCardioType returns one cardio type by id.
func (s *Store) GetCardioType(ctx context.Context, id int64) (*domain.CardioType, error) {
	return getCardioType(ctx, s.db, id)
}

func getCardioType(ctx context.Context, q querier, id int64) (*domain.CardioType, error) {
	ct, err := scanCardioType(q.QueryRowContext(ctx,
		`SELECT `+cardioTypeColumns+` FROM cardio_types WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "Cardio type"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cardio type: %w", err)
	}
	return ct, nil
}

// CreateCardioType inserts a user-defined cardio type. Duplicate names are
// rejected.
func (s *Store) CreateCardioType(ctx context.Context, req domain.CreateCardioTypeRequest) (*domain.CardioType, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO cardio_types (name, description, category, is_built_in,
			default_distance_unit, show_distance, show_pace, show_speed, pace_unit, speed_unit)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.Name, req.Description, req.Category, req.IsBuiltIn,
		req.DefaultDistanceUnit, req.ShowDistance, req.ShowPace, req.ShowSpeed,
		req.PaceUnit, req.SpeedUnit)
	if err != nil {
		return nil, nameTakenErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read cardio type id: %w", err)
	}
	return getCardioType(ctx, s.db, id)
}

// UpdateCardioType applies the non-nil fields of req to an existing cardio
// type. IsBuiltIn is never changed by updates.
func (s *Store) UpdateCardioType(ctx context.Context, id int64, req domain.UpdateCardioTypeRequest) (*domain.CardioType, error) {
	existing, err := getCardioType(ctx, s.db, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Description != nil {
		existing.Description = req.Description
	}
	if req.Category != nil {
		existing.Category = *req.Category
	}
	if req.DefaultDistanceUnit != nil {
		existing.DefaultDistanceUnit = req.DefaultDistanceUnit
	}
	if req.ShowDistance != nil {
		existing.ShowDistance = *req.ShowDistance
	}
	if req.ShowPace != nil {
		existing.ShowPace = *req.ShowPace
	}
	if req.ShowSpeed != nil {
		existing.ShowSpeed = *req.ShowSpeed
	}
	if req.PaceUnit != nil {
		existing.PaceUnit = req.PaceUnit
	}
	if req.SpeedUnit != nil {
		existing.SpeedUnit = req.SpeedUnit
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE cardio_types SET name = ?, description = ?, category = ?,
			default_distance_unit = ?, show_distance = ?, show_pace = ?, show_speed = ?,
			pace_unit = ?, speed_unit = ?
		WHERE id = ?`,
		existing.Name, existing.Description, existing.Category,
		existing.DefaultDistanceUnit, existing.ShowDistance, existing.ShowPace,
		existing.ShowSpeed, existing.PaceUnit, existing.SpeedUnit, id)
	if err != nil {
		return nil, nameTakenErr(err)
	}
	return getCardioType(ctx, s.db, id)
}

// DeleteCardioType removes a cardio type. Historical sessions referencing
// it are left in place.
func (s *Store) DeleteCardioType(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM cardio_types WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cardio type: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if n == 0 {
		return &domain.NotFoundError{Resource: "Cardio type"}
	}
	return nil
}

// SeedBuiltInCardioTypes inserts any missing rows of the built-in catalog.
// Rows already present, even if the user has edited them, are untouched.
func (s *Store) SeedBuiltInCardioTypes(ctx context.Context) error {
	for _, ct := range builtInCardioTypes {
		var exists int
		err := s.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM cardio_types WHERE name = ?`, ct.Name).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check cardio type %q: %w", ct.Name, err)
		}
		if exists > 0 {
			continue
		}
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO cardio_types (name, description, category, is_built_in,
				default_distance_unit, show_distance, show_pace, show_speed, pace_unit, speed_unit)
			VALUES (?, ?, ?, 1, ?, ?, ?, ?, ?, ?)`,
			ct.Name, ct.Description, ct.Category,
			ct.DefaultDistanceUnit, ct.ShowDistance, ct.ShowPace, ct.ShowSpeed,
			ct.PaceUnit, ct.SpeedUnit)
		if err != nil {
			return fmt.Errorf("failed to seed cardio type %q: %w", ct.Name, err)
		}
	}
	return nil
}
