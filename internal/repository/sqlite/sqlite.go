package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store implements repository.Store using SQLite
type Store struct {
	db *sql.DB
}

// querier is satisfied by both *sql.DB and *sql.Tx so read helpers can be
// composed into transactions.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// New opens or creates the database at dsn and ensures the schema exists.
func New(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps in-memory databases coherent and avoids
	// writer contention on file databases.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS exercises (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		description TEXT
	);

	CREATE TABLE IF NOT EXISTS cardio_types (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		description TEXT,
		category TEXT NOT NULL,
		is_built_in INTEGER NOT NULL DEFAULT 0,
		default_distance_unit TEXT,
		show_distance INTEGER NOT NULL DEFAULT 0,
		show_pace INTEGER NOT NULL DEFAULT 0,
		show_speed INTEGER NOT NULL DEFAULT 0,
		pace_unit TEXT,
		speed_unit TEXT
	);

	CREATE TABLE IF NOT EXISTS splits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		description TEXT,
		number_of_days INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS split_exercises (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		split_id INTEGER NOT NULL,
		exercise_id INTEGER NOT NULL,
		day_number INTEGER NOT NULL,
		sets INTEGER NOT NULL,
		rep_min INTEGER NOT NULL DEFAULT 0,
		rep_max INTEGER NOT NULL DEFAULT 0,
		notes TEXT
	);

	CREATE TABLE IF NOT EXISTS split_cardio (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		split_id INTEGER NOT NULL,
		cardio_type_id INTEGER NOT NULL,
		day_number INTEGER NOT NULL,
		target_duration_seconds INTEGER,
		target_distance REAL,
		target_distance_unit TEXT,
		notes TEXT
	);

	CREATE TABLE IF NOT EXISTS workouts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		notes TEXT,
		split_id INTEGER
	);

	CREATE TABLE IF NOT EXISTS sets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		workout_id INTEGER NOT NULL,
		exercise_id INTEGER NOT NULL,
		set_number INTEGER NOT NULL,
		weight INTEGER NOT NULL,
		reps INTEGER NOT NULL,
		weight_unit TEXT NOT NULL DEFAULT 'lbs',
		exercise_note TEXT
	);

	CREATE TABLE IF NOT EXISTS cardio_sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		workout_id INTEGER NOT NULL,
		cardio_type_id INTEGER NOT NULL,
		duration_seconds INTEGER NOT NULL,
		distance REAL,
		distance_unit TEXT,
		calories INTEGER,
		effort_level TEXT,
		rpe INTEGER,
		avg_heart_rate INTEGER,
		max_heart_rate INTEGER,
		notes TEXT,
		is_intervals INTEGER NOT NULL DEFAULT 0,
		work_seconds INTEGER,
		rest_seconds INTEGER,
		rounds INTEGER,
		elevation_gain INTEGER,
		incline REAL,
		resistance_level INTEGER,
		strokes_per_minute INTEGER,
		pool_length TEXT,
		floors_climbed INTEGER,
		total_steps INTEGER,
		total_jumps INTEGER
	);

	CREATE INDEX IF NOT EXISTS idx_split_exercises_split ON split_exercises(split_id);
	CREATE INDEX IF NOT EXISTS idx_split_cardio_split ON split_cardio(split_id);
	CREATE INDEX IF NOT EXISTS idx_sets_workout ON sets(workout_id);
	CREATE INDEX IF NOT EXISTS idx_sets_exercise ON sets(exercise_id);
	CREATE INDEX IF NOT EXISTS idx_cardio_sessions_workout ON cardio_sessions(workout_id);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
