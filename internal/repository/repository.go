package repository

import (
	"context"
	"time"

	"github.com/cs1429/IronTrack/internal/domain"
)

// Store defines the persistence interface for workout tracking data
type Store interface {
	// Exercise catalog
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
	GetExercise(ctx context.Context, id int64) (*domain.Exercise, error)
	CreateExercise(ctx context.Context, req domain.CreateExerciseRequest) (*domain.Exercise, error)
	UpdateExercise(ctx context.Context, id int64, req domain.UpdateExerciseRequest) (*domain.Exercise, error)

	// Cardio type catalog
	ListCardioTypes(ctx context.Context) ([]domain.CardioType, error)
	GetCardioType(ctx context.Context, id int64) (*domain.CardioType, error)
	CreateCardioType(ctx context.Context, req domain.CreateCardioTypeRequest) (*domain.CardioType, error)
	UpdateCardioType(ctx context.Context, id int64, req domain.UpdateCardioTypeRequest) (*domain.CardioType, error)
	DeleteCardioType(ctx context.Context, id int64) error
	SeedBuiltInCardioTypes(ctx context.Context) error

	// Splits
	ListSplits(ctx context.Context) ([]domain.SplitDetail, error)
	GetSplit(ctx context.Context, id int64) (*domain.SplitDetail, error)
	CreateSplit(ctx context.Context, req domain.CreateSplitRequest) (*domain.SplitDetail, error)
	DeleteSplit(ctx context.Context, id int64) error
	ListSplitWorkouts(ctx context.Context, splitID int64) ([]domain.WorkoutDetail, error)

	// Workouts
	ListWorkouts(ctx context.Context) ([]domain.WorkoutDetail, error)
	GetWorkout(ctx context.Context, id int64) (*domain.WorkoutDetail, error)
	CreateWorkout(ctx context.Context, date time.Time, req domain.CreateWorkoutRequest) (*domain.WorkoutDetail, error)
	UpdateWorkout(ctx context.Context, id int64, req domain.UpdateWorkoutRequest) (*domain.WorkoutDetail, error)
	DeleteWorkout(ctx context.Context, id int64) error

	// Statistics
	GetExerciseStats(ctx context.Context, exerciseID int64) ([]domain.ExerciseStats, error)

	// Backup
	ExportAllData(ctx context.Context) (*domain.Backup, error)
	ImportAllData(ctx context.Context, backup *domain.Backup) (*domain.ImportCounts, error)

	// Close releases resources
	Close() error
}
