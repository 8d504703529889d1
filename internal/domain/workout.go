package domain

import "time"

// Workout is one logged training session. SplitID is a loose reference to
// the split that was followed; it is not an enforced foreign key and may
// point at a deleted split.
type Workout struct {
	ID      int64     `json:"id"`
	Date    time.Time `json:"date"`
	Notes   *string   `json:"notes"`
	SplitID *int64    `json:"splitId"`
}

// Set is one completed unit of a workout for a given exercise.
// SetNumber is 1-based within the exercise occurrence.
type Set struct {
	ID           int64   `json:"id"`
	WorkoutID    int64   `json:"workoutId"`
	ExerciseID   int64   `json:"exerciseId"`
	SetNumber    int64   `json:"setNumber"`
	Weight       int64   `json:"weight"`
	Reps         int64   `json:"reps"`
	WeightUnit   string  `json:"weightUnit"`
	ExerciseNote *string `json:"exerciseNote"`
}

// SetDetail pairs a set with the exercise it was performed for.
type SetDetail struct {
	Set
	Exercise Exercise `json:"exercise"`
}

// CardioSessionDetail pairs a cardio session with its cardio type.
type CardioSessionDetail struct {
	CardioSession
	CardioType CardioType `json:"cardioType"`
}

// WorkoutDetail is a workout with both child collections eagerly attached,
// sets ordered by set number.
type WorkoutDetail struct {
	Workout
	Sets           []SetDetail           `json:"sets"`
	CardioSessions []CardioSessionDetail `json:"cardioSessions"`
}

// SetInput is the nested set shape accepted by workout create and update.
// ID is only meaningful on update: set, it addresses an existing set row;
// unset, a new set is inserted under the workout being updated.
type SetInput struct {
	ID           *int64  `json:"id,omitempty"`
	ExerciseID   int64   `json:"exerciseId" validate:"required"`
	SetNumber    int64   `json:"setNumber" validate:"required,min=1"`
	Weight       int64   `json:"weight" validate:"min=0"`
	Reps         int64   `json:"reps" validate:"required,min=1"`
	WeightUnit   string  `json:"weightUnit" validate:"omitempty,oneof=lbs kg"`
	ExerciseNote *string `json:"exerciseNote"`
}

// CreateWorkoutRequest is the POST /api/workouts input. Date is an ISO 8601
// timestamp string, parsed at the contract boundary.
type CreateWorkoutRequest struct {
	Date           string               `json:"date" validate:"required"`
	Notes          *string              `json:"notes"`
	SplitID        *int64               `json:"splitId"`
	Sets           []SetInput           `json:"sets" validate:"dive"`
	CardioSessions []CardioSessionInput `json:"cardioSessions" validate:"omitempty,dive"`
}

// UpdateWorkoutRequest is the PATCH /api/workouts/{id} input. It is a sparse
// diff, not a replace-all: ids named in the deleted lists are removed,
// entries carrying an id are updated in place, entries without an id are
// inserted as new children of the workout.
type UpdateWorkoutRequest struct {
	Notes                   *string              `json:"notes"`
	Sets                    []SetInput           `json:"sets" validate:"dive"`
	DeletedSetIDs           []int64              `json:"deletedSetIds"`
	CardioSessions          []CardioSessionInput `json:"cardioSessions" validate:"omitempty,dive"`
	DeletedCardioSessionIDs []int64              `json:"deletedCardioSessionIds"`
}
