package domain

// Split is a reusable multi-day training template. Names are globally
// unique. A split owns its SplitExercise and SplitCardio rows; deleting the
// split deletes them.
type Split struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	NumberOfDays int64   `json:"numberOfDays"`
}

// SplitExercise prescribes an exercise slot for one training day of a split.
type SplitExercise struct {
	ID         int64   `json:"id"`
	SplitID    int64   `json:"splitId"`
	ExerciseID int64   `json:"exerciseId"`
	DayNumber  int64   `json:"dayNumber"`
	Sets       int64   `json:"sets"`
	RepMin     int64   `json:"repMin"`
	RepMax     int64   `json:"repMax"`
	Notes      *string `json:"notes"`
}

// SplitCardio prescribes a cardio slot for one training day of a split.
type SplitCardio struct {
	ID                    int64    `json:"id"`
	SplitID               int64    `json:"splitId"`
	CardioTypeID          int64    `json:"cardioTypeId"`
	DayNumber             int64    `json:"dayNumber"`
	TargetDurationSeconds *int64   `json:"targetDurationSeconds"`
	TargetDistance        *float64 `json:"targetDistance"`
	TargetDistanceUnit    *string  `json:"targetDistanceUnit"`
	Notes                 *string  `json:"notes"`
}

// SplitExerciseDetail pairs a prescribed slot with the exercise it
// references.
type SplitExerciseDetail struct {
	SplitExercise
	Exercise Exercise `json:"exercise"`
}

// SplitCardioDetail pairs a prescribed cardio slot with its cardio type.
type SplitCardioDetail struct {
	SplitCardio
	CardioType CardioType `json:"cardioType"`
}

// SplitDetail is a split with both child collections eagerly attached.
type SplitDetail struct {
	Split
	SplitExercises []SplitExerciseDetail `json:"splitExercises"`
	SplitCardio    []SplitCardioDetail   `json:"splitCardio"`
}

// SplitExerciseInput is the nested exercise slot shape accepted by split
// creation. DayNumber defaults to 1 when omitted.
type SplitExerciseInput struct {
	ExerciseID int64   `json:"exerciseId" validate:"required"`
	DayNumber  int64   `json:"dayNumber" validate:"omitempty,min=1"`
	Sets       int64   `json:"sets" validate:"required,min=1"`
	RepMin     int64   `json:"repMin" validate:"min=0"`
	RepMax     int64   `json:"repMax" validate:"min=0"`
	Notes      *string `json:"notes"`
}

// SplitCardioInput is the nested cardio slot shape accepted by split
// creation.
type SplitCardioInput struct {
	CardioTypeID          int64    `json:"cardioTypeId" validate:"required"`
	DayNumber             int64    `json:"dayNumber" validate:"omitempty,min=1"`
	TargetDurationSeconds *int64   `json:"targetDurationSeconds"`
	TargetDistance        *float64 `json:"targetDistance"`
	TargetDistanceUnit    *string  `json:"targetDistanceUnit"`
	Notes                 *string  `json:"notes"`
}

// CreateSplitRequest is the POST /api/splits input.
type CreateSplitRequest struct {
	Name           string               `json:"name" validate:"required,min=1"`
	Description    *string              `json:"description"`
	NumberOfDays   int64                `json:"numberOfDays" validate:"omitempty,min=1"`
	SplitExercises []SplitExerciseInput `json:"splitExercises" validate:"dive"`
	SplitCardio    []SplitCardioInput   `json:"splitCardio" validate:"omitempty,dive"`
}
