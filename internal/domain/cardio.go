package domain

// CardioType is a catalog entry describing a cardio modality and which
// measurements its logging form should expose. Built-in rows are seeded at
// startup; user-created rows carry IsBuiltIn=false.
type CardioType struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name"`
	Description         *string `json:"description"`
	Category            string  `json:"category"`
	IsBuiltIn           bool    `json:"isBuiltIn"`
	DefaultDistanceUnit *string `json:"defaultDistanceUnit"`
	ShowDistance        bool    `json:"showDistance"`
	ShowPace            bool    `json:"showPace"`
	ShowSpeed           bool    `json:"showSpeed"`
	PaceUnit            *string `json:"paceUnit"`
	SpeedUnit           *string `json:"speedUnit"`
}

// CardioSession is one logged cardio activity inside a workout. Most fields
// are optional; the modality-specific extras at the end are only populated
// for the cardio types they make sense for.
type CardioSession struct {
	ID               int64    `json:"id"`
	WorkoutID        int64    `json:"workoutId"`
	CardioTypeID     int64    `json:"cardioTypeId"`
	DurationSeconds  int64    `json:"durationSeconds"`
	Distance         *float64 `json:"distance"`
	DistanceUnit     *string  `json:"distanceUnit"`
	Calories         *int64   `json:"calories"`
	EffortLevel      *string  `json:"effortLevel"`
	RPE              *int64   `json:"rpe"`
	AvgHeartRate     *int64   `json:"avgHeartRate"`
	MaxHeartRate     *int64   `json:"maxHeartRate"`
	Notes            *string  `json:"notes"`
	IsIntervals      bool     `json:"isIntervals"`
	WorkSeconds      *int64   `json:"workSeconds"`
	RestSeconds      *int64   `json:"restSeconds"`
	Rounds           *int64   `json:"rounds"`
	ElevationGain    *int64   `json:"elevationGain"`
	Incline          *float64 `json:"incline"`
	ResistanceLevel  *int64   `json:"resistanceLevel"`
	StrokesPerMinute *int64   `json:"strokesPerMinute"`
	PoolLength       *string  `json:"poolLength"`
	FloorsClimbed    *int64   `json:"floorsClimbed"`
	TotalSteps       *int64   `json:"totalSteps"`
	TotalJumps       *int64   `json:"totalJumps"`
}

// CreateCardioTypeRequest is the POST /api/cardio-types input.
type CreateCardioTypeRequest struct {
	Name                string  `json:"name" validate:"required,min=1"`
	Description         *string `json:"description"`
	Category            string  `json:"category" validate:"required,oneof=run cycle row swim other"`
	IsBuiltIn           bool    `json:"isBuiltIn"`
	DefaultDistanceUnit *string `json:"defaultDistanceUnit"`
	ShowDistance        bool    `json:"showDistance"`
	ShowPace            bool    `json:"showPace"`
	ShowSpeed           bool    `json:"showSpeed"`
	PaceUnit            *string `json:"paceUnit"`
	SpeedUnit           *string `json:"speedUnit"`
}

// UpdateCardioTypeRequest is the PATCH /api/cardio-types/{id} input.
// Nil fields are left untouched.
type UpdateCardioTypeRequest struct {
	Name                *string `json:"name" validate:"omitempty,min=1"`
	Description         *string `json:"description"`
	Category            *string `json:"category" validate:"omitempty,oneof=run cycle row swim other"`
	DefaultDistanceUnit *string `json:"defaultDistanceUnit"`
	ShowDistance        *bool   `json:"showDistance"`
	ShowPace            *bool   `json:"showPace"`
	ShowSpeed           *bool   `json:"showSpeed"`
	PaceUnit            *string `json:"paceUnit"`
	SpeedUnit           *string `json:"speedUnit"`
}

// CardioSessionInput is the nested cardio session shape accepted by workout
// create and update. ID is only meaningful on update: set, it addresses an
// existing session; unset, a new session is inserted.
type CardioSessionInput struct {
	ID               *int64   `json:"id,omitempty"`
	CardioTypeID     int64    `json:"cardioTypeId" validate:"required"`
	DurationSeconds  int64    `json:"durationSeconds" validate:"required,min=1"`
	Distance         *float64 `json:"distance"`
	DistanceUnit     *string  `json:"distanceUnit"`
	Calories         *int64   `json:"calories"`
	EffortLevel      *string  `json:"effortLevel" validate:"omitempty,oneof=easy moderate hard"`
	RPE              *int64   `json:"rpe" validate:"omitempty,min=1,max=10"`
	AvgHeartRate     *int64   `json:"avgHeartRate"`
	MaxHeartRate     *int64   `json:"maxHeartRate"`
	Notes            *string  `json:"notes"`
	IsIntervals      bool     `json:"isIntervals"`
	WorkSeconds      *int64   `json:"workSeconds"`
	RestSeconds      *int64   `json:"restSeconds"`
	Rounds           *int64   `json:"rounds"`
	ElevationGain    *int64   `json:"elevationGain"`
	Incline          *float64 `json:"incline"`
	ResistanceLevel  *int64   `json:"resistanceLevel"`
	StrokesPerMinute *int64   `json:"strokesPerMinute"`
	PoolLength       *string  `json:"poolLength"`
	FloorsClimbed    *int64   `json:"floorsClimbed"`
	TotalSteps       *int64   `json:"totalSteps"`
	TotalJumps       *int64   `json:"totalJumps"`
}
