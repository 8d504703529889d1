package domain

// Exercise is a named strength movement. Names are globally unique;
// sets and split slots reference exercises by id.
type Exercise struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CreateExerciseRequest is the POST /api/exercises input.
type CreateExerciseRequest struct {
	Name        string  `json:"name" validate:"required,min=1"`
	Description *string `json:"description"`
}

// UpdateExerciseRequest is the PATCH /api/exercises/{id} input.
// Nil fields are left untouched.
type UpdateExerciseRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}
