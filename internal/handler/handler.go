package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/cs1429/IronTrack/internal/domain"
	"github.com/cs1429/IronTrack/internal/service"
)

// Handler handles all IronTrack API requests
type Handler struct {
	svc *service.Tracker
}

// New creates a new API handler
func New(svc *service.Tracker) *Handler {
	return &Handler{svc: svc}
}

// Register attaches every API route to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	// Exercise catalog
	mux.HandleFunc("GET /api/exercises", h.ListExercises)
	mux.HandleFunc("POST /api/exercises", h.CreateExercise)
	mux.HandleFunc("PATCH /api/exercises/{id}", h.UpdateExercise)

	// Cardio type catalog
	mux.HandleFunc("GET /api/cardio-types", h.ListCardioTypes)
	mux.HandleFunc("POST /api/cardio-types", h.CreateCardioType)
	mux.HandleFunc("PATCH /api/cardio-types/{id}", h.UpdateCardioType)
	mux.HandleFunc("DELETE /api/cardio-types/{id}", h.DeleteCardioType)

	// Splits
	mux.HandleFunc("GET /api/splits", h.ListSplits)
	mux.HandleFunc("POST /api/splits", h.CreateSplit)
	mux.HandleFunc("GET /api/splits/{id}", h.GetSplit)
	mux.HandleFunc("DELETE /api/splits/{id}", h.DeleteSplit)
	mux.HandleFunc("GET /api/splits/{id}/workouts", h.ListSplitWorkouts)

	// Workouts
	mux.HandleFunc("GET /api/workouts", h.ListWorkouts)
	mux.HandleFunc("POST /api/workouts", h.CreateWorkout)
	mux.HandleFunc("GET /api/workouts/{id}", h.GetWorkout)
	mux.HandleFunc("PATCH /api/workouts/{id}", h.UpdateWorkout)
	mux.HandleFunc("DELETE /api/workouts/{id}", h.DeleteWorkout)

	// Statistics
	mux.HandleFunc("GET /api/stats/{exerciseId}", h.GetExerciseStats)

	// Backup
	mux.HandleFunc("GET /api/export", h.ExportData)
	mux.HandleFunc("POST /api/import", h.ImportData)

	// Starter data
	mux.HandleFunc("POST /api/seed", h.SeedStarterData)
}

// ErrorResponse is the JSON error payload for every failure response.
type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode JSON: %v", err)
	}
}

// respondError maps a domain error onto the wire contract.
func respondError(w http.ResponseWriter, err error) {
	var formatErr *domain.ImportFormatError
	if errors.As(err, &formatErr) {
		writeJSON(w, ErrorResponse{Message: formatErr.Message}, http.StatusBadRequest)
		return
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, ErrorResponse{Message: validationErr.Message, Field: validationErr.Field}, http.StatusBadRequest)
		return
	}

	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, ErrorResponse{Message: err.Error()}, http.StatusNotFound)
		return
	}

	log.Printf("Internal error: %v", err)
	writeJSON(w, ErrorResponse{Message: "internal server error"}, http.StatusInternalServerError)
}

// pathID extracts a numeric path parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{Field: name, Message: "must be a numeric id"}
	}
	return id, nil
}

// decodeBody parses a JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &domain.ValidationError{Message: "invalid request body"}
	}
	return nil
}
