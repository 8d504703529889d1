// Package handler implements HTTP request handlers for the IronTrack API.
//
// This package provides the HTTP layer for the IronTrack REST API, handling
// requests for the exercise and cardio type catalogs, splits, workouts,
// per-exercise statistics, and backup import/export.
//
// # API Design
//
// All handlers follow REST conventions:
// - GET for retrieval
// - POST for creation
// - PATCH for partial updates
// - DELETE for removal
//
// Errors are returned as JSON with appropriate HTTP status codes.
// Request bodies are validated before processing.
//
// # Response Format
//
// Success responses return JSON data with appropriate status codes
// (200, 201, 204). Error responses return JSON with a {message, field?}
// structure; field is present only for validation failures tied to a
// specific input field.
//
// # Error Mapping
//
// Domain errors map to status codes in one place: validation and backup
// format errors become 400, missing records become 404, everything else is
// logged and becomes a generic 500.
//
// Middleware provides request logging, panic recovery, and CORS support.
package handler
