// Package domain defines the core types for the IronTrack workout tracker.
//
// This package contains the persisted entities (exercises, cardio types,
// splits, workouts and their child rows), the composed detail views the API
// returns, the request shapes the contract accepts, the backup document
// format, and the typed errors the rest of the application maps onto HTTP
// statuses.
//
// # Entities
//
// Exercise and CardioType are catalog rows referenced by id from everywhere
// else. Split is a reusable multi-day training template owning SplitExercise
// and SplitCardio child rows. Workout is one logged session owning Set and
// CardioSession child rows. Children always belong to exactly one parent and
// are deleted with it.
//
// # Detail views
//
// SplitDetail and WorkoutDetail embed the parent row and attach fully
// resolved children, so API consumers never have to chase catalog ids.
//
// # Design Principles
//
// - No database or HTTP dependencies
// - Pointer fields model nullable columns and optional JSON members
// - JSON tags are the wire contract; they never change casually
package domain
