// Package repository defines the data access interfaces for IronTrack.
//
// This package provides the repository abstraction layer for persisting
// and retrieving domain entities. The actual implementation is in the
// sqlite subpackage.
//
// # Store Interface
//
// The Store interface defines all data access methods for exercises,
// cardio types, splits, workouts, per-exercise statistics, and backups.
//
// # SQLite Implementation
//
// The sqlite implementation provides a complete store using SQLite with
// WAL mode. It handles:
//
// - CRUD operations for all entity types
// - Transactional multi-table writes for splits and workouts
// - Sparse child reconciliation on workout updates
// - Merge-by-name import with id remapping
// - Built-in cardio type seeding
//
// # Schema Migration
//
// The sqlite store automatically creates its schema on startup,
// preserving existing data.
//
// # Testing
//
// The sqlite store is extensively tested with in-memory databases to
// ensure data integrity and proper handling of edge cases.
package repository
