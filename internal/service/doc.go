// Package service implements business logic for the IronTrack application.
//
// This package provides the service layer that coordinates between the HTTP
// handlers and the repository layer, implementing business rules and input
// validation.
//
// # Tracker
//
// Tracker is the single service facade. It validates incoming requests with
// go-playground/validator against the JSON field names clients actually
// send, parses contract-level formats such as the workout date string, and
// delegates persistence to the repository.
//
// # Backups
//
// The backup operations parse and check the shape of an uploaded document
// before any database work begins, so a malformed file never opens a
// transaction.
//
// # Design Principles
//
// - Services own business logic and validation
// - Repository pattern for data access
// - Context-aware for cancellation and timeouts
package service
