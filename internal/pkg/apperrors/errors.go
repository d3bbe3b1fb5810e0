// Package apperrors defines the sentinel errors shared across services so
// handlers can map domain failures to HTTP statuses without string matching.
package apperrors

import "errors"

var (
	// ErrValidation covers malformed input rejected before any state change.
	ErrValidation = errors.New("validation failed")
	// ErrRegisterAlreadyOpen is returned when a campus already has a session
	// in "abierta" state.
	ErrRegisterAlreadyOpen = errors.New("cash register already open for campus")
	// ErrAlreadyClosed is returned when closing a session that is "cerrada".
	ErrAlreadyClosed = errors.New("cash register already closed")
	// ErrInvalidCount is returned for a negative or non-integer denomination
	// quantity.
	ErrInvalidCount = errors.New("invalid denomination count")
	// ErrScopeRace is returned when two writers collided on a folio scope and
	// the unit of work should be retried.
	ErrScopeRace = errors.New("folio scope contention, retry")
	// ErrNotFound is returned when a referenced transaction, session, campus
	// or card does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInfrastructure wraps storage-layer failures that must not leak
	// internal detail to callers.
	ErrInfrastructure = errors.New("infrastructure failure")
)
