// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrAPIFailure wraps any failed call to a remote system.
	ErrAPIFailure = errors.New("remote api failure")
	// ErrMissingNote signals a standard-group order without notes.
	ErrMissingNote = errors.New("order has no notes")
	// ErrManagerResolution signals a note author that maps to no staff member.
	ErrManagerResolution = errors.New("manager not resolved")
	// ErrStaffUnavailable signals that the staff roster could not be fetched.
	ErrStaffUnavailable = errors.New("staff roster unavailable")
	// ErrConfiguration signals missing or invalid settings.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrRunIncomplete signals that some orders of a run failed.
	ErrRunIncomplete = errors.New("run incomplete")
	// ErrRunInProgress signals an attempt to start overlapping runs.
	ErrRunInProgress = errors.New("run in progress")
	// ErrNoRunYet signals that no run has finished since start.
	ErrNoRunYet = errors.New("no run yet")
)
