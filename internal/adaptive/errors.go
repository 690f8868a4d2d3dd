package adaptive

import "errors"

var (
	// ErrNotFound is returned when no adaptive config exists for a workout.
	// The caller must build one first.
	ErrNotFound = errors.New("adaptive workout config not found")

	// ErrEmptyWorkout is returned when a config build is attempted for a base
	// workout with no exercises. Not recoverable; surfaced to the caller.
	ErrEmptyWorkout = errors.New("base workout has no exercises")

	// ErrConcurrentUpdate is returned when a save detects that the stored
	// config changed since it was loaded. The caller should retry the
	// read-modify-write with the latest snapshot.
	ErrConcurrentUpdate = errors.New("adaptive workout config was modified concurrently")
)
