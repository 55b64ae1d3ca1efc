package sim

import "errors"

// Sentinel errors returned by engine operations. Callers match them with
// errors.Is; the returned errors carry wrapped context (job id, offending
// value) via fmt.Errorf %w.
var (
	// ErrInvalidJobParameters is returned by AddJob when a job has a
	// negative arrival time, a non-positive burst time, an empty id,
	// or an id that is already submitted. The job set is left unchanged.
	ErrInvalidJobParameters = errors.New("invalid job parameters")

	// ErrInvalidQuantum is returned by SetQuantum for a non-positive
	// time quantum. The configured quantum is left unchanged.
	ErrInvalidQuantum = errors.New("time quantum must be positive")

	// ErrEmptySchedule is returned by Execute when no jobs have been
	// submitted. No engine state is mutated.
	ErrEmptySchedule = errors.New("no jobs to schedule")
)
