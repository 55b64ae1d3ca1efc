// Defines the Job snapshot exposed to callers and the mutable job record
// the engines own during a run. Tracks arrival, burst, remaining work,
// dispatch and completion timestamps, and the per-job slice history.

package sim

import "fmt"

// JobState represents the lifecycle state of a job.
type JobState string

const (
	StatePending   JobState = "pending"   // submitted, not yet arrived
	StateReady     JobState = "ready"     // arrived, waiting for the processor
	StateRunning   JobState = "running"   // currently holding the processor
	StateCompleted JobState = "completed" // all burst time executed
)

// unsetTime is the sentinel for timestamps not yet reached
// (start before first dispatch, completion before the last tick).
const unsetTime int64 = -1

// Job is an immutable snapshot of one job's simulation state. Engines
// hand out copies only; mutating a snapshot (including its Slices) never
// affects the engine's own records.
type Job struct {
	ID          string
	ArrivalTime int64 // tick the job becomes eligible for scheduling
	BurstTime   int64 // total processor time the job requires

	// Priority orders jobs for the priority engine: lower value = more
	// urgent. Zero for engines that do not use it.
	Priority int

	RemainingTime  int64 // burst time not yet executed
	StartTime      int64 // tick of first dispatch, unsetTime before that
	CompletionTime int64 // tick remaining work hit zero, unsetTime before that
	State          JobState

	// Slices is the job's execution history in dispatch order.
	Slices []TimeSlice
}

// TurnaroundTime is the span from arrival to completion.
// Zero until the job completes.
func (j Job) TurnaroundTime() int64 {
	if j.CompletionTime == unsetTime {
		return 0
	}
	return j.CompletionTime - j.ArrivalTime
}

// WaitingTime is the time spent ready but not running
// (turnaround minus burst). Zero until the job completes.
func (j Job) WaitingTime() int64 {
	if j.CompletionTime == unsetTime {
		return 0
	}
	return j.TurnaroundTime() - j.BurstTime
}

// ResponseTime is the span from arrival to first dispatch.
// Zero until the job is first dispatched.
func (j Job) ResponseTime() int64 {
	if j.StartTime == unsetTime {
		return 0
	}
	return j.StartTime - j.ArrivalTime
}

func (j Job) String() string {
	return fmt.Sprintf("Job: (ID: %s, State: %s, Arrival: %d, Burst: %d, Remaining: %d)",
		j.ID, j.State, j.ArrivalTime, j.BurstTime, j.RemainingTime)
}

// jobState is the engine-owned mutable record behind Job snapshots.
// seq is the submission order, the final tie-break key everywhere a
// minimum is selected.
type jobState struct {
	id       string
	seq      int
	arrival  int64
	burst    int64
	priority int

	remaining  int64
	start      int64
	completion int64
	state      JobState
	slices     []TimeSlice
}

// restore returns the record to its pre-submission state so the engine
// can re-run without resubmitting jobs.
func (j *jobState) restore() {
	j.remaining = j.burst
	j.start = unsetTime
	j.completion = unsetTime
	j.state = StatePending
	j.slices = nil
}

// snapshot copies the record into an immutable Job, including a private
// copy of the slice history.
func (j *jobState) snapshot() Job {
	slices := make([]TimeSlice, len(j.slices))
	copy(slices, j.slices)
	return Job{
		ID:             j.id,
		ArrivalTime:    j.arrival,
		BurstTime:      j.burst,
		Priority:       j.priority,
		RemainingTime:  j.remaining,
		StartTime:      j.start,
		CompletionTime: j.completion,
		State:          j.state,
		Slices:         slices,
	}
}
