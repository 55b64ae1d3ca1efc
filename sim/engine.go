package sim

// Policy names used in workload files, CLI flags, and logs.
const (
	PolicyFCFS       = "fcfs"
	PolicySJF        = "sjf"
	PolicyPriority   = "priority"
	PolicyRoundRobin = "round-robin"
)

// ValidPolicies is the set of recognized policy names.
// Shared by workload validation and the CLI to avoid duplication.
var ValidPolicies = map[string]bool{
	PolicyFCFS:       true,
	PolicySJF:        true,
	PolicyPriority:   true,
	PolicyRoundRobin: true,
}

// IsValidPolicy reports whether name is a recognized policy name.
func IsValidPolicy(name string) bool {
	return ValidPolicies[name]
}

// Engine is the contract shared by the four policy engines. Job
// submission stays on the concrete types (the priority engine's AddJob
// takes a priority argument), as do the mode setters; everything the
// consumers of a schedule need is here.
//
// Execute runs the policy loop over the submitted jobs. It returns an
// error wrapping ErrEmptySchedule when no jobs were submitted, mutating
// nothing; otherwise it recomputes the schedule from scratch and always
// terminates, since every productive step decreases total remaining work
// and idle jumps are bounded by the arrival list. Re-running Execute on
// unchanged inputs and mode reproduces identical slices and metrics.
//
// The read accessors return snapshots only; callers never observe or
// corrupt live simulation state. An engine instance is not safe for
// concurrent use.
type Engine interface {
	Policy() string
	Execute() error
	Reset()
	CompletedJobs() []Job
	Job(id string) (Job, bool)
	AllTimeSlices() []TimeSlice
	Metrics() ScheduleMetrics
}
