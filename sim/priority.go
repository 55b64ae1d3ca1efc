package sim

// PriorityEngine selects, at each decision point, the arrived job with
// the lowest priority value (lower = more urgent). The priority is fixed
// at submission and never ages. Non-preemptive mode (the default) decides
// only when the processor frees up; preemptive mode re-decides at every
// arrival instant and preempts the running job only when a newcomer's
// priority is strictly lower; an equal-priority arrival never preempts.
// Ties break by earliest arrival, then submission order.
type PriorityEngine struct {
	scheduleCore
	preemptive bool
}

// NewPriority creates an empty priority engine in non-preemptive mode.
func NewPriority() *PriorityEngine {
	return &PriorityEngine{scheduleCore: newCore(PolicyPriority)}
}

// AddJob submits a job with its priority value. Fails with
// ErrInvalidJobParameters for a negative arrival, non-positive burst, or
// duplicate id. Any integer is a valid priority.
func (e *PriorityEngine) AddJob(id string, arrival, burst int64, priority int) error {
	return e.addJob(id, arrival, burst, priority)
}

// SetPreemptive switches preemption on arrival for the next Execute call.
func (e *PriorityEngine) SetPreemptive(preemptive bool) {
	e.preemptive = preemptive
}

// Preemptive reports whether the engine preempts on arrival.
func (e *PriorityEngine) Preemptive() bool {
	return e.preemptive
}

// Execute computes the priority schedule over the submitted jobs.
func (e *PriorityEngine) Execute() error {
	if err := e.beginRun(); err != nil {
		return err
	}
	e.runSelection(func(j *jobState) int64 { return int64(j.priority) }, e.preemptive)
	return nil
}
