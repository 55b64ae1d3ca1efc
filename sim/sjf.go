package sim

// SJFEngine selects, at each decision point, the arrived job with the
// least remaining work. Non-preemptive mode (the default) decides only
// when the processor frees up and runs the winner to completion:
// classical Shortest-Job-First, since nothing has run yet and remaining
// equals burst. Preemptive mode re-decides at every arrival instant and
// preempts the running job when a newcomer's remaining time is strictly
// smaller: Shortest-Remaining-Time-First. Ties break by earliest arrival,
// then submission order; a tie never preempts.
// Warning: under sustained load, long jobs can starve.
type SJFEngine struct {
	scheduleCore
	preemptive bool
}

// NewSJF creates an empty shortest-job-first engine in non-preemptive mode.
func NewSJF() *SJFEngine {
	return &SJFEngine{scheduleCore: newCore(PolicySJF)}
}

// AddJob submits a job. Fails with ErrInvalidJobParameters for a negative
// arrival, non-positive burst, or duplicate id.
func (e *SJFEngine) AddJob(id string, arrival, burst int64) error {
	return e.addJob(id, arrival, burst, 0)
}

// SetPreemptive switches between SJF (false) and SRTF (true) for the
// next Execute call.
func (e *SJFEngine) SetPreemptive(preemptive bool) {
	e.preemptive = preemptive
}

// Preemptive reports whether the engine runs in SRTF mode.
func (e *SJFEngine) Preemptive() bool {
	return e.preemptive
}

// Execute computes the SJF or SRTF schedule over the submitted jobs.
func (e *SJFEngine) Execute() error {
	if err := e.beginRun(); err != nil {
		return err
	}
	e.runSelection(func(j *jobState) int64 { return j.remaining }, e.preemptive)
	return nil
}
