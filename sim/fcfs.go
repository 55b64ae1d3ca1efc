package sim

// FCFSEngine runs jobs to completion in strict arrival order, idling
// until the next arrival when the processor would otherwise be free.
// Equal arrival times keep submission order. There is no preemption and
// no mode to configure; every job executes as a single slice.
type FCFSEngine struct {
	scheduleCore
}

// NewFCFS creates an empty first-come-first-served engine.
func NewFCFS() *FCFSEngine {
	return &FCFSEngine{scheduleCore: newCore(PolicyFCFS)}
}

// AddJob submits a job. Fails with ErrInvalidJobParameters for a negative
// arrival, non-positive burst, or duplicate id.
func (e *FCFSEngine) AddJob(id string, arrival, burst int64) error {
	return e.addJob(id, arrival, burst, 0)
}

// Execute computes the FCFS schedule over the submitted jobs.
func (e *FCFSEngine) Execute() error {
	if err := e.beginRun(); err != nil {
		return err
	}
	for _, j := range e.byArrival() {
		if e.clock < j.arrival {
			e.idleUntil(j.arrival)
		}
		j.state = StateReady
		e.dispatch(j)
		start := e.clock
		e.clock += j.remaining
		j.remaining = 0
		e.recordSlice(j, start, e.clock)
		e.complete(j)
	}
	return nil
}
