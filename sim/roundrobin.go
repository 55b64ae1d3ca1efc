package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// DefaultQuantum is the time quantum a round-robin engine starts with.
const DefaultQuantum int64 = 2

// RoundRobinEngine cycles the processor through a FIFO ready queue in
// fixed time quanta. The queue is refilled from arrivals before every
// dispatch and again immediately after a slice ends, so jobs arriving
// during a slice are queued ahead of the preempted incumbent. Preemptive
// mode (the default) caps each dispatch at the quantum; non-preemptive
// mode runs every dispatch to completion and the quantum is only nominal.
// Every dispatch records its own slice, so a job's slice count in
// preemptive mode is ceil(burst/quantum).
type RoundRobinEngine struct {
	scheduleCore
	quantum    int64
	preemptive bool
}

// NewRoundRobin creates an empty round-robin engine with DefaultQuantum
// in preemptive mode.
func NewRoundRobin() *RoundRobinEngine {
	return &RoundRobinEngine{
		scheduleCore: newCore(PolicyRoundRobin),
		quantum:      DefaultQuantum,
		preemptive:   true,
	}
}

// AddJob submits a job. Fails with ErrInvalidJobParameters for a negative
// arrival, non-positive burst, or duplicate id.
func (e *RoundRobinEngine) AddJob(id string, arrival, burst int64) error {
	return e.addJob(id, arrival, burst, 0)
}

// SetQuantum configures the time quantum for the next Execute call.
// Fails with ErrInvalidQuantum for q <= 0, keeping the current quantum.
func (e *RoundRobinEngine) SetQuantum(q int64) error {
	if q <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantum, q)
	}
	e.quantum = q
	return nil
}

// Quantum returns the configured time quantum.
func (e *RoundRobinEngine) Quantum() int64 {
	return e.quantum
}

// SetPreemptive switches quantum preemption for the next Execute call.
func (e *RoundRobinEngine) SetPreemptive(preemptive bool) {
	e.preemptive = preemptive
}

// Preemptive reports whether dispatches are capped at the quantum.
func (e *RoundRobinEngine) Preemptive() bool {
	return e.preemptive
}

// Execute computes the round-robin schedule over the submitted jobs.
func (e *RoundRobinEngine) Execute() error {
	if err := e.beginRun(); err != nil {
		return err
	}
	pending := e.byArrival()
	next := 0
	var ready ReadyQueue

	admit := func() {
		for next < len(pending) && pending[next].arrival <= e.clock {
			pending[next].state = StateReady
			ready.Enqueue(pending[next])
			next++
		}
	}

	completed := 0
	for completed < len(pending) {
		admit()
		if ready.Len() == 0 {
			e.idleUntil(pending[next].arrival)
			continue
		}
		j := ready.Dequeue()
		e.dispatch(j)

		run := j.remaining
		if e.preemptive && e.quantum < run {
			run = e.quantum
		}
		start := e.clock
		e.clock += run
		j.remaining -= run
		e.recordSlice(j, start, e.clock)

		// Jobs that arrived during the slice enter the queue before
		// the incumbent is re-enqueued.
		admit()
		if j.remaining == 0 {
			e.complete(j)
			completed++
		} else {
			j.state = StateReady
			logrus.Infof("[%s] t=%d preempt %s (remaining=%d), queue=%s", e.policy, e.clock, j.id, j.remaining, ready.String())
			ready.Enqueue(j)
		}
	}
	return nil
}
