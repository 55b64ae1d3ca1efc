// Shared engine core: job submission and validation, the virtual clock,
// slice recording, completion bookkeeping, and the snapshot accessors all
// four policy engines expose. Engines embed scheduleCore and implement
// only their Execute loop.

package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

type scheduleCore struct {
	policy string

	jobs  map[string]*jobState
	order []*jobState // submission order; index is the tie-break seq

	clock     int64
	completed []*jobState // completion order
}

func newCore(policy string) scheduleCore {
	return scheduleCore{
		policy: policy,
		jobs:   make(map[string]*jobState),
	}
}

// Policy returns the engine's policy name (see the Policy* constants).
func (c *scheduleCore) Policy() string {
	return c.policy
}

// addJob validates and submits one job. The job set is unchanged when an
// error is returned.
func (c *scheduleCore) addJob(id string, arrival, burst int64, priority int) error {
	if id == "" {
		return fmt.Errorf("%w: empty job id", ErrInvalidJobParameters)
	}
	if arrival < 0 || burst <= 0 {
		return fmt.Errorf("%w: job %q arrival=%d burst=%d", ErrInvalidJobParameters, id, arrival, burst)
	}
	if _, exists := c.jobs[id]; exists {
		return fmt.Errorf("%w: duplicate job id %q", ErrInvalidJobParameters, id)
	}
	j := &jobState{
		id:       id,
		seq:      len(c.order),
		arrival:  arrival,
		burst:    burst,
		priority: priority,
	}
	j.restore()
	c.jobs[id] = j
	c.order = append(c.order, j)
	return nil
}

// beginRun gates Execute: it fails before any mutation when the job set
// is empty, otherwise clears previously computed state so every Execute
// recomputes from the submitted inputs.
func (c *scheduleCore) beginRun() error {
	if len(c.order) == 0 {
		return fmt.Errorf("%s: %w", c.policy, ErrEmptySchedule)
	}
	c.Reset()
	return nil
}

// Reset restores every submitted job to its pre-submission state and
// rewinds the clock. Submitted jobs are preserved; computed schedules,
// slice histories, and completion state are cleared.
func (c *scheduleCore) Reset() {
	for _, j := range c.order {
		j.restore()
	}
	c.clock = 0
	c.completed = nil
}

// byArrival returns the submitted jobs ordered by arrival time, equal
// arrivals keeping submission order.
func (c *scheduleCore) byArrival() []*jobState {
	jobs := make([]*jobState, len(c.order))
	copy(jobs, c.order)
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].arrival < jobs[j].arrival
	})
	return jobs
}

// idleUntil jumps the clock forward to the next arrival (idle processor).
func (c *scheduleCore) idleUntil(t int64) {
	logrus.Infof("[%s] t=%d idle until %d", c.policy, c.clock, t)
	c.clock = t
}

// dispatch hands the processor to j at the current clock, recording the
// start time on first dispatch.
func (c *scheduleCore) dispatch(j *jobState) {
	if j.start == unsetTime {
		j.start = c.clock
	}
	j.state = StateRunning
	logrus.Infof("[%s] t=%d dispatch %s (remaining=%d)", c.policy, c.clock, j.id, j.remaining)
}

// recordSlice appends [start, end) to j's execution history.
func (c *scheduleCore) recordSlice(j *jobState, start, end int64) {
	j.slices = append(j.slices, TimeSlice{JobID: j.id, Start: start, End: end})
}

// complete marks j finished at the current clock.
func (c *scheduleCore) complete(j *jobState) {
	j.completion = c.clock
	j.state = StateCompleted
	c.completed = append(c.completed, j)
	logrus.Infof("[%s] t=%d complete %s", c.policy, c.clock, j.id)
}

// CompletedJobs returns snapshots of all completed jobs in completion
// order. Empty before Execute and after Reset.
func (c *scheduleCore) CompletedJobs() []Job {
	jobs := make([]Job, len(c.completed))
	for i, j := range c.completed {
		jobs[i] = j.snapshot()
	}
	return jobs
}

// Job returns a snapshot of the submitted job with the given id.
func (c *scheduleCore) Job(id string) (Job, bool) {
	j, ok := c.jobs[id]
	if !ok {
		return Job{}, false
	}
	return j.snapshot(), true
}

// AllTimeSlices returns every recorded slice across all jobs,
// chronologically sorted by start time.
func (c *scheduleCore) AllTimeSlices() []TimeSlice {
	var slices []TimeSlice
	for _, j := range c.order {
		slices = append(slices, j.slices...)
	}
	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Start < slices[j].Start
	})
	return slices
}

// Metrics computes aggregate statistics over the completed jobs.
func (c *scheduleCore) Metrics() ScheduleMetrics {
	return CalculateMetrics(c.CompletedJobs())
}
