// The decision-point loop shared by the SJF and priority engines: both
// select an arrival-gated minimum and, in preemptive mode, re-challenge
// the running job at every arrival instant. Only the selection key
// differs between the two policies.

package sim

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// selectionKey ranks ready jobs at a decision point; the smallest key
// runs next. Ties break by earliest arrival, then submission order.
type selectionKey func(*jobState) int64

// runSelection drives the clock from zero until every submitted job has
// completed. Non-preemptive mode runs each dispatched job to completion
// as a single slice. Preemptive mode runs the current job until it
// completes or the next job arrives; at an arrival boundary the incumbent
// is preempted only when the best ready job's key is strictly smaller, so
// equal keys never preempt. A slice closes only at preemption or
// completion.
func (c *scheduleCore) runSelection(key selectionKey, preemptive bool) {
	pending := c.byArrival()
	next := 0
	ready := make([]*jobState, 0, len(pending))

	// The ready set is rebuilt explicitly at each decision point; no
	// selection ever depends on incidental list order.
	admit := func() {
		for next < len(pending) && pending[next].arrival <= c.clock {
			pending[next].state = StateReady
			ready = append(ready, pending[next])
			next++
		}
	}
	sortReady := func() {
		sort.SliceStable(ready, func(i, j int) bool {
			if key(ready[i]) != key(ready[j]) {
				return key(ready[i]) < key(ready[j])
			}
			if ready[i].arrival != ready[j].arrival {
				return ready[i].arrival < ready[j].arrival
			}
			return ready[i].seq < ready[j].seq
		})
	}
	popBest := func() *jobState {
		sortReady()
		best := ready[0]
		ready = ready[1:]
		return best
	}

	var current *jobState
	var sliceStart int64
	completed := 0
	for completed < len(pending) {
		admit()
		if current == nil {
			if len(ready) == 0 {
				c.idleUntil(pending[next].arrival)
				continue
			}
			current = popBest()
			c.dispatch(current)
			sliceStart = c.clock
		}

		runUntil := c.clock + current.remaining
		if preemptive && next < len(pending) && pending[next].arrival < runUntil {
			runUntil = pending[next].arrival
		}
		current.remaining -= runUntil - c.clock
		c.clock = runUntil

		if current.remaining == 0 {
			c.recordSlice(current, sliceStart, c.clock)
			c.complete(current)
			current = nil
			completed++
			continue
		}

		// Arrival boundary mid-run (preemptive only): admit the
		// newcomers and re-challenge the incumbent.
		admit()
		if len(ready) == 0 {
			continue
		}
		sortReady()
		if key(ready[0]) < key(current) {
			c.recordSlice(current, sliceStart, c.clock)
			current.state = StateReady
			logrus.Infof("[%s] t=%d preempt %s for %s", c.policy, c.clock, current.id, ready[0].id)
			ready = append(ready, current)
			current = popBest()
			c.dispatch(current)
			sliceStart = c.clock
		}
	}
}
