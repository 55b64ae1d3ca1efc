package sim

import "testing"

// testJob is the compact (id, arrival, burst, priority) tuple the engine
// tests submit workloads with.
type testJob struct {
	id       string
	arrival  int64
	burst    int64
	priority int
}

func mustAdd(t *testing.T, add func(string, int64, int64) error, jobs []testJob) {
	t.Helper()
	for _, j := range jobs {
		if err := add(j.id, j.arrival, j.burst); err != nil {
			t.Fatalf("AddJob(%s): %v", j.id, err)
		}
	}
}

func mustAddPriority(t *testing.T, e *PriorityEngine, jobs []testJob) {
	t.Helper()
	for _, j := range jobs {
		if err := e.AddJob(j.id, j.arrival, j.burst, j.priority); err != nil {
			t.Fatalf("AddJob(%s): %v", j.id, err)
		}
	}
}

func mustExecute(t *testing.T, e Engine) {
	t.Helper()
	if err := e.Execute(); err != nil {
		t.Fatalf("%s: Execute: %v", e.Policy(), err)
	}
}

func completionOrder(jobs []Job) []string {
	ids := make([]string, len(jobs))
	for i, j := range jobs {
		ids[i] = j.ID
	}
	return ids
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func timeSlicesEqual(a, b []TimeSlice) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// checkWorkConservation verifies that the schedule executes exactly the
// submitted burst time, no more and no less.
func checkWorkConservation(t *testing.T, e Engine, wantTotal int64) {
	t.Helper()
	var total int64
	for _, s := range e.AllTimeSlices() {
		total += s.Duration()
	}
	if total != wantTotal {
		t.Errorf("%s: total slice duration = %d, want %d", e.Policy(), total, wantTotal)
	}
}

// checkMutualExclusion verifies no two slices overlap. AllTimeSlices is
// sorted by start, so adjacent pairs suffice.
func checkMutualExclusion(t *testing.T, e Engine) {
	t.Helper()
	slices := e.AllTimeSlices()
	for _, s := range slices {
		if s.End <= s.Start {
			t.Errorf("%s: empty or inverted slice %v", e.Policy(), s)
		}
	}
	for i := 1; i < len(slices); i++ {
		if slices[i].Start < slices[i-1].End {
			t.Errorf("%s: overlapping slices %v and %v", e.Policy(), slices[i-1], slices[i])
		}
	}
}

// checkJobIdentities verifies the per-job metric identities on every
/// completed job: turnaround, waiting and response formulas, completion at
// the last slice's end, start at the first slice's start, and slice
// durations summing to the burst.
func checkJobIdentities(t *testing.T, e Engine) {
	t.Helper()
	for _, j := range e.CompletedJobs() {
		if j.State != StateCompleted {
			t.Errorf("%s: job %s state = %s, want %s", e.Policy(), j.ID, j.State, StateCompleted)
		}
		if j.RemainingTime != 0 {
			t.Errorf("%s: job %s remaining = %d, want 0", e.Policy(), j.ID, j.RemainingTime)
		}
		if got, want := j.TurnaroundTime(), j.CompletionTime-j.ArrivalTime; got != want {
			t.Errorf("%s: job %s turnaround = %d, want %d", e.Policy(), j.ID, got, want)
		}
		if got, want := j.WaitingTime(), j.TurnaroundTime()-j.BurstTime; got != want {
			t.Errorf("%s: job %s waiting = %d, want %d", e.Policy(), j.ID, got, want)
		}
		if got, want := j.ResponseTime(), j.StartTime-j.ArrivalTime; got != want {
			t.Errorf("%s: job %s response = %d, want %d", e.Policy(), j.ID, got, want)
		}
		if j.WaitingTime() < 0 || j.ResponseTime() < 0 || j.TurnaroundTime() < 0 {
			t.Errorf("%s: job %s has a negative derived metric", e.Policy(), j.ID)
		}
		if len(j.Slices) == 0 {
			t.Errorf("%s: job %s completed with no slices", e.Policy(), j.ID)
			continue
		}
		if got := j.Slices[0].Start; got != j.StartTime {
			t.Errorf("%s: job %s first slice starts at %d, want start time %d", e.Policy(), j.ID, got, j.StartTime)
		}
		if got := j.Slices[len(j.Slices)-1].End; got != j.CompletionTime {
			t.Errorf("%s: job %s last slice ends at %d, want completion %d", e.Policy(), j.ID, got, j.CompletionTime)
		}
		var dur int64
		for _, s := range j.Slices {
			dur += s.Duration()
		}
		if dur != j.BurstTime {
			t.Errorf("%s: job %s slice durations sum to %d, want burst %d", e.Policy(), j.ID, dur, j.BurstTime)
		}
	}
}
