// Package sim provides a discrete-event simulation engine for classical
// single-processor CPU scheduling policies.
//
// # Reading Guide
//
// Start with these three files to understand the kernel:
//   - job.go: Job lifecycle (pending -> ready -> running -> completed),
//     the snapshot type handed to callers, and per-job derived metrics
//   - core.go: the state every engine shares: job submission, the
//     virtual clock, slice recording, reset, and the read accessors
//   - selection.go: the decision-point loop behind the SJF and priority
//     engines, including preemption and tie-breaking
//
// # Architecture
//
// Four policy engines embed the shared core and implement one Execute
// loop each:
//   - fcfs.go: strict arrival order, one slice per job
//   - sjf.go: shortest job / shortest remaining time first
//   - priority.go: lowest priority value first, optional preemption
//   - roundrobin.go: quantum slicing over a FIFO ready queue (queue.go)
//
// Execute is all-or-nothing: it fails with ErrEmptySchedule before
// touching any state, and otherwise recomputes the whole schedule from
// the submitted jobs. Callers read results through snapshots only
// (CompletedJobs, Job, AllTimeSlices) and aggregate statistics through
// CalculateMetrics (metrics.go); live simulation state is never exposed.
//
// Workload files that describe jobs and policy configuration live in the
// sim/workload sub-package.
package sim
