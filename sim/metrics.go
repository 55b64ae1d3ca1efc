// Aggregate statistics over a completed schedule: utilization,
// throughput, context switches, and per-job metric distributions.

package sim

import (
	"fmt"
	"math"
	"sort"
)

// Distribution captures statistical summary of a metric.
type Distribution struct {
	Mean  float64
	P50   float64
	P95   float64
	P99   float64
	Min   float64
	Max   float64
	Count int
}

// NewDistribution computes a Distribution from raw values.
// Returns zero-value Distribution for empty input.
func NewDistribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}

	return Distribution{
		Mean:  sum / float64(len(sorted)),
		P50:   percentile(sorted, 50),
		P95:   percentile(sorted, 95),
		P99:   percentile(sorted, 99),
		Min:   sorted[0],
		Max:   sorted[len(sorted)-1],
		Count: len(sorted),
	}
}

// percentile computes the p-th percentile using linear interpolation.
// Input must be sorted.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100.0 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

// ScheduleMetrics aggregates statistics about one schedule for final
// reporting. Every ratio guards its denominator and reports 0 instead of
// failing on degenerate input.
type ScheduleMetrics struct {
	JobCount       int   // number of completed jobs
	Makespan       int64 // latest completion minus earliest arrival (in ticks)
	TotalBurstTime int64 // sum of burst times over completed jobs

	CPUUtilization float64 // percent of the makespan spent executing
	Throughput     float64 // completed jobs per tick of makespan

	// ContextSwitches counts resumptions: every slice of a job beyond
	// its first. Zero for fully non-preemptive schedules.
	ContextSwitches int

	Turnaround Distribution // completion - arrival, per job
	Waiting    Distribution // turnaround - burst, per job
	Response   Distribution // first dispatch - arrival, per job
}

// CalculateMetrics computes aggregate statistics from completed-job
// snapshots. It is a pure function: the input is never mutated. Jobs that
// have not completed are ignored. Empty input yields zero values.
func CalculateMetrics(jobs []Job) ScheduleMetrics {
	var m ScheduleMetrics

	turnarounds := make([]float64, 0, len(jobs))
	waitings := make([]float64, 0, len(jobs))
	responses := make([]float64, 0, len(jobs))

	first := int64(math.MaxInt64)
	last := int64(math.MinInt64)
	for _, j := range jobs {
		if j.CompletionTime == unsetTime {
			continue
		}
		m.JobCount++
		m.TotalBurstTime += j.BurstTime
		if j.ArrivalTime < first {
			first = j.ArrivalTime
		}
		if j.CompletionTime > last {
			last = j.CompletionTime
		}
		if n := len(j.Slices); n > 1 {
			m.ContextSwitches += n - 1
		}
		turnarounds = append(turnarounds, float64(j.TurnaroundTime()))
		waitings = append(waitings, float64(j.WaitingTime()))
		responses = append(responses, float64(j.ResponseTime()))
	}
	if m.JobCount == 0 {
		return m
	}

	m.Makespan = last - first
	if m.Makespan > 0 {
		m.CPUUtilization = float64(m.TotalBurstTime) / float64(m.Makespan) * 100
		m.Throughput = float64(m.JobCount) / float64(m.Makespan)
	}
	m.Turnaround = NewDistribution(turnarounds)
	m.Waiting = NewDistribution(waitings)
	m.Response = NewDistribution(responses)
	return m
}

// Print displays the aggregated metrics for one schedule.
func (m ScheduleMetrics) Print(policy string) {
	fmt.Printf("=== Schedule Metrics (%s) ===\n", policy)
	fmt.Printf("Completed Jobs    : %d\n", m.JobCount)
	if m.JobCount == 0 {
		return
	}
	fmt.Printf("Makespan          : %d ticks\n", m.Makespan)
	fmt.Printf("CPU Utilization   : %.2f%%\n", m.CPUUtilization)
	fmt.Printf("Throughput        : %.4f jobs/tick\n", m.Throughput)
	fmt.Printf("Context Switches  : %d\n", m.ContextSwitches)
	fmt.Printf("Avg Turnaround    : %.2f ticks (min %.0f, max %.0f)\n", m.Turnaround.Mean, m.Turnaround.Min, m.Turnaround.Max)
	fmt.Printf("Avg Waiting       : %.2f ticks (min %.0f, max %.0f)\n", m.Waiting.Mean, m.Waiting.Min, m.Waiting.Max)
	fmt.Printf("Avg Response      : %.2f ticks (min %.0f, max %.0f)\n", m.Response.Mean, m.Response.Min, m.Response.Max)
}
