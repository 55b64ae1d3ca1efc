package sim

import "fmt"

// TimeSlice attributes ownership of the processor to one job over the
// half-open interval [Start, End). Slices are immutable once recorded.
// Within a single engine run, slices from different jobs never overlap.
type TimeSlice struct {
	JobID string
	Start int64 // inclusive, in ticks
	End   int64 // exclusive, in ticks; always > Start
}

// Duration returns the length of the slice in ticks.
func (ts TimeSlice) Duration() int64 {
	return ts.End - ts.Start
}

func (ts TimeSlice) String() string {
	return fmt.Sprintf("[%d,%d) %s", ts.Start, ts.End, ts.JobID)
}
