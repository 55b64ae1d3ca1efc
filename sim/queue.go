// Implements the ReadyQueue, the FIFO of arrived jobs waiting for their
// next turn on the processor. The round-robin engine enqueues jobs on
// arrival and re-enqueues preempted jobs at the back.

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue is a FIFO queue of jobs that have arrived and are waiting
// to be dispatched.
type ReadyQueue struct {
	queue []*jobState
}

// Enqueue adds a job to the back of the queue.
func (rq *ReadyQueue) Enqueue(j *jobState) {
	rq.queue = append(rq.queue, j)
}

// Dequeue removes and returns the job at the front of the queue.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Dequeue() *jobState {
	if len(rq.queue) == 0 {
		return nil
	}
	j := rq.queue[0]
	rq.queue = rq.queue[1:]
	return j
}

// Peek returns the job at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Peek() *jobState {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Len returns the number of jobs in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, j := range rq.queue {
		sb.WriteString(fmt.Sprint(j.id))
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
