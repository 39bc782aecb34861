package compose

import (
	"sync"

	"leadscope/domain/core"
)

// Queue buffers fragment-registration callbacks queued before any registry
// exists. Fragment packages live in independently-imported packages whose
// init order relative to registry construction is not guaranteed; deferring
// through the queue makes the merge order-independent. The queue is drained
// exactly once, FIFO, when a registry constructs from it.
type Queue struct {
	mu      sync.Mutex
	pending []func(*Registry)
	drained bool
}

// DefaultQueue is the process-wide queue drained by NewRegistry. Fragment
// packages append to it via Defer from init.
var DefaultQueue = &Queue{}

// Defer appends a registration callback to the default queue. See
// Queue.Defer for the ordering contract.
func Defer(fn func(*Registry)) error {
	return DefaultQueue.Defer(fn)
}

// Defer appends a registration callback. Callbacks run synchronously, in
// append order, against the registry that drains the queue. Deferring after
// the drain point returns core.ErrQueueDrained: the queue is an
// initialization handshake, not a pub/sub channel, and a silent drop would
// hide the ordering bug. Callers that arrive late register directly on the
// registry instead.
func (q *Queue) Defer(fn func(*Registry)) error {
	if fn == nil {
		return nil
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.drained {
		return core.ErrQueueDrained
	}
	q.pending = append(q.pending, fn)
	return nil
}

// Len returns the number of callbacks waiting for the drain.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Drained reports whether the queue has already been consumed.
func (q *Queue) Drained() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.drained
}

// drainInto runs every pending callback against r, in append order, then
// marks the queue consumed. No two callbacks interleave: the queue lock is
// held for the full drain.
func (q *Queue) drainInto(r *Registry) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, fn := range q.pending {
		fn(r)
	}
	q.pending = nil
	q.drained = true
}
