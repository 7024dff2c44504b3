package service

import (
	"context"
)

// Dispatcher runs callback deliveries on the caller's execution context,
// for example a UI event loop. Dispatch must not block for long; deliveries
// of one operation are dispatched in order.
type Dispatcher interface {
	Dispatch(fn func())
}

// InlineDispatcher runs deliveries directly on the repository's background
// goroutine. Useful for callers that do their own synchronisation.
type InlineDispatcher struct{}

func (InlineDispatcher) Dispatch(fn func()) {
	fn()
}

// QueueDispatcher collects deliveries in a FIFO queue that the owning
// goroutine drains, the way a main loop would. It serves tests and headless
// callers; the terminal client uses tui.ProgramDispatcher instead.
type QueueDispatcher struct {
	queue chan func()
}

// NewQueueDispatcher creates a queue holding up to buffer pending deliveries.
// Dispatch blocks when the queue is full.
func NewQueueDispatcher(buffer int) *QueueDispatcher {
	return &QueueDispatcher{queue: make(chan func(), buffer)}
}

func (q *QueueDispatcher) Dispatch(fn func()) {
	q.queue <- fn
}

// RunNext runs exactly one queued delivery, waiting for it if necessary.
func (q *QueueDispatcher) RunNext(ctx context.Context) error {
	select {
	case fn := <-q.queue:
		fn()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run drains the queue until ctx is done.
func (q *QueueDispatcher) Run(ctx context.Context) {
	for {
		if err := q.RunNext(ctx); err != nil {
			return
		}
	}
}

// Pending reports how many deliveries are waiting.
func (q *QueueDispatcher) Pending() int {
	return len(q.queue)
}
