package workers

import (
	"errors"
	"sync"
)

// ErrSerialStopped is returned when a task is submitted after Stop.
var ErrSerialStopped = errors.New("serial worker stopped")

// Serial executes submitted tasks one at a time, in submission order, on a
// single goroutine. A panicking task is not recovered.
type Serial struct {
	tasks chan func()
	done  chan struct{}

	mu      sync.RWMutex
	stopped bool
	once    sync.Once
}

// NewSerial starts a serial executor whose queue holds up to buffer pending
// tasks before Submit blocks.
func NewSerial(buffer int) *Serial {
	if buffer < 0 {
		buffer = 0
	}

	s := &Serial{
		tasks: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
	go s.loop()

	return s
}

func (s *Serial) loop() {
	defer close(s.done)
	for task := range s.tasks {
		task()
	}
}

// Submit enqueues task and returns without waiting for it to run.
func (s *Serial) Submit(task func()) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.stopped {
		return ErrSerialStopped
	}
	s.tasks <- task

	return nil
}

// Do enqueues task and blocks until it has run.
func (s *Serial) Do(task func()) error {
	finished := make(chan struct{})
	err := s.Submit(func() {
		defer close(finished)
		task()
	})
	if err != nil {
		return err
	}

	<-finished
	return nil
}

// Stop rejects new tasks, lets queued tasks finish and waits for the loop to
// exit. Safe to call more than once.
func (s *Serial) Stop() {
	s.once.Do(func() {
		s.mu.Lock()
		s.stopped = true
		close(s.tasks)
		s.mu.Unlock()
	})
	<-s.done
}
