package canvaslab

import (
	"context"
	"sync"
)

// Scheduler queues continuations produced by background work until the
// host runs them. Drawing stays on the host's goroutine: work started
// with Go runs concurrently, but whatever it hands back only runs inside
// RunPending or Wait.
//
// Post and Go are safe for concurrent use. RunPending and Wait must be
// called from one goroutine at a time.
type Scheduler struct {
	mu       sync.Mutex
	pending  []func()
	inflight int
	wake     chan struct{}
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{wake: make(chan struct{}, 1)}
}

// Post queues fn.
func (s *Scheduler) Post(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.pending = append(s.pending, fn)
	s.mu.Unlock()
	s.signal()
}

// Go runs work on a new goroutine and posts the continuation it returns.
// A nil continuation is dropped.
func (s *Scheduler) Go(work func() func()) {
	s.mu.Lock()
	s.inflight++
	s.mu.Unlock()

	go func() {
		next := work()
		s.mu.Lock()
		s.inflight--
		if next != nil {
			s.pending = append(s.pending, next)
		}
		s.mu.Unlock()
		s.signal()
	}()
}

func (s *Scheduler) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Pending returns the number of continuations waiting to run.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// RunPending runs the queued continuations in posting order and returns
// how many ran. Continuations posted while running wait for the next call.
func (s *Scheduler) RunPending() int {
	s.mu.Lock()
	batch := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Wait runs continuations until no work is in flight and nothing is
// queued, or until ctx is done.
func (s *Scheduler) Wait(ctx context.Context) error {
	for {
		s.RunPending()

		s.mu.Lock()
		idle := s.inflight == 0 && len(s.pending) == 0
		s.mu.Unlock()
		if idle {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.wake:
		}
	}
}
