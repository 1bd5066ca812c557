package canvaslab

import (
	"context"
	"testing"
	"time"
)

func TestSchedulerRunsContinuationsOnRunPending(t *testing.T) {
	s := NewScheduler()
	var order []int
	s.Post(func() { order = append(order, 1) })
	s.Post(func() { order = append(order, 2) })
	s.Post(nil)

	if len(order) != 0 {
		t.Fatal("Post() ran the continuation immediately")
	}
	if got := s.Pending(); got != 2 {
		t.Errorf("Pending() = %d, want 2", got)
	}
	if got := s.RunPending(); got != 2 {
		t.Errorf("RunPending() = %d, want 2", got)
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("run order = %v, want [1 2]", order)
	}
}

func TestSchedulerGoAndWait(t *testing.T) {
	s := NewScheduler()
	release := make(chan struct{})
	ran := false
	s.Go(func() func() {
		<-release
		return func() { ran = true }
	})
	s.Go(func() func() { return nil })

	close(release)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Wait(ctx); err != nil {
		t.Fatalf("Wait() = %v", err)
	}
	if !ran {
		t.Error("Wait() returned before the continuation ran")
	}
}

func TestSchedulerWaitHonorsContext(t *testing.T) {
	s := NewScheduler()
	block := make(chan struct{})
	defer close(block)
	s.Go(func() func() {
		<-block
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := s.Wait(ctx); err != context.DeadlineExceeded {
		t.Errorf("Wait() = %v, want %v", err, context.DeadlineExceeded)
	}
}
