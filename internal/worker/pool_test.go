package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type fakeOutcome struct {
	err error
}

func (o *fakeOutcome) Err() error {
	return o.err
}

type fakeTask struct {
	duration  time.Duration
	shouldErr bool
	started   func()
	finished  func()
	block     chan struct{} // when set, Run waits for it before returning
	executed  *int32        // atomic counter
}

func (t *fakeTask) Run(ctx context.Context) Outcome {
	if t.started != nil {
		t.started()
	}
	if t.finished != nil {
		defer t.finished()
	}
	if t.block != nil {
		<-t.block
	}
	if t.executed != nil {
		atomic.AddInt32(t.executed, 1)
	}
	if t.duration > 0 {
		select {
		case <-time.After(t.duration):
		case <-ctx.Done():
			return &fakeOutcome{err: ctx.Err()}
		}
	}
	if t.shouldErr {
		return &fakeOutcome{err: errors.New("task error")}
	}
	return &fakeOutcome{}
}

func TestNewPool(t *testing.T) {
	if got := NewPool(5).Size(); got != 5 {
		t.Errorf("expected 5 workers, got %d", got)
	}
	if got := NewPool(0).Size(); got != 1 {
		t.Errorf("expected default 1 worker for 0 input, got %d", got)
	}
	if got := NewPool(-1).Size(); got != 1 {
		t.Errorf("expected default 1 worker for negative input, got %d", got)
	}
}

func TestPool_RunsEveryTask(t *testing.T) {
	var executed int32
	count := 10

	tasks := make([]Task, count)
	for i := range tasks {
		tasks[i] = &fakeTask{executed: &executed}
	}

	outcomes := NewPool(2).Run(context.Background(), tasks)

	if len(outcomes) != count {
		t.Errorf("expected %d outcomes, got %d", count, len(outcomes))
	}
	if atomic.LoadInt32(&executed) != int32(count) {
		t.Errorf("expected %d executed tasks, got %d", count, executed)
	}
}

func TestPool_EmptyInput(t *testing.T) {
	outcomes := NewPool(4).Run(context.Background(), nil)
	if len(outcomes) != 0 {
		t.Errorf("expected no outcomes, got %d", len(outcomes))
	}
}

func TestPool_BoundsConcurrency(t *testing.T) {
	workers := 10
	totalTasks := 50

	var current int32
	var maxConcurrent int32
	var mu sync.Mutex

	tasks := make([]Task, totalTasks)
	for i := range tasks {
		tasks[i] = &fakeTask{
			duration: 10 * time.Millisecond,
			started: func() {
				curr := atomic.AddInt32(&current, 1)
				mu.Lock()
				if curr > maxConcurrent {
					maxConcurrent = curr
				}
				mu.Unlock()
			},
			finished: func() {
				atomic.AddInt32(&current, -1)
			},
		}
	}

	outcomes := NewPool(workers).Run(context.Background(), tasks)
	if len(outcomes) != totalTasks {
		t.Fatalf("expected %d outcomes, got %d", totalTasks, len(outcomes))
	}

	mu.Lock()
	max := maxConcurrent
	mu.Unlock()

	if max > int32(workers) {
		t.Errorf("max concurrency %d exceeded workers %d", max, workers)
	}
}

func TestPool_ErrorsKeptPerOutcome(t *testing.T) {
	outcomes := NewPool(2).Run(context.Background(), []Task{
		&fakeTask{shouldErr: true},
		&fakeTask{},
	})
	if len(outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(outcomes))
	}

	failed := 0
	for _, outcome := range outcomes {
		if outcome.Err() != nil {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("expected 1 failed outcome, got %d", failed)
	}
}

func TestPool_CancellationSkipsPending(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan struct{})
	release := make(chan struct{})

	// The first task occupies the pool's only worker until released; the
	// feed is then stuck handing over the second task when cancel fires,
	// so everything after the first task is skipped.
	tasks := []Task{
		&fakeTask{
			block:   release,
			started: func() { close(started) },
		},
		&fakeTask{},
		&fakeTask{},
		&fakeTask{},
	}

	done := make(chan []Outcome, 1)
	go func() {
		done <- NewPool(1).Run(ctx, tasks)
	}()

	<-started
	cancel()
	close(release)

	select {
	case outcomes := <-done:
		if len(outcomes) != 1 {
			t.Errorf("expected 1 outcome after cancellation, got %d", len(outcomes))
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
