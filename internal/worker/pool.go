package worker

import (
	"context"
	"sync"
)

// Task is a unit of work dispatched to the pool.
type Task interface {
	Run(ctx context.Context) Outcome
}

// Outcome is what a finished task reports back.
type Outcome interface {
	Err() error
}

// Pool fans tasks out over a bounded set of goroutines.
type Pool struct {
	size int
}

// NewPool returns a pool that runs at most size tasks concurrently.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = 1
	}
	return &Pool{size: size}
}

// Size reports the worker count.
func (p *Pool) Size() int {
	return p.size
}

// Run executes every task and returns the outcomes in completion order.
// When ctx is cancelled, tasks not yet started are skipped; tasks already
// running observe the cancellation through their own ctx handling.
func (p *Pool) Run(ctx context.Context, tasks []Task) []Outcome {
	if len(tasks) == 0 {
		return []Outcome{}
	}

	queue := make(chan Task)
	outcomes := make(chan Outcome, len(tasks))

	var wg sync.WaitGroup
	for i := 0; i < p.size; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range queue {
				outcomes <- task.Run(ctx)
			}
		}()
	}

feed:
	for _, task := range tasks {
		if ctx.Err() != nil {
			break
		}
		select {
		case queue <- task:
		case <-ctx.Done():
			break feed
		}
	}
	close(queue)

	wg.Wait()
	close(outcomes)

	collected := make([]Outcome, 0, len(tasks))
	for outcome := range outcomes {
		collected = append(collected, outcome)
	}
	return collected
}
