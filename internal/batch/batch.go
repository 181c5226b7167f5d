package batch

import (
	"context"
	"sync"
	"time"
)

// Task is one independent unit of retrieval work.
type Task[T any] func(ctx context.Context) (T, error)

// Outcome pairs one task's value with its error. Exactly one of the two is
// meaningful.
type Outcome[T any] struct {
	Value T
	Err   error
}

// Join runs every task concurrently and waits for all of them to settle.
// Failures become values in the returned slice, so no task can abort its
// siblings. Outcome order matches task order.
func Join[T any](ctx context.Context, tasks []Task[T]) []Outcome[T] {
	outcomes := make([]Outcome[T], len(tasks))

	var wg sync.WaitGroup
	for i, task := range tasks {
		wg.Add(1)
		go func(i int, task Task[T]) {
			defer wg.Done()
			v, err := task(ctx)
			outcomes[i] = Outcome[T]{Value: v, Err: err}
		}(i, task)
	}
	wg.Wait()

	return outcomes
}

// Run executes tasks in fixed-size groups. A group runs with full internal
// concurrency and settles completely before the next group starts; a fixed
// pause separates groups to stay under upstream rate limits. The returned
// slice has one outcome per task, in task order.
func Run[T any](ctx context.Context, tasks []Task[T], size int, pause time.Duration) []Outcome[T] {
	if size <= 0 {
		size = 1
	}

	outcomes := make([]Outcome[T], 0, len(tasks))
	for start := 0; start < len(tasks); start += size {
		if start > 0 && pause > 0 {
			select {
			case <-time.After(pause):
			case <-ctx.Done():
			}
		}
		end := min(start+size, len(tasks))
		outcomes = append(outcomes, Join(ctx, tasks[start:end])...)
	}
	return outcomes
}
