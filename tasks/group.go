package tasks

import (
	"context"

	"gopkg.in/tomb.v2"
)

// WhenAll runs every op on its own goroutine and blocks until all of them
// have finished, returning the first failure or nil when every op succeeds.
// The context handed to the ops is cancelled as soon as one fails, so the
// rest can bail out early; their completion is still awaited.
func WhenAll(ctx context.Context, ops ...func(context.Context) error) error {
	if len(ops) == 0 {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	var tb tomb.Tomb
	tctx := tb.Context(ctx)
	for _, op := range ops {
		if op == nil {
			panic("tasks: WhenAll with nil op")
		}
		fn := op
		tb.Go(func() error { return fn(tctx) })
	}
	return tb.Wait()
}

// All waits for every task and returns their values in task order. When any
// task failed, the error of the earliest failed task in the argument order
// wins and no values are returned.
func All[T any](ctx context.Context, tasks ...*Task[T]) ([]T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	values := make([]T, len(tasks))
	var firstErr error
	for i, task := range tasks {
		value, err := task.Wait(ctx)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		values[i] = value
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return values, nil
}
