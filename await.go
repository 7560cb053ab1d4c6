package streams

import (
	"context"

	"github.com/bassclefstudio/streams/nodes"
	"github.com/bassclefstudio/streams/tasks"
)

// Await resolves a stream of pending tasks into a stream of their values.
// Each task is waited on concurrently, so output order follows completion
// order, not arrival order. A failed task becomes an error event.
func Await[U any](s nodes.Stream[*tasks.Task[U]], params ...Params) nodes.Stream[U] {
	p := applyParams(params)
	return nodes.NewParallelMap(s, func(ctx context.Context, task *tasks.Task[U]) (U, error) {
		return task.Wait(ctx)
	}, nodes.Params{Ctx: p.Ctx})
}
