package nodes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bassclefstudio/streams/streamtest"
)

func TestDeferred_LazyFactory(t *testing.T) {
	t.Parallel()
	calls := 0
	d := NewDeferred(func() Stream[int] {
		calls++
		return NewSource(7)
	})
	rec := streamtest.NewEventRecorder[int]()
	d.Events().Subscribe(rec.Record)

	require.Zero(t, calls, "factory must not run before start")
	d.Start()
	d.Start()

	assert.Equal(t, 1, calls, "factory runs exactly once")
	assert.Equal(t, []int{7}, rec.Results())
}

func TestDeferred_ForwardsVerbatim(t *testing.T) {
	t.Parallel()
	inner := newStubStream[int]()
	d := NewDeferred(func() Stream[int] { return inner })
	rec := streamtest.NewEventRecorder[int]()
	d.Events().Subscribe(rec.Record)
	d.Start()

	errBoom := errors.New("boom")
	inner.out.EmitResult(1)
	inner.out.EmitError(errBoom)
	inner.out.EmitCompleted()

	assert.Equal(t, []int{1}, rec.Results())
	require.Len(t, rec.Errs(), 1)
	assert.Equal(t, errBoom, rec.Errs()[0], "forwarded errors must not be rewrapped")
	assert.Equal(t, 1, rec.Completions())
}

// A deferred node may resolve to a graph that contains itself. The started
// flag is set before the factory runs, so the nested start is a no-op and
// resolution terminates; the filter below terminates the value loop.
func TestDeferred_RecursiveResolution(t *testing.T) {
	t.Parallel()
	src := newStubStream[int]()
	var d *Deferred[int]
	d = NewDeferred(func() Stream[int] {
		bumped := NewMap(d, func(v int) (int, error) { return v + 1, nil })
		capped := NewFilter(bumped, func(v int) (bool, error) { return v < 3, nil })
		return NewConcat[int](src, capped)
	})
	rec := streamtest.NewEventRecorder[int]()
	d.Events().Subscribe(rec.Record)

	d.Start()
	src.out.EmitResult(0)

	assert.Equal(t, []int{0, 1, 2}, rec.Results())
}

func TestDeferred_Parents(t *testing.T) {
	t.Parallel()
	inner := NewSource(1)
	d := NewDeferred(func() Stream[int] { return inner })

	assert.Nil(t, d.Parents(), "unresolved deferred has no parents")
	d.Start()
	require.Len(t, d.Parents(), 1)
	assert.Same(t, inner, d.Parents()[0])
}

func TestDeferred_Validation(t *testing.T) {
	t.Parallel()
	assert.PanicsWithValue(t, "nodes: NewDeferred with nil factory", func() {
		NewDeferred[int](nil)
	})
	assert.PanicsWithValue(t, "nodes: Deferred factory returned nil stream", func() {
		NewDeferred(func() Stream[int] { return nil }).Start()
	})
}
