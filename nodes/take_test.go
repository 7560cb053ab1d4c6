package nodes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bassclefstudio/streams/streamtest"
)

func sumWindow(window []int) (int, error) {
	total := 0
	for _, v := range window {
		total += v
	}
	return total, nil
}

func TestTake_SlidingSum(t *testing.T) {
	t.Parallel()
	parent := newStubStream[int]()
	sums := NewTake(parent, sumWindow)
	rec := streamtest.NewEventRecorder[int]()
	sums.Events().Subscribe(rec.Record)
	sums.Start()

	for _, v := range []int{1, 2, 3, 4} {
		parent.out.EmitResult(v)
	}

	assert.Equal(t, []int{3, 5, 7}, rec.Results(), "pairwise sums over the sliding window")
}

func TestTake_DefaultSize(t *testing.T) {
	t.Parallel()
	sums := NewTake(newStubStream[int](), sumWindow)
	assert.Equal(t, DefaultTakeSize, sums.Size())
}

func TestTake_CustomSize(t *testing.T) {
	t.Parallel()
	parent := newStubStream[int]()
	sums := NewTake(parent, sumWindow, Params{Size: 3})
	rec := streamtest.NewEventRecorder[int]()
	sums.Events().Subscribe(rec.Record)
	sums.Start()

	for _, v := range []int{1, 2, 3, 4, 5} {
		parent.out.EmitResult(v)
	}

	assert.Equal(t, []int{6, 9, 12}, rec.Results())
}

func TestTake_NoEmissionBeforeFill(t *testing.T) {
	t.Parallel()
	parent := newStubStream[int]()
	sums := NewTake(parent, sumWindow)
	rec := streamtest.NewEventRecorder[int]()
	sums.Events().Subscribe(rec.Record)
	sums.Start()

	parent.out.EmitResult(1)

	assert.Empty(t, rec.Events(), "a partial window produces nothing")
}

func TestTake_WindowOrder(t *testing.T) {
	t.Parallel()
	parent := newStubStream[int]()
	windows := NewTake(parent, func(window []int) ([]int, error) {
		cp := make([]int, len(window))
		copy(cp, window)
		return cp, nil
	}, Params{Size: 3})
	rec := streamtest.NewEventRecorder[[]int]()
	windows.Events().Subscribe(rec.Record)
	windows.Start()

	for _, v := range []int{4, 7, 1, 9} {
		parent.out.EmitResult(v)
	}

	assert.Equal(t, [][]int{{4, 7, 1}, {7, 1, 9}}, rec.Results(), "windows preserve arrival order")
}

func TestTake_ProduceError(t *testing.T) {
	t.Parallel()
	parent := newStubStream[int]()
	errBad := errors.New("bad produce")
	failing := true
	sums := NewTake(parent, func(window []int) (int, error) {
		if failing {
			return 0, errBad
		}
		return sumWindow(window)
	})
	rec := streamtest.NewEventRecorder[int]()
	sums.Events().Subscribe(rec.Record)
	sums.Start()

	parent.out.EmitResult(1)
	parent.out.EmitResult(2)
	failing = false
	parent.out.EmitResult(3)

	require.Len(t, rec.Errs(), 1)
	assert.True(t, IsWindowError(rec.Errs()[0]))
	assert.Equal(t, []int{5}, rec.Results(), "the window still slides past a failed produce")
}

func TestTake_PassThrough(t *testing.T) {
	t.Parallel()
	parent := newStubStream[int]()
	sums := NewTake(parent, sumWindow)
	rec := streamtest.NewEventRecorder[int]()
	sums.Events().Subscribe(rec.Record)
	sums.Start()

	parent.out.EmitResult(1)
	errUpstream := errors.New("upstream")
	parent.out.EmitError(errUpstream)
	parent.out.EmitResult(2)

	require.Len(t, rec.Errs(), 1)
	assert.Equal(t, errUpstream, rec.Errs()[0])
	assert.Equal(t, []int{3}, rec.Results(), "a passing error does not disturb the window")
}
