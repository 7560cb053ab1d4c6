package nodes

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bassclefstudio/streams/streamtest"
)

func TestMap_Transform(t *testing.T) {
	t.Parallel()
	doubled := NewMap(NewSource(5), func(v int) (int, error) { return v * 2, nil })
	rec := streamtest.NewEventRecorder[int]()
	doubled.Events().Subscribe(rec.Record)

	doubled.Start()

	assert.Equal(t, []int{10}, rec.Results())
	assert.Empty(t, rec.Errs())
}

func TestMap_Table(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input []int
		fn    TransformFunc[int, string]
		want  []string
	}{
		{
			name:  "format",
			input: []int{1, 2, 3},
			fn:    func(v int) (string, error) { return fmt.Sprintf("#%d", v), nil },
			want:  []string{"#1", "#2", "#3"},
		},
		{
			name:  "empty input",
			input: nil,
			fn:    func(v int) (string, error) { return "", nil },
			want:  []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			parent := newStubStream[int]()
			mapped := NewMap(parent, tt.fn)
			rec := streamtest.NewEventRecorder[string]()
			mapped.Events().Subscribe(rec.Record)
			mapped.Start()

			for _, v := range tt.input {
				parent.out.EmitResult(v)
			}
			assert.ElementsMatch(t, tt.want, rec.Results())
		})
	}
}

func TestMap_TransformError(t *testing.T) {
	t.Parallel()
	parent := newStubStream[int]()
	errBad := errors.New("bad input")
	mapped := NewMap(parent, func(v int) (int, error) {
		if v == 2 {
			return 0, errBad
		}
		return v * 2, nil
	})
	rec := streamtest.NewEventRecorder[int]()
	mapped.Events().Subscribe(rec.Record)
	mapped.Start()

	parent.out.EmitResult(1)
	parent.out.EmitResult(2)
	parent.out.EmitResult(3)

	assert.Equal(t, []int{2, 6}, rec.Results(), "the node keeps accepting after a failure")
	require.Len(t, rec.Errs(), 1)
	assert.True(t, IsMapError(rec.Errs()[0]))
	assert.True(t, errors.Is(rec.Errs()[0], errBad), "the cause must be preserved")
}

func TestMap_PassThrough(t *testing.T) {
	t.Parallel()
	parent := newStubStream[int]()
	mapped := NewMap(parent, func(v int) (int, error) { return v, nil })
	rec := streamtest.NewEventRecorder[int]()
	mapped.Events().Subscribe(rec.Record)
	mapped.Start()

	errUpstream := errors.New("upstream")
	parent.out.EmitError(errUpstream)
	parent.out.EmitCompleted()

	require.Len(t, rec.Errs(), 1)
	assert.Equal(t, errUpstream, rec.Errs()[0], "upstream errors pass through unwrapped")
	assert.Equal(t, 1, rec.Completions())
}

func TestMap_Validation(t *testing.T) {
	t.Parallel()
	assert.PanicsWithValue(t, "nodes: NewMap with nil parent", func() {
		NewMap[int, int](nil, func(v int) (int, error) { return v, nil })
	})
	assert.PanicsWithValue(t, "nodes: NewMap with nil transform", func() {
		NewMap[int, int](newStubStream[int](), nil)
	})
}

func TestParallelMap_CompletionOrder(t *testing.T) {
	t.Parallel()
	parent := newStubStream[int]()
	mapped := NewParallelMap(parent, func(_ context.Context, v int) (int, error) {
		if v == 1 {
			time.Sleep(100 * time.Millisecond)
		}
		return v * 10, nil
	})
	rec := streamtest.NewEventRecorder[int]()
	mapped.Events().Subscribe(rec.Record)
	mapped.Start()

	parent.out.EmitResult(1)
	parent.out.EmitResult(2)

	require.True(t, rec.WaitLen(2, 2*time.Second))
	assert.Equal(t, []int{20, 10}, rec.Results(), "emission order follows completion, not arrival")
}

func TestParallelMap_Error(t *testing.T) {
	t.Parallel()
	parent := newStubStream[int]()
	errBad := errors.New("bad input")
	mapped := NewParallelMap(parent, func(_ context.Context, v int) (int, error) {
		return 0, errBad
	})
	rec := streamtest.NewEventRecorder[int]()
	mapped.Events().Subscribe(rec.Record)
	mapped.Start()

	parent.out.EmitResult(1)

	require.True(t, rec.WaitLen(1, 2*time.Second))
	require.Len(t, rec.Errs(), 1)
	assert.True(t, IsMapError(rec.Errs()[0]))
	assert.True(t, errors.Is(rec.Errs()[0], errBad))
}

func TestParallelMap_Context(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	parent := newStubStream[int]()
	mapped := NewParallelMap(parent, func(ctx context.Context, v int) (int, error) {
		return v, ctx.Err()
	}, Params{Ctx: ctx})
	rec := streamtest.NewEventRecorder[int]()
	mapped.Events().Subscribe(rec.Record)
	mapped.Start()

	parent.out.EmitResult(1)

	require.True(t, rec.WaitLen(1, 2*time.Second))
	require.Len(t, rec.Errs(), 1)
	assert.True(t, errors.Is(rec.Errs()[0], context.Canceled))
}
