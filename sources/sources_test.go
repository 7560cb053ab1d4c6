package sources

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bassclefstudio/streams/streamtest"
)

func TestFromSlice(t *testing.T) {
	t.Parallel()
	src := FromSlice([]int{1, 2, 3})
	rec := streamtest.NewEventRecorder[int]()
	src.Events().Subscribe(rec.Record)

	src.Start()

	assert.Equal(t, []int{1, 2, 3}, rec.Results())
	assert.Equal(t, 1, rec.Completions(), "a finite slice completes after replay")
	assert.True(t, src.Started())
}

func TestFromSlice_Empty(t *testing.T) {
	t.Parallel()
	src := FromSlice[int](nil)
	rec := streamtest.NewEventRecorder[int]()
	src.Events().Subscribe(rec.Record)

	src.Start()

	assert.Empty(t, rec.Results())
	assert.Equal(t, 1, rec.Completions())
}

func TestFromSlice_StartIdempotent(t *testing.T) {
	t.Parallel()
	src := FromSlice([]int{1})
	rec := streamtest.NewEventRecorder[int]()
	src.Events().Subscribe(rec.Record)

	src.Start()
	src.Start()

	assert.Equal(t, []int{1}, rec.Results())
	assert.Equal(t, 1, rec.Completions())
}

func TestFromChannel(t *testing.T) {
	t.Parallel()
	in := make(chan string)
	src := FromChannel(context.Background(), in)
	rec := streamtest.NewEventRecorder[string]()
	src.Events().Subscribe(rec.Record)
	src.Start()

	in <- "a"
	in <- "b"
	close(in)

	require.True(t, rec.WaitLen(3, 2*time.Second))
	assert.Equal(t, []string{"a", "b"}, rec.Results())
	assert.Equal(t, 1, rec.Completions(), "channel close completes the stream")
}

func TestFromChannel_ContextCancel(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan int)
	src := FromChannel(ctx, in)
	rec := streamtest.NewEventRecorder[int]()
	src.Events().Subscribe(rec.Record)
	src.Start()

	cancel()

	require.True(t, rec.WaitLen(1, 2*time.Second))
	assert.Equal(t, 1, rec.Completions(), "cancellation completes the stream")
}

func TestFromChannel_Validation(t *testing.T) {
	t.Parallel()
	assert.PanicsWithValue(t, "sources: FromChannel with nil channel", func() {
		FromChannel[int](context.Background(), nil)
	})
}
