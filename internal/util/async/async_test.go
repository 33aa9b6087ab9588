package async

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Success(t *testing.T) {
	t.Parallel()
	var count atomic.Int32

	tasks := make([]Task, 5)
	for i := range tasks {
		tasks[i] = Task{Name: "task", Func: func(_ context.Context) error {
			count.Add(1)
			return nil
		}}
	}

	errs := Run(context.Background(), 2, tasks)

	require.Len(t, errs, 5)
	assert.Equal(t, int32(5), count.Load())
	assert.Zero(t, Failed(errs))
	assert.NoError(t, Join(tasks, errs))
}

func TestRun_EmptyTasks(t *testing.T) {
	t.Parallel()
	assert.Empty(t, Run(context.Background(), 4, nil))
	assert.Empty(t, Run(context.Background(), 4, []Task{}))
}

func TestRun_ErrorsStayInTheirSlot(t *testing.T) {
	t.Parallel()
	errB := errors.New("b failed")

	tasks := []Task{
		{Name: "a", Func: func(_ context.Context) error { return nil }},
		{Name: "b", Func: func(_ context.Context) error { return errB }},
		{Name: "c", Func: func(_ context.Context) error { return nil }},
	}

	errs := Run(context.Background(), 3, tasks)

	assert.NoError(t, errs[0])
	assert.ErrorIs(t, errs[1], errB)
	assert.NoError(t, errs[2])
	assert.Equal(t, 1, Failed(errs))

	joined := Join(tasks, errs)
	require.Error(t, joined)
	assert.Equal(t, "b: b failed", joined.Error())
}

func TestRun_MultipleErrorsJoined(t *testing.T) {
	t.Parallel()
	err1 := errors.New("error 1")
	err2 := errors.New("error 2")

	tasks := []Task{
		{Name: "fail1", Func: func(_ context.Context) error { return err1 }},
		{Name: "fail2", Func: func(_ context.Context) error { return err2 }},
	}

	joined := Join(tasks, Run(context.Background(), 1, tasks))
	assert.ErrorIs(t, joined, err1)
	assert.ErrorIs(t, joined, err2)
}

func TestRun_RespectsLimit(t *testing.T) {
	t.Parallel()
	var running, peak atomic.Int32

	tasks := make([]Task, 8)
	for i := range tasks {
		tasks[i] = Task{Name: "slow", Func: func(_ context.Context) error {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			running.Add(-1)
			return nil
		}}
	}

	Run(context.Background(), 3, tasks)

	assert.LessOrEqual(t, peak.Load(), int32(3))
	assert.Positive(t, peak.Load())
}

func TestRun_SequentialWhenLimitBelowOne(t *testing.T) {
	t.Parallel()
	var order []int

	tasks := make([]Task, 4)
	for i := range tasks {
		tasks[i] = Task{Name: "seq", Func: func(_ context.Context) error {
			order = append(order, i)
			return nil
		}}
	}

	Run(context.Background(), 0, tasks)
	assert.Equal(t, []int{0, 1, 2, 3}, order)
}

func TestRun_CancelledContextSkipsPendingTasks(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	var ran atomic.Int32

	tasks := []Task{
		{Name: "first", Func: func(_ context.Context) error {
			ran.Add(1)
			cancel()
			return nil
		}},
		{Name: "second", Func: func(_ context.Context) error {
			ran.Add(1)
			return nil
		}},
	}

	errs := Run(ctx, 1, tasks)

	assert.Equal(t, int32(1), ran.Load())
	assert.NoError(t, errs[0])
	assert.ErrorIs(t, errs[1], context.Canceled)
}
