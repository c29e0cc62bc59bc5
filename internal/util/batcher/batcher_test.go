package batcher

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-hive/pkg/lib/future"
)

func TestBatcher_Coalesces(t *testing.T) {
	mock := clock.NewMock()
	var calls atomic.Int32
	b := New(mock, 10*time.Millisecond, func() *future.Future[int] {
		return future.Ready(int(calls.Add(1)))
	})

	f1 := b.Run()
	f2 := b.Run()
	assert.Same(t, f1, f2)
	assert.Equal(t, int32(0), calls.Load())

	mock.Add(10 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	v1, err := f1.Get(ctx)
	require.NoError(t, err)
	v2, err := f2.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, v1)
	assert.Equal(t, 1, v2)
	assert.Equal(t, 1, b.Runs())

	f3 := b.Run()
	assert.NotSame(t, f1, f3)
}

func TestBatcher_ZeroDelay(t *testing.T) {
	b := New(nil, 0, func() *future.Future[string] {
		return future.Ready("now")
	})

	v, err := b.Run().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "now", v)
}

func TestBatcher_Cancel(t *testing.T) {
	mock := clock.NewMock()
	var calls atomic.Int32
	b := New(mock, time.Second, func() *future.Future[int] {
		calls.Add(1)
		return future.Ready(0)
	})

	f := b.Run()
	stop := errors.New("stopped")
	b.Cancel(stop)

	_, err := f.Get(context.Background())
	assert.ErrorIs(t, err, stop)

	mock.Add(2 * time.Second)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}
