package delayed

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type queueInvoker struct {
	tasks chan func()
}

func (q *queueInvoker) Invoke(fn func()) { q.tasks <- fn }

func TestExecutor_Submit(t *testing.T) {
	mock := clock.NewMock()
	e := New(mock)

	var runs atomic.Int32
	c := e.Submit(func() { runs.Add(1) }, time.Second, nil)
	assert.True(t, c.Active())

	mock.Add(500 * time.Millisecond)
	assert.Equal(t, int32(0), runs.Load())

	mock.Add(time.Second)
	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, time.Millisecond)
	assert.False(t, c.Active())
}

func TestExecutor_Cancel(t *testing.T) {
	mock := clock.NewMock()
	e := New(mock)

	var runs atomic.Int32
	c := e.Submit(func() { runs.Add(1) }, time.Second, nil)
	assert.True(t, c.Cancel())

	mock.Add(2 * time.Second)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(0), runs.Load())
}

func TestExecutor_CancelAfterQueued(t *testing.T) {
	e := New(clock.New())
	inv := &queueInvoker{tasks: make(chan func(), 1)}

	var runs atomic.Int32
	c := e.Submit(func() { runs.Add(1) }, time.Millisecond, inv)

	var task func()
	select {
	case task = <-inv.tasks:
	case <-time.After(time.Second):
		t.Fatal("task was not queued")
	}

	CancelAndClear(&c)
	assert.Nil(t, c)
	task()
	assert.Equal(t, int32(0), runs.Load())
}
