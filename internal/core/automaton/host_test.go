package automaton

import (
	"context"
	"encoding/binary"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-hive/internal/core/storage"
	"github.com/dep2p/go-hive/pkg/interfaces"
	"github.com/dep2p/go-hive/pkg/types"
)

// counterPart 记录变更与角色回调的测试组件
type counterPart struct {
	mu      sync.Mutex
	values  []uint64
	events  []string
	loadErr error
}

func (p *counterPart) record(ev string) {
	p.mu.Lock()
	p.events = append(p.events, ev)
	p.mu.Unlock()
}

func (p *counterPart) OnLeaderActive()             { p.record("leader") }
func (p *counterPart) OnStopLeading()              { p.record("stop-leading") }
func (p *counterPart) OnFollowerRecoveryComplete() { p.record("follower") }
func (p *counterPart) OnStopFollowing()            { p.record("stop-following") }

func (p *counterPart) Clear() {
	p.mu.Lock()
	p.values = nil
	p.mu.Unlock()
}

func (p *counterPart) SnapshotSections() []interfaces.SnapshotSection {
	return []interfaces.SnapshotSection{{
		Name:     "Counter.Values",
		Priority: 1,
		Save: func() ([]byte, error) {
			var b []byte
			for _, v := range p.snapshot() {
				b = binary.AppendUvarint(b, v)
			}
			return b, nil
		},
		Load: func(data []byte) error {
			for len(data) > 0 {
				v, n := binary.Uvarint(data)
				p.values = append(p.values, v)
				data = data[n:]
			}
			return p.loadErr
		},
	}}
}

func (p *counterPart) snapshot() []uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]uint64(nil), p.values...)
}

func (p *counterPart) handle(mc interfaces.MutationContext) error {
	v, _ := binary.Uvarint(mc.Payload())
	p.mu.Lock()
	p.values = append(p.values, v)
	p.mu.Unlock()
	return nil
}

func newTestHost(t *testing.T, opts ...Option) (*Host, *counterPart) {
	t.Helper()

	h := NewHost(types.NewCellID(), opts...)
	part := &counterPart{}
	h.RegisterPart(part)
	h.RegisterMutationHandler("counter.Add", part.handle)
	h.Start()
	t.Cleanup(h.Stop)
	return h, part
}

func payload(v uint64) []byte {
	return binary.AppendUvarint(nil, v)
}

func TestHost_CommitRequiresLeader(t *testing.T) {
	h, _ := newTestHost(t)

	_, err := h.CommitMutation("counter.Add", payload(1)).Get(context.Background())
	assert.ErrorIs(t, err, types.ErrUnavailable)
}

func TestHost_CommitOrder(t *testing.T) {
	h, part := newTestHost(t, WithCommitDelay(time.Millisecond))
	ctx := context.Background()
	require.NoError(t, h.BecomeLeader(ctx))

	futures := make([]func() error, 0, 50)
	for i := uint64(0); i < 50; i++ {
		f := h.CommitMutation("counter.Add", payload(i))
		futures = append(futures, func() error { _, err := f.Get(ctx); return err })
	}
	for _, wait := range futures {
		require.NoError(t, wait())
	}

	values := part.snapshot()
	require.Len(t, values, 50)
	for i, v := range values {
		assert.Equal(t, uint64(i), v)
	}
	assert.Equal(t, int64(50), h.Sequence())
}

func TestHost_StopLeadingFailsPendingAndDropsEpochTasks(t *testing.T) {
	h, part := newTestHost(t, WithCommitDelay(50*time.Millisecond))
	ctx := context.Background()
	require.NoError(t, h.BecomeLeader(ctx))

	epochCtx := h.EpochContext()
	inv := h.EpochInvoker()
	f := h.CommitMutation("counter.Add", payload(1))

	require.NoError(t, h.StopLeading(ctx))
	_, err := f.Get(ctx)
	assert.ErrorIs(t, err, types.ErrUnavailable)
	assert.Error(t, epochCtx.Err())

	ran := make(chan struct{}, 1)
	inv.Invoke(func() { ran <- struct{}{} })
	require.NoError(t, h.Call(ctx, func() error { return nil }))
	assert.Len(t, ran, 0)

	assert.Empty(t, part.snapshot())
	assert.Equal(t, []string{"leader", "stop-leading"}, part.events)
}

func TestHost_FollowerTransitions(t *testing.T) {
	h, part := newTestHost(t)
	ctx := context.Background()

	require.NoError(t, h.BecomeFollower(ctx))
	assert.Equal(t, RoleFollower, h.Role())
	assert.False(t, h.IsLeader())

	require.NoError(t, h.BecomeLeader(ctx))
	assert.True(t, h.IsLeader())
	assert.Error(t, h.BecomeFollower(ctx))

	assert.Equal(t, []string{"follower", "stop-following", "leader"}, part.events)
}

func TestHost_SnapshotAndRecover(t *testing.T) {
	h, part := newTestHost(t)
	ctx := context.Background()
	require.NoError(t, h.BecomeLeader(ctx))

	for i := uint64(1); i <= 3; i++ {
		_, err := h.CommitMutation("counter.Add", payload(i)).Get(ctx)
		require.NoError(t, err)
	}
	seq, err := h.SaveSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), seq)

	for i := uint64(4); i <= 5; i++ {
		_, err := h.CommitMutation("counter.Add", payload(i)).Get(ctx)
		require.NoError(t, err)
	}

	assert.ErrorIs(t, h.Recover(ctx), ErrActive)
	require.NoError(t, h.StopLeading(ctx))
	require.NoError(t, h.Recover(ctx))

	assert.Equal(t, []uint64{1, 2, 3, 4, 5}, part.snapshot())
	assert.Equal(t, int64(5), h.Sequence())
	assert.False(t, h.IsRecovering())
}

func TestHost_PersistentSnapshotStore(t *testing.T) {
	eng, err := storage.NewEngine(storage.Config{Path: filepath.Join(t.TempDir(), "hive.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = eng.Close() })
	store := storage.NewSnapshotStore(eng, 2)

	cellID := types.NewCellID()
	ctx := context.Background()

	h1 := NewHost(cellID, WithSnapshotStore(store))
	p1 := &counterPart{}
	h1.RegisterPart(p1)
	h1.RegisterMutationHandler("counter.Add", p1.handle)
	h1.Start()
	require.NoError(t, h1.BecomeLeader(ctx))
	_, err = h1.CommitMutation("counter.Add", payload(7)).Get(ctx)
	require.NoError(t, err)
	_, err = h1.SaveSnapshot(ctx)
	require.NoError(t, err)
	h1.Stop()

	h2, p2 := func() (*Host, *counterPart) {
		h := NewHost(cellID, WithSnapshotStore(store))
		p := &counterPart{}
		h.RegisterPart(p)
		h.RegisterMutationHandler("counter.Add", p.handle)
		h.Start()
		t.Cleanup(h.Stop)
		return h, p
	}()
	require.NoError(t, h2.Recover(ctx))
	assert.Equal(t, []uint64{7}, p2.snapshot())
	assert.Equal(t, int64(1), h2.Sequence())
}

func TestHost_StoppedCall(t *testing.T) {
	h := NewHost(types.NewCellID())
	h.Start()
	h.Stop()

	assert.ErrorIs(t, h.Call(context.Background(), func() error { return nil }), ErrStopped)
}

func TestSnapshotCodec(t *testing.T) {
	data, err := encodeSnapshot(42, []encodedSection{{name: "a", data: []byte{1}}, {name: "b"}})
	require.NoError(t, err)
	seq, sections, err := decodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, int64(42), seq)
	require.Len(t, sections, 2)
	assert.Equal(t, "a", sections[0].name)
	assert.Equal(t, []byte{1}, sections[0].data)

	_, _, err = decodeSnapshot([]byte{0x0a, 0x05})
	assert.Error(t, err)
}
