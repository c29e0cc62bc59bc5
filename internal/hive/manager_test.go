package hive

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-hive/internal/core/transport"
	"github.com/dep2p/go-hive/pkg/lib/future"
	"github.com/dep2p/go-hive/pkg/types"
)

// ============================================================================
//                              可靠投递
// ============================================================================

func TestPostReliable_RequiresMutation(t *testing.T) {
	env := newTestEnv()
	a := env.addCell(t, testConfig())

	msg := types.NewEncapsulatedMessage(testMessageType, []byte("x"), types.TraceContext{})
	assert.Panics(t, func() {
		a.manager.PostReliable(nil, []types.CellID{types.NewCellID()}, msg)
	})
}

func TestPostReliable_DeliversInOrder(t *testing.T) {
	env := newTestEnv()
	a := env.addCell(t, testConfig())
	b := env.addCell(t, testConfig())

	a.post(t, b, 0, 20)
	a.post(t, b, 20, 50)

	require.Eventually(t, func() bool {
		return len(b.appliedMessages()) == 50
	}, waitFor, tick)
	assert.Equal(t, expectedBodies(0, 50), b.appliedMessages())

	require.Eventually(t, func() bool { return a.drained(t, b) }, waitFor, tick)

	d, ok := a.mailbox(t, b.id)
	require.True(t, ok)
	assert.Equal(t, types.MessageID(50), d.FirstOutcomingMessageID)

	d, ok = b.mailbox(t, a.id)
	require.True(t, ok)
	assert.Equal(t, types.MessageID(50), d.NextPersistentIncomingMessageID)
	assert.Equal(t, types.MessageID(50), d.NextTransientIncomingMessageID)
}

func TestPostReliable_RespectsBatchLimit(t *testing.T) {
	cfg := testConfig()
	cfg.MaxMessagesPerPost = 10

	env := newTestEnv()
	a := env.addCell(t, cfg)
	b := env.addCell(t, cfg)

	a.post(t, b, 0, 100)

	require.Eventually(t, func() bool { return a.drained(t, b) }, waitFor, tick)
	assert.Equal(t, expectedBodies(0, 100), b.appliedMessages())
	assert.GreaterOrEqual(t, env.net.CallCount(b.addr, ServiceName, MethodPostMessages), 10)
}

func TestPostReliable_ByteLimitCountsWholeMessage(t *testing.T) {
	// 一条消息（类型 + 数据）恰好用满字节上限
	cfg := testConfig()
	cfg.MaxBytesPerPost = types.NewEncapsulatedMessage(testMessageType, []byte(messageBody(0)), types.TraceContext{}).Size()

	env := newTestEnv()
	a := env.addCell(t, cfg)
	b := env.addCell(t, cfg)

	var (
		mu       sync.Mutex
		maxBatch int
	)
	env.net.SetFilter(func(req transport.Request) error {
		if req.Address != b.addr || req.Method != MethodPostMessages {
			return nil
		}
		var post PostMessagesRequest
		if err := post.Unmarshal(req.Body); err != nil {
			return err
		}
		mu.Lock()
		maxBatch = max(maxBatch, len(post.Messages))
		mu.Unlock()
		return nil
	})

	a.post(t, b, 0, 5)

	require.Eventually(t, func() bool { return a.drained(t, b) }, waitFor, tick)
	assert.Equal(t, expectedBodies(0, 5), b.appliedMessages())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, maxBatch)
}

func TestPostReliable_RetransmitsAfterLinkFailure(t *testing.T) {
	env := newTestEnv()
	a := env.addCell(t, testConfig())
	b := env.addCell(t, testConfig())

	a.post(t, b, 0, 10)
	require.Eventually(t, func() bool { return a.drained(t, b) }, waitFor, tick)

	env.net.Enable(b.addr, false)
	a.post(t, b, 10, 30)
	require.Eventually(t, func() bool { return !a.connectedTo(t, b) }, waitFor, tick)

	env.net.Enable(b.addr, true)
	require.Eventually(t, func() bool { return a.drained(t, b) }, waitFor, tick)
	assert.Equal(t, expectedBodies(0, 30), b.appliedMessages())
}

// ============================================================================
//                              入站处理
// ============================================================================

func TestPostMessages_RegistersUnknownSource(t *testing.T) {
	env := newTestEnv()
	b := env.addCell(t, testConfig())
	ghost := types.NewCellID()

	ctx, cancel := context.WithTimeout(context.Background(), waitFor)
	defer cancel()

	proxy := NewProxy(env.net.Channel(b.addr))
	req := &PostMessagesRequest{
		SrcCellID:      ghost,
		FirstMessageID: 0,
		Messages: []*types.EncapsulatedMessage{
			types.NewEncapsulatedMessage(testMessageType, []byte("g0"), types.TraceContext{}),
		},
	}

	_, err := proxy.PostMessages(ctx, req)
	require.ErrorIs(t, err, types.ErrMailboxNotCreatedYet)

	require.Eventually(t, func() bool {
		_, ok := b.mailbox(t, ghost)
		return ok
	}, waitFor, tick)

	// 无地址的单元以占位描述符登记
	require.Eventually(t, func() bool {
		desc, ok := env.dir.FindDescriptor(ghost)
		return ok && desc.ConfigVersion == -1
	}, waitFor, tick)

	rsp, err := proxy.PostMessages(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, types.MessageID(1), rsp.NextTransientIncomingMessageID)

	require.Eventually(t, func() bool {
		d, _ := b.mailbox(t, ghost)
		return d.NextPersistentIncomingMessageID == 1
	}, waitFor, tick)

	// 重传不会重复应用
	rsp, err = proxy.PostMessages(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, types.MessageID(1), rsp.NextTransientIncomingMessageID)
	assert.True(t, rsp.HasNextPersistentIncomingMessageID)
	assert.Equal(t, types.MessageID(1), rsp.NextPersistentIncomingMessageID)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, []string{"g0"}, b.appliedMessages())
}

func TestPostMessages_RejectsRemovedCell(t *testing.T) {
	env := newTestEnv()
	a := env.addCell(t, testConfig())
	b := env.addCell(t, testConfig())

	a.post(t, b, 0, 1)
	require.Eventually(t, func() bool { return a.drained(t, b) }, waitFor, tick)

	var f *future.Future[struct{}]
	b.call(t, func() { f = b.manager.UnregisterMailbox(a.id) })

	ctx, cancel := context.WithTimeout(context.Background(), waitFor)
	defer cancel()
	_, err := f.Get(ctx)
	require.NoError(t, err)

	var removed bool
	b.call(t, func() { removed = b.manager.IsCellRemoved(a.id) })
	assert.True(t, removed)

	_, err = NewProxy(env.net.Channel(b.addr)).PostMessages(ctx, &PostMessagesRequest{
		SrcCellID:      a.id,
		FirstMessageID: 1,
	})
	assert.ErrorIs(t, err, types.ErrCellRemoved)
}

func TestPing_RequiresLeader(t *testing.T) {
	env := newTestEnv()
	a := env.addCell(t, testConfig())
	b := env.addCell(t, testConfig())

	a.post(t, b, 0, 3)
	require.Eventually(t, func() bool { return a.drained(t, b) }, waitFor, tick)

	ctx, cancel := context.WithTimeout(context.Background(), waitFor)
	defer cancel()

	rsp, err := NewProxy(env.net.Channel(a.addr)).Ping(ctx, &PingRequest{SrcCellID: b.id})
	require.NoError(t, err)
	assert.True(t, rsp.HasLastOutcomingMessageID)
	assert.Equal(t, types.MessageID(2), rsp.LastOutcomingMessageID)

	require.NoError(t, a.host.StopLeading(ctx))
	_, err = NewProxy(env.net.Channel(a.addr)).Ping(ctx, &PingRequest{SrcCellID: b.id})
	assert.ErrorIs(t, err, types.ErrUnavailable)
}

func TestSyncCells_ReportsDirectoryDiff(t *testing.T) {
	env := newTestEnv()
	a := env.addCell(t, testConfig())
	b := env.addCell(t, testConfig())
	gone := types.NewCellID()

	ctx, cancel := context.WithTimeout(context.Background(), waitFor)
	defer cancel()

	rsp, err := NewProxy(env.net.Channel(a.addr)).SyncCells(ctx, &SyncCellsRequest{
		KnownCells: []types.CellInfo{
			{CellID: a.id, ConfigVersion: 0},
			{CellID: gone, ConfigVersion: 3},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []types.CellID{gone}, rsp.CellsToUnregister)

	reconfigured := make(map[types.CellID]int)
	for _, desc := range rsp.CellsToReconfigure {
		reconfigured[desc.CellID] = desc.ConfigVersion
	}
	assert.Equal(t, map[types.CellID]int{a.id: 1, b.id: 1}, reconfigured)
}

func TestSyncCells_UnknownCellsDoNotHideRegistered(t *testing.T) {
	env := newTestEnv()
	a := env.addCell(t, testConfig())
	b := env.addCell(t, testConfig())
	ghosts := []types.CellID{types.NewCellID(), types.NewCellID(), types.NewCellID()}

	ctx, cancel := context.WithTimeout(context.Background(), waitFor)
	defer cancel()

	known := make([]types.CellInfo, 0, len(ghosts))
	for _, id := range ghosts {
		known = append(known, types.CellInfo{CellID: id, ConfigVersion: 1})
	}
	rsp, err := NewProxy(env.net.Channel(a.addr)).SyncCells(ctx, &SyncCellsRequest{KnownCells: known})
	require.NoError(t, err)

	assert.ElementsMatch(t, ghosts, rsp.CellsToUnregister)

	reconfigured := make(map[types.CellID]int)
	for _, desc := range rsp.CellsToReconfigure {
		reconfigured[desc.CellID] = desc.ConfigVersion
	}
	assert.Equal(t, map[types.CellID]int{a.id: 1, b.id: 1}, reconfigured)
}

// ============================================================================
//                              不可靠投递
// ============================================================================

func TestPostUnreliable_SkipsDisconnected(t *testing.T) {
	env := newTestEnv()
	a := env.addCell(t, testConfig())
	b := env.addCell(t, testConfig())

	msg := types.NewEncapsulatedMessage(testMessageType, []byte("u0"), types.TraceContext{})

	// 尚无邮箱，直接丢弃
	a.call(t, func() { a.manager.PostUnreliable([]types.CellID{b.id}, msg) })
	assert.Zero(t, env.net.CallCount(b.addr, ServiceName, MethodSendMessages))

	a.post(t, b, 0, 1)
	require.Eventually(t, func() bool { return a.drained(t, b) }, waitFor, tick)
	require.Eventually(t, func() bool { return a.connectedTo(t, b) }, waitFor, tick)

	a.call(t, func() { a.manager.PostUnreliable([]types.CellID{b.id}, msg) })
	require.Eventually(t, func() bool {
		return len(b.appliedMessages()) == 2
	}, waitFor, tick)
	assert.Equal(t, []string{"m0", "u0"}, b.appliedMessages())
}

// ============================================================================
//                              同步屏障
// ============================================================================

func TestSyncWith_Self(t *testing.T) {
	env := newTestEnv()
	a := env.addCell(t, testConfig())

	_, err, ok := a.manager.SyncWith(a.id, false).TryGet()
	require.True(t, ok)
	assert.NoError(t, err)
}

func TestSyncWith_WaitsForRemoteApply(t *testing.T) {
	env := newTestEnv()
	a := env.addCell(t, testConfig())
	b := env.addCell(t, testConfig())

	a.post(t, b, 0, 5)
	require.Eventually(t, func() bool { return a.connectedTo(t, b) }, waitFor, tick)

	ctx, cancel := context.WithTimeout(context.Background(), waitFor)
	defer cancel()
	_, err := a.manager.SyncWith(b.id, false).Get(ctx)
	require.NoError(t, err)

	assert.Equal(t, expectedBodies(0, 5), b.appliedMessages())
}

func TestSyncWith_PullsPeerMessages(t *testing.T) {
	env := newTestEnv()
	a := env.addCell(t, testConfig())
	b := env.addCell(t, testConfig())

	a.post(t, b, 0, 1)
	require.Eventually(t, func() bool { return a.drained(t, b) }, waitFor, tick)
	require.Eventually(t, func() bool { return b.connectedTo(t, a) }, waitFor, tick)

	b.post(t, a, 0, 10)

	ctx, cancel := context.WithTimeout(context.Background(), waitFor)
	defer cancel()
	_, err := a.manager.SyncWith(b.id, false).Get(ctx)
	require.NoError(t, err)

	assert.Equal(t, expectedBodies(0, 10), a.appliedMessages())
}

func TestSyncWith_BatchesPings(t *testing.T) {
	cfg := testConfig()
	cfg.SyncDelay = 50 * time.Millisecond

	env := newTestEnv()
	a := env.addCell(t, cfg)
	b := env.addCell(t, cfg)

	a.post(t, b, 0, 1)
	require.Eventually(t, func() bool { return a.drained(t, b) }, waitFor, tick)
	require.Eventually(t, func() bool { return a.connectedTo(t, b) }, waitFor, tick)

	before := testutilCounter(a.manager.Metrics().SyncRounds())

	f1 := a.manager.SyncWith(b.id, true)
	f2 := a.manager.SyncWith(b.id, true)

	ctx, cancel := context.WithTimeout(context.Background(), waitFor)
	defer cancel()
	_, err := f1.Get(ctx)
	require.NoError(t, err)
	_, err = f2.Get(ctx)
	require.NoError(t, err)

	assert.Equal(t, before+1, testutilCounter(a.manager.Metrics().SyncRounds()))
}

func TestSyncWith_FailsWhenDisconnected(t *testing.T) {
	env := newTestEnv()
	a := env.addCell(t, testConfig())
	b := env.addCell(t, testConfig())

	ctx, cancel := context.WithTimeout(context.Background(), waitFor)
	defer cancel()

	// 没有邮箱
	_, err := a.manager.SyncWith(b.id, false).Get(ctx)
	assert.ErrorIs(t, err, types.ErrNoSuchMailbox)

	a.post(t, b, 0, 1)
	require.Eventually(t, func() bool { return a.drained(t, b) }, waitFor, tick)

	env.net.Enable(b.addr, false)
	_, err = a.manager.SyncWith(b.id, false).Get(ctx)
	assert.ErrorIs(t, err, types.ErrUnavailable)
}

func TestSyncWith_FailsOnStopLeading(t *testing.T) {
	env := newTestEnv()
	a := env.addCell(t, testConfig())
	b := env.addCell(t, testConfig())

	a.post(t, b, 0, 1)
	require.Eventually(t, func() bool { return a.drained(t, b) }, waitFor, tick)

	// 对端持续拒收，消息停留在队列中
	env.net.SetFilter(func(req transport.Request) error {
		if req.Address == b.addr && req.Method == MethodPostMessages {
			return types.NewError(types.CodeMailboxNotCreatedYet, "held")
		}
		return nil
	})
	a.post(t, b, 1, 2)

	f := a.manager.SyncWith(b.id, false)
	require.Eventually(t, func() bool {
		d, _ := a.mailbox(t, b.id)
		return d.AckWaiterCount == 1
	}, waitFor, tick)
	assert.False(t, f.IsSet())

	ctx, cancel := context.WithTimeout(context.Background(), waitFor)
	defer cancel()
	require.NoError(t, a.host.StopLeading(ctx))

	_, err := f.Get(ctx)
	assert.ErrorIs(t, err, types.ErrUnavailable)
}

func TestSyncWithOthers(t *testing.T) {
	env := newTestEnv()
	a := env.addCell(t, testConfig())
	b := env.addCell(t, testConfig())
	c := env.addCell(t, testConfig())

	b.post(t, a, 0, 3)
	c.post(t, a, 0, 4)
	require.Eventually(t, func() bool {
		return b.connectedTo(t, a) && c.connectedTo(t, a)
	}, waitFor, tick)
	require.Eventually(t, func() bool {
		return a.connectedTo(t, b) && a.connectedTo(t, c)
	}, waitFor, tick)

	ctx, cancel := context.WithTimeout(context.Background(), waitFor)
	defer cancel()
	err := NewProxy(env.net.Channel(a.addr)).SyncWithOthers(ctx, &SyncWithOthersRequest{
		SrcCellIDs: []types.CellID{b.id, c.id},
	})
	require.NoError(t, err)
	assert.Len(t, a.appliedMessages(), 7)
}

// ============================================================================
//                              邮箱表
// ============================================================================

func TestCreateMailbox(t *testing.T) {
	env := newTestEnv()
	a := env.addCell(t, testConfig())
	peer := types.NewCellID()

	var (
		first, second error
		mailbox       *Mailbox
	)
	a.call(t, func() {
		mailbox, first = a.manager.CreateMailbox(peer)
		_, second = a.manager.CreateMailbox(peer)
	})
	require.NoError(t, first)
	assert.ErrorIs(t, second, ErrMailboxExists)

	a.call(t, func() {
		assert.Equal(t, types.MessageID(0), mailbox.FirstOutcomingMessageID())
		assert.Equal(t, types.MessageID(-1), mailbox.LastOutcomingMessageID())
		assert.Equal(t, types.MessageID(0), mailbox.NextTransientIncomingMessageID())
		assert.Equal(t, []types.CellID{peer}, a.manager.Mailboxes())
	})

	var err error
	a.call(t, func() { _, err = a.manager.GetMailbox(types.NewCellID()) })
	assert.ErrorIs(t, err, types.ErrNoSuchMailbox)
}
