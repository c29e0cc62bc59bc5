package hive

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/dep2p/go-hive/internal/core/transport"
	pb "github.com/dep2p/go-hive/pkg/lib/proto/hive"
	"github.com/dep2p/go-hive/pkg/types"
)

// commit 直接在 c 上提交 Hive 变更，绕过 RPC 处理器
func (c *testCell) commit(t *testing.T, typ string, msg proto.Message) {
	t.Helper()
	payload, err := proto.Marshal(msg)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), waitFor)
	defer cancel()
	_, err = c.host.CommitMutation(typ, payload).Get(ctx)
	require.NoError(t, err)
}

func testMessages(bodies ...string) []*types.EncapsulatedMessage {
	out := make([]*types.EncapsulatedMessage, 0, len(bodies))
	for _, body := range bodies {
		out = append(out, types.NewEncapsulatedMessage(testMessageType, []byte(body), types.TraceContext{}))
	}
	return out
}

// ============================================================================
//                              失步与重放
// ============================================================================

func TestApplyPostMessages_SkipsReplays(t *testing.T) {
	env := newTestEnv()
	a := env.addCell(t, testConfig())
	b := env.addCell(t, testConfig())

	a.post(t, b, 0, 3)
	require.Eventually(t, func() bool { return a.drained(t, b) }, waitFor, tick)

	b.commit(t, mutationPostMessages, &pb.PostMessagesRequest{
		SrcCellId:      string(a.id),
		FirstMessageId: 1,
		Messages:       messagesToProto(testMessages(messageBody(1), messageBody(2))),
	})

	assert.Equal(t, expectedBodies(0, 3), b.appliedMessages())
	assert.Zero(t, testutilCounter(b.manager.Metrics().Desyncs()))

	d, ok := b.mailbox(t, a.id)
	require.True(t, ok)
	assert.Equal(t, types.MessageID(3), d.NextPersistentIncomingMessageID)
}

func TestApplyPostMessages_GapIsDesync(t *testing.T) {
	env := newTestEnv()
	a := env.addCell(t, testConfig())
	b := env.addCell(t, testConfig())

	a.post(t, b, 0, 3)
	require.Eventually(t, func() bool { return a.drained(t, b) }, waitFor, tick)

	b.commit(t, mutationPostMessages, &pb.PostMessagesRequest{
		SrcCellId:      string(a.id),
		FirstMessageId: 10,
		Messages:       messagesToProto(testMessages("stray")),
	})

	assert.Equal(t, expectedBodies(0, 3), b.appliedMessages())
	assert.Equal(t, 1.0, testutilCounter(b.manager.Metrics().Desyncs()))

	// 游标不受影响，后续投递照常
	a.post(t, b, 3, 6)
	require.Eventually(t, func() bool { return a.drained(t, b) }, waitFor, tick)
	assert.Equal(t, expectedBodies(0, 6), b.appliedMessages())
}

func TestApplyAcknowledge_BeyondQueueIsDesync(t *testing.T) {
	env := newTestEnv()
	a := env.addCell(t, testConfig())
	b := env.addCell(t, testConfig())

	a.post(t, b, 0, 2)
	require.Eventually(t, func() bool { return a.drained(t, b) }, waitFor, tick)

	a.commit(t, mutationAcknowledgeMessages, &pb.AcknowledgeMessages{
		CellId:                          string(b.id),
		NextPersistentIncomingMessageId: 100,
	})

	assert.Equal(t, 1.0, testutilCounter(a.manager.Metrics().Desyncs()))
	d, ok := a.mailbox(t, b.id)
	require.True(t, ok)
	assert.Equal(t, types.MessageID(2), d.FirstOutcomingMessageID)

	// 重新连接后继续投递
	a.post(t, b, 2, 4)
	require.Eventually(t, func() bool { return a.drained(t, b) }, waitFor, tick)
	assert.Equal(t, expectedBodies(0, 4), b.appliedMessages())
}

func TestApplyAcknowledge_StaleIsNoop(t *testing.T) {
	env := newTestEnv()
	a := env.addCell(t, testConfig())
	b := env.addCell(t, testConfig())

	a.post(t, b, 0, 2)
	require.Eventually(t, func() bool { return a.drained(t, b) }, waitFor, tick)

	a.commit(t, mutationAcknowledgeMessages, &pb.AcknowledgeMessages{
		CellId:                          string(b.id),
		NextPersistentIncomingMessageId: 1,
	})

	assert.Zero(t, testutilCounter(a.manager.Metrics().Desyncs()))
	d, _ := a.mailbox(t, b.id)
	assert.Equal(t, types.MessageID(2), d.FirstOutcomingMessageID)
}

// ============================================================================
//                              目录驱动的注销
// ============================================================================

func TestPeriodicPing_UnregistersRemovedCell(t *testing.T) {
	env := newTestEnv()
	a := env.addCell(t, testConfig())
	b := env.addCell(t, testConfig())

	a.post(t, b, 0, 1)
	require.Eventually(t, func() bool { return a.drained(t, b) }, waitFor, tick)

	require.True(t, env.dir.UnregisterCell(b.id))

	require.Eventually(t, func() bool {
		_, ok := a.mailbox(t, b.id)
		return !ok
	}, waitFor, tick)

	var removed bool
	a.call(t, func() { removed = a.manager.IsCellRemoved(b.id) })
	assert.True(t, removed)
}

// ============================================================================
//                              同步超时
// ============================================================================

func TestSyncWith_Timeout(t *testing.T) {
	cfg := testConfig()
	cfg.SyncTimeout = 50 * time.Millisecond

	env := newTestEnv()
	a := env.addCell(t, cfg)
	b := env.addCell(t, cfg)

	env.net.SetFilter(func(req transport.Request) error {
		if req.Address == b.addr && req.Method == MethodPostMessages {
			return types.NewError(types.CodeMailboxNotCreatedYet, "held")
		}
		return nil
	})

	a.post(t, b, 0, 1)
	require.Eventually(t, func() bool { return a.connectedTo(t, b) }, waitFor, tick)

	ctx, cancel := context.WithTimeout(context.Background(), waitFor)
	defer cancel()

	_, err := a.manager.SyncWith(b.id, false).Get(ctx)
	assert.ErrorIs(t, err, types.ErrTimeout)
}
