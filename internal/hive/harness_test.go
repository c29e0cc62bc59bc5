package hive

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-hive/internal/config"
	"github.com/dep2p/go-hive/internal/core/automaton"
	"github.com/dep2p/go-hive/internal/core/directory"
	"github.com/dep2p/go-hive/internal/core/transport"
	"github.com/dep2p/go-hive/pkg/interfaces"
	"github.com/dep2p/go-hive/pkg/types"
)

const (
	testMutationPost = "test.Post"
	testMessageType  = "test.Record"

	waitFor = 5 * time.Second
	tick    = 5 * time.Millisecond
)

func testConfig() config.HiveConfig {
	cfg := config.DefaultHiveConfig()
	cfg.PingPeriod = 20 * time.Millisecond
	cfg.PingRpcTimeout = time.Second
	cfg.PostRpcTimeout = time.Second
	cfg.SendRpcTimeout = time.Second
	cfg.PostBatchingPeriod = 2 * time.Millisecond
	cfg.IdlePostPeriod = 20 * time.Millisecond
	cfg.CachedChannelTimeout = 50 * time.Millisecond
	cfg.SyncDelay = 5 * time.Millisecond
	cfg.SyncTimeout = 5 * time.Second
	return cfg
}

// testEnv 单进程多单元测试环境
type testEnv struct {
	net *transport.Network
	dir *directory.Directory
}

func newTestEnv() *testEnv {
	net := transport.NewNetwork()
	return &testEnv{
		net: net,
		dir: directory.New(net.Channel),
	}
}

// testCell 单元：状态机宿主 + Hive 管理器 + 记录收到的消息
type testCell struct {
	id      types.CellID
	addr    string
	host    *automaton.Host
	manager *Manager

	mu      sync.Mutex
	applied []string
}

func (e *testEnv) addCell(t *testing.T, cfg config.HiveConfig) *testCell {
	t.Helper()

	id := types.NewCellID()
	c := &testCell{
		id:   id,
		addr: "cell-" + id.ShortString(),
		host: automaton.NewHost(id),
	}

	registry := NewRegistry()
	require.NoError(t, registry.Register(testMessageType, func(mc interfaces.MutationContext) error {
		c.mu.Lock()
		c.applied = append(c.applied, string(mc.Payload()))
		c.mu.Unlock()
		return nil
	}))

	c.manager = NewManager(cfg, c.host, e.dir, registry)
	c.host.RegisterMutationHandler(testMutationPost, func(mc interfaces.MutationContext) error {
		dst, from, to, err := parsePostPayload(mc.Payload())
		if err != nil {
			return err
		}
		for i := from; i < to; i++ {
			msg := types.NewEncapsulatedMessage(testMessageType, []byte(messageBody(i)), types.TraceContext{})
			c.manager.PostReliable(mc, []types.CellID{dst}, msg)
		}
		return nil
	})

	c.host.Start()
	t.Cleanup(c.host.Stop)

	require.NoError(t, e.net.AddServer(c.addr, c.manager.Service()))
	e.dir.RegisterCell(types.CellDescriptor{CellID: id, ConfigVersion: 1, Address: c.addr})
	require.NoError(t, c.host.BecomeLeader(context.Background()))
	return c
}

func messageBody(i int) string {
	return fmt.Sprintf("m%d", i)
}

func expectedBodies(from, to int) []string {
	out := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, messageBody(i))
	}
	return out
}

func parsePostPayload(b []byte) (types.CellID, int, int, error) {
	fields := strings.Fields(string(b))
	if len(fields) != 3 {
		return "", 0, 0, fmt.Errorf("bad payload %q", b)
	}
	from, err := strconv.Atoi(fields[1])
	if err != nil {
		return "", 0, 0, err
	}
	to, err := strconv.Atoi(fields[2])
	if err != nil {
		return "", 0, 0, err
	}
	return types.CellID(fields[0]), from, to, nil
}

// post 在一个变更中向 dst 可靠投递 m<from>..m<to-1>
func (c *testCell) post(t *testing.T, dst *testCell, from, to int) {
	t.Helper()
	payload := fmt.Sprintf("%s %d %d", dst.id, from, to)
	ctx, cancel := context.WithTimeout(context.Background(), waitFor)
	defer cancel()
	_, err := c.host.CommitMutation(testMutationPost, []byte(payload)).Get(ctx)
	require.NoError(t, err)
}

func (c *testCell) appliedMessages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.applied...)
}

func (c *testCell) mailbox(t *testing.T, peer types.CellID) (MailboxDiagnostics, bool) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), waitFor)
	defer cancel()
	d, ok, err := c.manager.FindMailboxDiagnostics(ctx, peer)
	require.NoError(t, err)
	return d, ok
}

func (c *testCell) connectedTo(t *testing.T, peer *testCell) bool {
	d, ok := c.mailbox(t, peer.id)
	return ok && d.Connected
}

// drained 出站队列为空
func (c *testCell) drained(t *testing.T, peer *testCell) bool {
	d, ok := c.mailbox(t, peer.id)
	return ok && d.OutcomingMessageCount == 0
}

func (c *testCell) call(t *testing.T, fn func()) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), waitFor)
	defer cancel()
	require.NoError(t, c.host.Call(ctx, func() error {
		fn()
		return nil
	}))
}
