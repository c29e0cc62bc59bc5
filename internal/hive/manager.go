package hive

import (
	"context"
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/proto"

	"github.com/dep2p/go-hive/internal/config"
	"github.com/dep2p/go-hive/internal/util/batcher"
	"github.com/dep2p/go-hive/internal/util/delayed"
	"github.com/dep2p/go-hive/internal/util/logger"
	"github.com/dep2p/go-hive/pkg/interfaces"
	"github.com/dep2p/go-hive/pkg/lib/future"
	pb "github.com/dep2p/go-hive/pkg/lib/proto/hive"
	"github.com/dep2p/go-hive/pkg/types"
)

var log = logger.Logger("hive")

// ============================================================================
//                              选项
// ============================================================================

// Option Manager 选项
type Option func(*Manager)

// WithClock 设置时钟（定时器、通道缓存、超时）
func WithClock(c clock.Clock) Option {
	return func(m *Manager) { m.clock = c }
}

// WithRegisterer 设置指标注册器
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(m *Manager) { m.registerer = reg }
}

// ============================================================================
//                              Manager
// ============================================================================

// Manager 单元的 Hive 管理器
//
// 挂载在复制状态机上：注册变更处理器与快照分段，响应角色切换。
// 除特别说明的方法外，所有方法只能在状态机线程中调用。
type Manager struct {
	cellID    types.CellID
	config    config.HiveConfig
	automaton interfaces.Automaton
	directory interfaces.CellDirectory
	registry  *Registry

	clock      clock.Clock
	executor   *delayed.Executor
	registerer prometheus.Registerer
	metrics    *Metrics

	// 状态机线程独占
	mailboxes      map[types.CellID]*Mailbox
	removedCellIDs map[types.CellID]struct{}

	runtimeMu   sync.RWMutex
	runtimeData map[types.CellID]*runtimeData

	batcherMu sync.RWMutex
	batchers  map[types.CellID]*batcher.Batcher[struct{}]
}

var _ interfaces.AutomatonPart = (*Manager)(nil)

// NewManager 创建管理器并挂载到状态机
func NewManager(
	cfg config.HiveConfig,
	automaton interfaces.Automaton,
	directory interfaces.CellDirectory,
	registry *Registry,
	opts ...Option,
) *Manager {
	if registry == nil {
		registry = NewRegistry()
	}

	m := &Manager{
		cellID:         automaton.CellID(),
		config:         cfg,
		automaton:      automaton,
		directory:      directory,
		registry:       registry,
		clock:          clock.New(),
		mailboxes:      make(map[types.CellID]*Mailbox),
		removedCellIDs: make(map[types.CellID]struct{}),
		runtimeData:    make(map[types.CellID]*runtimeData),
		batchers:       make(map[types.CellID]*batcher.Batcher[struct{}]),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.executor = delayed.New(m.clock)
	m.metrics = NewMetrics(m.registerer, m.cellID)

	m.registerMutationHandlers()
	automaton.RegisterPart(m)

	log.Debug("Hive 管理器已创建", "cell", m.cellID.ShortString())
	return m
}

// CellID 本单元 ID（任意线程）
func (m *Manager) CellID() types.CellID {
	return m.cellID
}

// Registry 消息处理器注册表（任意线程）
func (m *Manager) Registry() *Registry {
	return m.registry
}

// Metrics 指标（任意线程）
func (m *Manager) Metrics() *Metrics {
	return m.metrics
}

// Service 返回 RPC 服务（任意线程）
func (m *Manager) Service() interfaces.Service {
	return &service{m: m}
}

// mutationLogging 恢复期间不输出变更日志
func (m *Manager) mutationLogging() bool {
	return !m.automaton.IsRecovering()
}

// commitAndLog 提交变更，失败只记录日志
func (m *Manager) commitAndLog(typ string, payload []byte) *future.Future[struct{}] {
	f := m.automaton.CommitMutation(typ, payload)
	f.Subscribe(func(_ struct{}, err error) {
		if err != nil {
			log.Debug("变更提交失败", "cell", m.cellID.ShortString(), "type", typ, "error", err)
		}
	})
	return f
}

// commitMessage 编码 msg 并提交变更（状态机线程）
func (m *Manager) commitMessage(typ string, msg proto.Message) *future.Future[struct{}] {
	payload, err := proto.Marshal(msg)
	if err != nil {
		log.Error("变更编码失败", "cell", m.cellID.ShortString(), "type", typ, "error", err)
		return future.Failed[struct{}](err)
	}
	return m.commitAndLog(typ, payload)
}

// runOnAutomaton 在状态机线程执行 fn 并等待结果（任意线程）
func runOnAutomaton[T any](ctx context.Context, m *Manager, fn func() (T, error)) (T, error) {
	return future.Async(m.automaton.AutomatonInvoker(), fn).Get(ctx)
}

// ============================================================================
//                              门面操作
// ============================================================================

// SyncCells 与调用方已知的单元列表对比（任意线程）
//
// 只读取单元目录，不修改 Hive 状态。
func (m *Manager) SyncCells(known []types.CellInfo) types.SyncCellsResult {
	result := m.directory.Synchronize(known)

	for _, desc := range result.CellsToReconfigure {
		log.Debug("请求重新配置单元",
			"cell", desc.CellID.ShortString(),
			"version", desc.ConfigVersion)
	}
	for _, id := range result.CellsToUnregister {
		log.Debug("请求注销单元", "cell", id.ShortString())
	}
	return result
}

// SyncWithOthers 与多个单元同步，全部成功才返回 nil（任意线程）
func (m *Manager) SyncWithOthers(ctx context.Context, cellIDs []types.CellID) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, id := range cellIDs {
		g.Go(func() error {
			_, err := m.SyncWith(id, true).Get(ctx)
			return err
		})
	}
	return g.Wait()
}

// UnregisterMailbox 提交注销邮箱的变更（状态机线程）
func (m *Manager) UnregisterMailbox(cellID types.CellID) *future.Future[struct{}] {
	return m.commitMessage(mutationUnregisterMailbox, &pb.UnregisterMailbox{CellId: string(cellID)})
}
