package automaton

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/dep2p/go-hive/internal/core/storage"
	"github.com/dep2p/go-hive/internal/util/logger"
	"github.com/dep2p/go-hive/pkg/interfaces"
	"github.com/dep2p/go-hive/pkg/lib/future"
	"github.com/dep2p/go-hive/pkg/types"
)

var log = logger.Logger("automaton")

var (
	// ErrStopped 宿主已停止
	ErrStopped = errors.New("automaton: host stopped")

	// ErrActive 宿主处于活跃角色，不能恢复
	ErrActive = errors.New("automaton: cannot recover while holding a role")
)

// Role 宿主角色
type Role int32

const (
	// RoleNone 无角色
	RoleNone Role = iota
	// RoleLeader 活跃领导者
	RoleLeader
	// RoleFollower 追随者
	RoleFollower
)

// String 返回角色名称
func (r Role) String() string {
	switch r {
	case RoleLeader:
		return "leader"
	case RoleFollower:
		return "follower"
	default:
		return "none"
	}
}

// SnapshotStore 快照持久化
type SnapshotStore interface {
	Save(cellID types.CellID, seq int64, data []byte) error
	LoadLatest(cellID types.CellID) (*storage.Snapshot, error)
}

// Option 宿主选项
type Option func(*Host)

// WithClock 设置时钟
func WithClock(c clock.Clock) Option {
	return func(h *Host) { h.clock = c }
}

// WithCommitDelay 设置提交延迟
func WithCommitDelay(d time.Duration) Option {
	return func(h *Host) { h.commitDelay = d }
}

// WithSnapshotStore 设置快照存储
func WithSnapshotStore(s SnapshotStore) Option {
	return func(h *Host) { h.snapshots = s }
}

type journalEntry struct {
	seq     int64
	typ     string
	payload []byte
}

type pendingCommit struct {
	id      uint64
	epoch   uint64
	entry   journalEntry
	promise *future.Promise[struct{}]
}

type savedSnapshot struct {
	seq  int64
	data []byte
}

// Host 单副本复制状态机宿主
type Host struct {
	cellID      types.CellID
	clock       clock.Clock
	commitDelay time.Duration
	snapshots   SnapshotStore

	queue    *taskQueue
	stopCh   chan struct{}
	done     chan struct{}
	started  atomic.Bool
	stopOnce sync.Once

	role       atomic.Int32
	epoch      atomic.Uint64
	recovering atomic.Bool
	sequence   atomic.Int64

	ctxMu       sync.RWMutex
	epochCtx    context.Context
	epochCancel context.CancelFunc

	regMu    sync.RWMutex
	handlers map[string]interfaces.MutationHandler
	parts    []interfaces.AutomatonPart

	commitMu sync.Mutex
	commitID uint64
	pending  []*pendingCommit

	// 以下字段只在状态机线程访问
	journal      []journalEntry
	lastSnapshot *savedSnapshot
}

// NewHost 创建宿主
func NewHost(cellID types.CellID, opts ...Option) *Host {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	h := &Host{
		cellID:      cellID,
		clock:       clock.New(),
		queue:       newTaskQueue(),
		stopCh:      make(chan struct{}),
		done:        make(chan struct{}),
		epochCtx:    canceled,
		epochCancel: cancel,
		handlers:    make(map[string]interfaces.MutationHandler),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ============================================================================
//                              生命周期
// ============================================================================

// Start 启动状态机线程
func (h *Host) Start() {
	if h.started.Swap(true) {
		return
	}
	go h.loop()
}

// Stop 停止状态机线程，未执行的任务被丢弃
func (h *Host) Stop() {
	h.stopOnce.Do(func() {
		close(h.stopCh)
		h.queue.close()
		if h.started.Load() {
			<-h.done
		}

		h.ctxMu.Lock()
		h.epochCancel()
		h.ctxMu.Unlock()

		h.failPending(types.NewError(types.CodeUnavailable, "automaton of cell %s is stopped", h.cellID))
	})
}

func (h *Host) loop() {
	defer close(h.done)
	for {
		select {
		case <-h.stopCh:
			return
		case <-h.queue.signal:
			for _, task := range h.queue.drain() {
				select {
				case <-h.stopCh:
					return
				default:
				}
				task()
			}
		}
	}
}

// ============================================================================
//                              interfaces.Automaton
// ============================================================================

// CellID 本单元 ID
func (h *Host) CellID() types.CellID {
	return h.cellID
}

// Invoke 在状态机线程执行 fn
func (h *Host) Invoke(fn func()) {
	h.queue.push(fn)
}

// AutomatonInvoker 状态机线程执行器
func (h *Host) AutomatonInvoker() interfaces.Invoker {
	return h
}

type epochInvoker struct {
	host  *Host
	epoch uint64
}

func (i epochInvoker) Invoke(fn func()) {
	i.host.queue.push(func() {
		if i.host.epoch.Load() == i.epoch {
			fn()
		}
	})
}

// EpochInvoker 绑定当前任期的执行器
func (h *Host) EpochInvoker() interfaces.Invoker {
	return epochInvoker{host: h, epoch: h.epoch.Load()}
}

// EpochContext 当前任期上下文
func (h *Host) EpochContext() context.Context {
	h.ctxMu.RLock()
	defer h.ctxMu.RUnlock()
	return h.epochCtx
}

// RegisterMutationHandler 注册变更处理器
func (h *Host) RegisterMutationHandler(typ string, handler interfaces.MutationHandler) {
	h.regMu.Lock()
	defer h.regMu.Unlock()
	if _, ok := h.handlers[typ]; ok {
		panic(fmt.Sprintf("automaton: duplicate mutation handler %q", typ))
	}
	h.handlers[typ] = handler
}

// RegisterPart 注册组件
func (h *Host) RegisterPart(part interfaces.AutomatonPart) {
	h.regMu.Lock()
	defer h.regMu.Unlock()
	h.parts = append(h.parts, part)
}

// IsLeader 是否为活跃领导者
func (h *Host) IsLeader() bool {
	return Role(h.role.Load()) == RoleLeader
}

// IsRecovering 是否正在恢复
func (h *Host) IsRecovering() bool {
	return h.recovering.Load()
}

// Role 当前角色
func (h *Host) Role() Role {
	return Role(h.role.Load())
}

// Sequence 已应用的变更序号
func (h *Host) Sequence() int64 {
	return h.sequence.Load()
}

// CommitMutation 提交变更
//
// 变更按调用顺序应用；任期在应用前发生变化时以 Unavailable 失败。
func (h *Host) CommitMutation(typ string, payload []byte) *future.Future[struct{}] {
	if !h.IsLeader() {
		return future.Failed[struct{}](types.NewError(types.CodeUnavailable, "cell %s is not leading", h.cellID))
	}

	p := future.NewPromise[struct{}]()
	h.commitMu.Lock()
	h.commitID++
	id := h.commitID
	h.pending = append(h.pending, &pendingCommit{
		id:      id,
		epoch:   h.epoch.Load(),
		entry:   journalEntry{typ: typ, payload: append([]byte(nil), payload...)},
		promise: p,
	})
	h.commitMu.Unlock()

	flush := func() {
		if !h.queue.push(func() { h.flushCommits(id) }) {
			p.TrySet(struct{}{}, ErrStopped)
		}
	}
	if h.commitDelay > 0 {
		h.clock.AfterFunc(h.commitDelay, flush)
	} else {
		flush()
	}
	return p.Future()
}

// flushCommits 按顺序应用 id 及之前的所有待提交变更
func (h *Host) flushCommits(upTo uint64) {
	h.commitMu.Lock()
	n := 0
	for n < len(h.pending) && h.pending[n].id <= upTo {
		n++
	}
	batch := h.pending[:n:n]
	h.pending = h.pending[n:]
	h.commitMu.Unlock()

	for _, c := range batch {
		if c.epoch != h.epoch.Load() || !h.IsLeader() {
			c.promise.TrySet(struct{}{}, types.NewError(types.CodeUnavailable, "cell %s lost leadership before commit", h.cellID))
			continue
		}
		err := h.apply(c.entry)
		c.promise.TrySet(struct{}{}, err)
	}
}

func (h *Host) failPending(err error) {
	h.commitMu.Lock()
	pending := h.pending
	h.pending = nil
	h.commitMu.Unlock()

	for _, c := range pending {
		c.promise.TrySet(struct{}{}, err)
	}
}

// apply 在状态机线程中应用一条变更并记入日志
func (h *Host) apply(entry journalEntry) error {
	entry.seq = h.sequence.Add(1)
	h.journal = append(h.journal, entry)

	h.regMu.RLock()
	handler := h.handlers[entry.typ]
	h.regMu.RUnlock()
	if handler == nil {
		log.Error("未知的变更类型", "cell", h.cellID.ShortString(), "type", entry.typ)
		return fmt.Errorf("automaton: no handler for mutation %q", entry.typ)
	}

	return handler(newMutationContext(entry.typ, entry.payload, entry.seq, types.TraceContext{}))
}

// ============================================================================
//                              角色切换
// ============================================================================

// Call 在状态机线程执行 fn 并等待结果
func (h *Host) Call(ctx context.Context, fn func() error) error {
	errCh := make(chan error, 1)
	if !h.queue.push(func() { errCh <- fn() }) {
		return ErrStopped
	}
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-h.stopCh:
		return ErrStopped
	}
}

func (h *Host) partsCopy() []interfaces.AutomatonPart {
	h.regMu.RLock()
	defer h.regMu.RUnlock()
	return append([]interfaces.AutomatonPart(nil), h.parts...)
}

func (h *Host) beginEpoch() {
	h.ctxMu.Lock()
	h.epochCancel()
	h.epochCtx, h.epochCancel = context.WithCancel(context.Background())
	h.epoch.Add(1)
	h.ctxMu.Unlock()
}

func (h *Host) endEpoch() {
	h.ctxMu.Lock()
	h.epochCancel()
	h.epoch.Add(1)
	h.ctxMu.Unlock()
}

// BecomeLeader 成为活跃领导者
func (h *Host) BecomeLeader(ctx context.Context) error {
	return h.Call(ctx, func() error {
		switch h.Role() {
		case RoleLeader:
			return nil
		case RoleFollower:
			h.stopFollowing()
		}

		h.beginEpoch()
		h.role.Store(int32(RoleLeader))
		log.Info("成为领导者", "cell", h.cellID.ShortString(), "epoch", h.epoch.Load())
		for _, p := range h.partsCopy() {
			p.OnLeaderActive()
		}
		return nil
	})
}

// StopLeading 失去领导权
func (h *Host) StopLeading(ctx context.Context) error {
	return h.Call(ctx, func() error {
		if h.Role() != RoleLeader {
			return nil
		}

		h.role.Store(int32(RoleNone))
		h.endEpoch()
		h.failPending(types.NewError(types.CodeUnavailable, "cell %s stopped leading", h.cellID))
		log.Info("失去领导权", "cell", h.cellID.ShortString(), "epoch", h.epoch.Load())
		for _, p := range h.partsCopy() {
			p.OnStopLeading()
		}
		return nil
	})
}

// BecomeFollower 成为追随者
func (h *Host) BecomeFollower(ctx context.Context) error {
	return h.Call(ctx, func() error {
		switch h.Role() {
		case RoleFollower:
			return nil
		case RoleLeader:
			return errors.New("automaton: leader must stop leading first")
		}

		h.beginEpoch()
		h.role.Store(int32(RoleFollower))
		log.Info("成为追随者", "cell", h.cellID.ShortString())
		for _, p := range h.partsCopy() {
			p.OnFollowerRecoveryComplete()
		}
		return nil
	})
}

// StopFollowing 停止追随
func (h *Host) StopFollowing(ctx context.Context) error {
	return h.Call(ctx, func() error {
		if h.Role() == RoleFollower {
			h.stopFollowing()
		}
		return nil
	})
}

func (h *Host) stopFollowing() {
	h.role.Store(int32(RoleNone))
	h.endEpoch()
	for _, p := range h.partsCopy() {
		p.OnStopFollowing()
	}
}

// ============================================================================
//                              快照与恢复
// ============================================================================

func (h *Host) sortedSections() []interfaces.SnapshotSection {
	var sections []interfaces.SnapshotSection
	for _, p := range h.partsCopy() {
		sections = append(sections, p.SnapshotSections()...)
	}
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Priority < sections[j].Priority
	})
	return sections
}

// SaveSnapshot 保存快照并截断日志，返回快照序号
func (h *Host) SaveSnapshot(ctx context.Context) (int64, error) {
	var seq int64
	err := h.Call(ctx, func() error {
		seq = h.sequence.Load()

		var sections []encodedSection
		for _, s := range h.sortedSections() {
			data, err := s.Save()
			if err != nil {
				return fmt.Errorf("automaton: save section %s: %w", s.Name, err)
			}
			sections = append(sections, encodedSection{name: s.Name, data: data})
		}
		data, err := encodeSnapshot(seq, sections)
		if err != nil {
			return fmt.Errorf("automaton: encode snapshot: %w", err)
		}

		if h.snapshots != nil {
			if err := h.snapshots.Save(h.cellID, seq, data); err != nil {
				return err
			}
		}
		h.lastSnapshot = &savedSnapshot{seq: seq, data: data}
		h.journal = nil
		log.Debug("快照已保存", "cell", h.cellID.ShortString(), "seq", seq, "bytes", len(data))
		return nil
	})
	return seq, err
}

// Recover 从最新快照与内存日志重建状态
//
// 只能在无角色时调用；恢复完成后由调用方决定成为领导者或追随者。
func (h *Host) Recover(ctx context.Context) error {
	return h.Call(ctx, func() error {
		if h.Role() != RoleNone {
			return ErrActive
		}

		h.recovering.Store(true)
		defer h.recovering.Store(false)

		for _, p := range h.partsCopy() {
			p.Clear()
		}

		snap, err := h.latestSnapshot()
		if err != nil {
			return err
		}

		var base int64
		if snap != nil {
			seq, sections, err := decodeSnapshot(snap.data)
			if err != nil {
				return err
			}
			if err := h.loadSections(sections); err != nil {
				return err
			}
			base = seq
		}
		h.sequence.Store(base)

		journal := h.journal
		h.journal = nil
		replayed := 0
		for _, e := range journal {
			if e.seq <= base {
				continue
			}
			if err := h.apply(e); err != nil {
				log.Warn("回放变更失败", "cell", h.cellID.ShortString(), "seq", e.seq, "type", e.typ, "error", err)
			}
			replayed++
		}

		log.Info("恢复完成", "cell", h.cellID.ShortString(), "snapshotSeq", base, "replayed", replayed)
		return nil
	})
}

func (h *Host) latestSnapshot() (*savedSnapshot, error) {
	if h.snapshots != nil {
		snap, err := h.snapshots.LoadLatest(h.cellID)
		switch {
		case err == nil:
			return &savedSnapshot{seq: snap.Sequence, data: snap.Data}, nil
		case !errors.Is(err, storage.ErrNoSnapshot):
			return nil, err
		}
	}
	return h.lastSnapshot, nil
}

func (h *Host) loadSections(sections []encodedSection) error {
	byName := make(map[string][]byte, len(sections))
	for _, s := range sections {
		byName[s.name] = s.data
	}

	for _, s := range h.sortedSections() {
		data, ok := byName[s.Name]
		if !ok {
			continue
		}
		if err := s.Load(data); err != nil {
			return fmt.Errorf("automaton: load section %s: %w", s.Name, err)
		}
		delete(byName, s.Name)
	}
	for name := range byName {
		log.Warn("快照中存在未知分段", "cell", h.cellID.ShortString(), "section", name)
	}
	return nil
}

var _ interfaces.Automaton = (*Host)(nil)
