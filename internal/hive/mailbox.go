package hive

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/dep2p/go-hive/internal/util/delayed"
	"github.com/dep2p/go-hive/pkg/interfaces"
	"github.com/dep2p/go-hive/pkg/lib/future"
	"github.com/dep2p/go-hive/pkg/types"
)

// ============================================================================
//                              Mailbox
// ============================================================================

// Mailbox 指向某个目标单元的邮箱
//
// 只能在状态机线程中访问。
type Mailbox struct {
	cellID types.CellID

	// 持久化字段
	firstOutcomingMessageID         types.MessageID
	outcomingMessages               []*types.EncapsulatedMessage
	nextPersistentIncomingMessageID types.MessageID

	// 瞬时字段，角色变化时重建
	nextTransientIncomingMessageID  types.MessageID
	connected                       bool
	firstInFlightOutcomingMessageID types.MessageID
	inFlightOutcomingMessageCount   int
	postInProgress                  bool
	postSequence                    uint64
	acknowledgeInProgress           bool

	syncRequests map[types.MessageID]*future.Promise[struct{}]
	ackWaiters   map[types.MessageID]*future.Promise[struct{}]

	cachedChannel         interfaces.Channel
	cachedChannelDeadline time.Time

	postBatchingCookie *delayed.Cookie
	idlePostCookie     *delayed.Cookie
	pingCookie         *delayed.Cookie

	runtime *runtimeData
}

// runtimeData 可在状态机线程之外读取的邮箱数据
type runtimeData struct {
	lastOutcomingMessageID          atomic.Int64
	nextPersistentIncomingMessageID atomic.Int64
}

func newMailbox(cellID types.CellID) *Mailbox {
	m := &Mailbox{
		cellID:                         cellID,
		nextTransientIncomingMessageID: types.InvalidMessageID,
		syncRequests:                   make(map[types.MessageID]*future.Promise[struct{}]),
		ackWaiters:                     make(map[types.MessageID]*future.Promise[struct{}]),
		runtime:                        &runtimeData{},
	}
	m.updateRuntimeData()
	return m
}

// CellID 目标单元
func (m *Mailbox) CellID() types.CellID {
	return m.cellID
}

// FirstOutcomingMessageID 队首消息 ID
func (m *Mailbox) FirstOutcomingMessageID() types.MessageID {
	return m.firstOutcomingMessageID
}

// OutcomingMessageCount 队列长度
func (m *Mailbox) OutcomingMessageCount() int {
	return len(m.outcomingMessages)
}

// OutcomingMessages 队列副本
func (m *Mailbox) OutcomingMessages() []*types.EncapsulatedMessage {
	return append([]*types.EncapsulatedMessage(nil), m.outcomingMessages...)
}

// LastOutcomingMessageID 最后一条出站消息 ID，队列为空时为 First-1
func (m *Mailbox) LastOutcomingMessageID() types.MessageID {
	return m.firstOutcomingMessageID + types.MessageID(len(m.outcomingMessages)) - 1
}

// NextPersistentIncomingMessageID 持久入站游标
func (m *Mailbox) NextPersistentIncomingMessageID() types.MessageID {
	return m.nextPersistentIncomingMessageID
}

// NextTransientIncomingMessageID 瞬时入站游标，非领导者为 -1
func (m *Mailbox) NextTransientIncomingMessageID() types.MessageID {
	return m.nextTransientIncomingMessageID
}

// Connected 是否已连接
func (m *Mailbox) Connected() bool {
	return m.connected
}

func (m *Mailbox) updateRuntimeData() {
	m.runtime.lastOutcomingMessageID.Store(m.LastOutcomingMessageID())
	m.runtime.nextPersistentIncomingMessageID.Store(m.nextPersistentIncomingMessageID)
}

// resetTransient 清空瞬时字段（失去角色时调用）
func (m *Mailbox) resetTransient() {
	m.nextTransientIncomingMessageID = types.InvalidMessageID
	m.acknowledgeInProgress = false
	m.cachedChannel = nil
	m.cachedChannelDeadline = time.Time{}
	delayed.CancelAndClear(&m.postBatchingCookie)
	delayed.CancelAndClear(&m.idlePostCookie)
	delayed.CancelAndClear(&m.pingCookie)
}

// failWaiters 以 err 结束所有同步请求与确认等待
func (m *Mailbox) failWaiters(err error) {
	for id, p := range m.syncRequests {
		p.TrySet(struct{}{}, err)
		delete(m.syncRequests, id)
	}
	for id, p := range m.ackWaiters {
		p.TrySet(struct{}{}, err)
		delete(m.ackWaiters, id)
	}
}

// ============================================================================
//                              邮箱表
// ============================================================================

// CreateMailbox 创建邮箱
//
// 已存在时返回 ErrMailboxExists。复活已注销的单元会告警并清除注销记录。
func (m *Manager) CreateMailbox(cellID types.CellID) (*Mailbox, error) {
	if _, ok := m.mailboxes[cellID]; ok {
		return nil, ErrMailboxExists
	}

	if _, removed := m.removedCellIDs[cellID]; removed {
		delete(m.removedCellIDs, cellID)
		if m.mutationLogging() {
			log.Error("邮箱被复活", "self", m.cellID.ShortString(), "cell", cellID.ShortString())
		}
	}

	mailbox := newMailbox(cellID)
	if m.automaton.IsLeader() {
		mailbox.nextTransientIncomingMessageID = mailbox.nextPersistentIncomingMessageID
	}
	m.mailboxes[cellID] = mailbox

	m.runtimeMu.Lock()
	m.runtimeData[cellID] = mailbox.runtime
	m.runtimeMu.Unlock()

	m.metrics.setMailboxCount(len(m.mailboxes))

	if m.automaton.IsLeader() && !m.automaton.IsRecovering() {
		m.sendPeriodicPing(mailbox)
	}

	if m.mutationLogging() {
		log.Info("邮箱已创建", "self", m.cellID.ShortString(), "cell", cellID.ShortString())
	}
	return mailbox, nil
}

// GetOrCreateMailbox 获取或创建邮箱
func (m *Manager) GetOrCreateMailbox(cellID types.CellID) *Mailbox {
	if mailbox, ok := m.mailboxes[cellID]; ok {
		return mailbox
	}
	mailbox, _ := m.CreateMailbox(cellID)
	return mailbox
}

// FindMailbox 查找邮箱
func (m *Manager) FindMailbox(cellID types.CellID) *Mailbox {
	return m.mailboxes[cellID]
}

// GetMailbox 获取邮箱，不存在时返回 NoSuchMailbox
func (m *Manager) GetMailbox(cellID types.CellID) (*Mailbox, error) {
	mailbox, ok := m.mailboxes[cellID]
	if !ok {
		return nil, errNoSuchMailbox(cellID)
	}
	return mailbox, nil
}

// RemoveMailbox 删除邮箱
//
// 只能在变更中调用，mc 为 nil 时 panic。单元 ID 记入已注销集合。
func (m *Manager) RemoveMailbox(mc interfaces.MutationContext, cellID types.CellID) {
	if mc == nil {
		panic("hive: RemoveMailbox called outside of a mutation")
	}

	mailbox, ok := m.mailboxes[cellID]
	if !ok {
		return
	}

	m.setMailboxDisconnected(mailbox)
	mailbox.failWaiters(types.NewError(types.CodeUnavailable, "mailbox %s is removed", cellID))
	mailbox.resetTransient()
	delete(m.mailboxes, cellID)

	m.runtimeMu.Lock()
	delete(m.runtimeData, cellID)
	m.runtimeMu.Unlock()

	m.metrics.setMailboxCount(len(m.mailboxes))

	if _, removed := m.removedCellIDs[cellID]; removed {
		if m.mutationLogging() {
			log.Error("邮箱已被注销", "self", m.cellID.ShortString(), "cell", cellID.ShortString())
		}
	}
	m.removedCellIDs[cellID] = struct{}{}

	if m.mutationLogging() {
		log.Info("邮箱已删除", "self", m.cellID.ShortString(), "cell", cellID.ShortString())
	}
}

// Mailboxes 所有邮箱的目标单元，按 ID 排序
func (m *Manager) Mailboxes() []types.CellID {
	ids := make([]types.CellID, 0, len(m.mailboxes))
	for id := range m.mailboxes {
		ids = append(ids, id)
	}
	sortCellIDs(ids)
	return ids
}

// IsCellRemoved 单元是否已被注销
func (m *Manager) IsCellRemoved(cellID types.CellID) bool {
	_, ok := m.removedCellIDs[cellID]
	return ok
}

func (m *Manager) findRuntimeData(cellID types.CellID) *runtimeData {
	m.runtimeMu.RLock()
	defer m.runtimeMu.RUnlock()
	return m.runtimeData[cellID]
}

func sortCellIDs(ids []types.CellID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
