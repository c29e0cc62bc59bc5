package hive

import (
	"github.com/dep2p/go-hive/internal/util/batcher"
	"github.com/dep2p/go-hive/internal/util/delayed"
	"github.com/dep2p/go-hive/pkg/interfaces"
	"github.com/dep2p/go-hive/pkg/types"
)

// ============================================================================
//                              通道
// ============================================================================

// findMailboxChannel 返回邮箱的缓存通道，过期后从目录刷新
func (m *Manager) findMailboxChannel(mailbox *Mailbox) interfaces.Channel {
	now := m.clock.Now()
	if mailbox.cachedChannel != nil && now.Before(mailbox.cachedChannelDeadline) {
		return mailbox.cachedChannel
	}

	ch, ok := m.directory.FindChannel(mailbox.cellID)
	if !ok {
		return nil
	}

	mailbox.cachedChannel = ch
	mailbox.cachedChannelDeadline = now.Add(m.config.CachedChannelTimeout)
	return ch
}

// ============================================================================
//                              连接状态
// ============================================================================

func (m *Manager) setMailboxConnected(mailbox *Mailbox) {
	if mailbox.connected {
		return
	}

	mailbox.connected = true
	mailbox.firstInFlightOutcomingMessageID = mailbox.firstOutcomingMessageID
	mailbox.inFlightOutcomingMessageCount = 0
	m.metrics.incConnected(1)

	log.Info("邮箱已连接", "self", m.cellID.ShortString(), "cell", mailbox.cellID.ShortString())

	m.postOutcomingMessages(mailbox, true)
}

func (m *Manager) setMailboxDisconnected(mailbox *Mailbox) {
	if !mailbox.connected {
		return
	}

	mailbox.failWaiters(types.NewError(types.CodeUnavailable,
		"failed to synchronize with cell %s since it has disconnected", mailbox.cellID))

	mailbox.connected = false
	mailbox.postInProgress = false
	mailbox.firstInFlightOutcomingMessageID = mailbox.firstOutcomingMessageID
	mailbox.inFlightOutcomingMessageCount = 0
	mailbox.cachedChannel = nil
	delayed.CancelAndClear(&mailbox.idlePostCookie)
	m.metrics.incConnected(-1)

	log.Info("邮箱已断开", "self", m.cellID.ShortString(), "cell", mailbox.cellID.ShortString())
}

// resetMailboxes 失去角色：取消同步、断开所有邮箱、清空瞬时字段
func (m *Manager) resetMailboxes() {
	m.batcherMu.Lock()
	batchers := m.batchers
	m.batchers = make(map[types.CellID]*batcher.Batcher[struct{}])
	m.batcherMu.Unlock()

	err := errPeerStopped()
	for _, b := range batchers {
		b.Cancel(err)
	}

	for _, mailbox := range m.mailboxes {
		m.setMailboxDisconnected(mailbox)
		mailbox.failWaiters(err)
		mailbox.resetTransient()
	}
}

func (m *Manager) prepareLeaderMailboxes() {
	for _, mailbox := range m.mailboxes {
		mailbox.nextTransientIncomingMessageID = mailbox.nextPersistentIncomingMessageID
	}
}

func (m *Manager) reconnectMailboxes() {
	for _, id := range m.Mailboxes() {
		m.sendPeriodicPing(m.mailboxes[id])
	}
}

// ============================================================================
//                              周期性 Ping
// ============================================================================

func (m *Manager) schedulePeriodicPing(mailbox *Mailbox) {
	cellID := mailbox.cellID
	delayed.CancelAndClear(&mailbox.pingCookie)
	mailbox.pingCookie = m.executor.Submit(
		func() { m.onPeriodicPingTick(cellID) },
		m.config.PingPeriod,
		m.automaton.EpochInvoker())
}

func (m *Manager) onPeriodicPingTick(cellID types.CellID) {
	mailbox := m.FindMailbox(cellID)
	if mailbox == nil {
		return
	}
	mailbox.pingCookie = nil
	m.sendPeriodicPing(mailbox)
}

func (m *Manager) sendPeriodicPing(mailbox *Mailbox) {
	if !m.automaton.IsLeader() {
		return
	}

	cellID := mailbox.cellID
	if m.directory.IsCellUnregistered(cellID) {
		log.Info("单元已注销，注销邮箱", "self", m.cellID.ShortString(), "cell", cellID.ShortString())
		m.UnregisterMailbox(cellID)
		return
	}

	if mailbox.connected {
		m.schedulePeriodicPing(mailbox)
		return
	}

	ch := m.findMailboxChannel(mailbox)
	if ch == nil {
		// 注册占位描述符，下次目录同步时会请求该单元的配置
		m.directory.RegisterCell(types.CellDescriptor{CellID: cellID, ConfigVersion: -1})
		m.schedulePeriodicPing(mailbox)
		return
	}

	log.Debug("发送周期性 Ping", "self", m.cellID.ShortString(), "cell", cellID.ShortString())

	inv := m.automaton.EpochInvoker()
	ctx, cancel := m.clock.WithTimeout(m.automaton.EpochContext(), m.config.PingRpcTimeout)
	req := &PingRequest{SrcCellID: m.cellID}
	go func() {
		defer cancel()
		rsp, err := NewProxy(ch).Ping(ctx, req)
		inv.Invoke(func() { m.onPeriodicPingResponse(cellID, rsp, err) })
	}()
}

func (m *Manager) onPeriodicPingResponse(cellID types.CellID, rsp *PingResponse, err error) {
	mailbox := m.FindMailbox(cellID)
	if mailbox == nil {
		return
	}

	m.schedulePeriodicPing(mailbox)

	if err != nil {
		log.Debug("周期性 Ping 失败",
			"self", m.cellID.ShortString(),
			"cell", cellID.ShortString(),
			"error", err)
		return
	}

	log.Debug("周期性 Ping 成功",
		"self", m.cellID.ShortString(),
		"cell", cellID.ShortString(),
		"lastOutcoming", rsp.LastOutcomingMessageID,
		"hasMailbox", rsp.HasLastOutcomingMessageID)

	m.setMailboxConnected(mailbox)
}

// ============================================================================
//                              interfaces.AutomatonPart
// ============================================================================

// OnLeaderActive 成为领导者：瞬时游标对齐持久游标并重连所有邮箱
func (m *Manager) OnLeaderActive() {
	m.prepareLeaderMailboxes()
	m.reconnectMailboxes()
}

// OnStopLeading 失去领导权
func (m *Manager) OnStopLeading() {
	m.resetMailboxes()
}

// OnFollowerRecoveryComplete 追随者不发送 Ping，无需重连
func (m *Manager) OnFollowerRecoveryComplete() {
	log.Debug("追随者恢复完成", "cell", m.cellID.ShortString(), "mailboxes", len(m.mailboxes))
}

// OnStopFollowing 停止追随
func (m *Manager) OnStopFollowing() {
	m.resetMailboxes()
}

// Clear 清空所有状态
func (m *Manager) Clear() {
	for _, mailbox := range m.mailboxes {
		mailbox.failWaiters(errPeerStopped())
		mailbox.resetTransient()
	}
	m.mailboxes = make(map[types.CellID]*Mailbox)
	m.removedCellIDs = make(map[types.CellID]struct{})

	m.runtimeMu.Lock()
	m.runtimeData = make(map[types.CellID]*runtimeData)
	m.runtimeMu.Unlock()

	m.metrics.setMailboxCount(0)
	m.metrics.setConnected(0)
}
