package hive

import (
	"context"

	"github.com/dep2p/go-hive/internal/util/batcher"
	"github.com/dep2p/go-hive/pkg/lib/future"
	"github.com/dep2p/go-hive/pkg/types"
)

// SyncWith 与单元 cellID 同步（任意线程）
//
// 返回的 Future 在以下条件都满足后完成：
//   - 调用前对端发往本单元的可靠消息已在本单元应用
//   - 调用前本单元发往对端的可靠消息已被对端应用
//
// batch 为 true 时，SyncDelay 窗口内的调用共享一次 Ping。
// 对端不可达、连接断开或本地失去角色时以 Unavailable 失败。
func (m *Manager) SyncWith(cellID types.CellID, batch bool) *future.Future[struct{}] {
	if cellID == m.cellID {
		return future.VoidReady()
	}

	if batch {
		return m.getOrCreateSyncBatcher(cellID).Run()
	}
	return m.doSyncWithCore(cellID)
}

func (m *Manager) getOrCreateSyncBatcher(cellID types.CellID) *batcher.Batcher[struct{}] {
	m.batcherMu.RLock()
	b, ok := m.batchers[cellID]
	m.batcherMu.RUnlock()
	if ok {
		return b
	}

	m.batcherMu.Lock()
	defer m.batcherMu.Unlock()
	if b, ok := m.batchers[cellID]; ok {
		return b
	}
	b = batcher.New(m.clock, m.config.SyncDelay, func() *future.Future[struct{}] {
		return m.doSyncWithCore(cellID)
	})
	m.batchers[cellID] = b
	return b
}

func (m *Manager) doSyncWithCore(cellID types.CellID) *future.Future[struct{}] {
	ch, ok := m.directory.FindChannel(cellID)
	if !ok {
		return future.Failed[struct{}](types.NewError(types.CodeUnavailable,
			"cannot synchronize with cell %s since it is not connected", cellID))
	}

	log.Debug("开始同步", "self", m.cellID.ShortString(), "cell", cellID.ShortString())
	m.metrics.incSyncRounds()

	p := future.NewPromise[struct{}]()

	epochCtx := m.automaton.EpochContext()
	inv := m.automaton.EpochInvoker()
	stopEpoch := context.AfterFunc(epochCtx, func() {
		p.TrySet(struct{}{}, errPeerStopped())
	})

	stopTimer := func() bool { return false }
	if m.config.SyncTimeout > 0 {
		timer := m.clock.AfterFunc(m.config.SyncTimeout, func() {
			p.TrySet(struct{}{}, types.NewError(types.CodeTimeout,
				"synchronization with cell %s timed out", cellID))
		})
		stopTimer = timer.Stop
	}

	ctx, cancel := m.clock.WithTimeout(epochCtx, m.config.PingRpcTimeout)
	req := &PingRequest{SrcCellID: m.cellID}
	go func() {
		defer cancel()
		rsp, err := NewProxy(ch).Ping(ctx, req)
		inv.Invoke(func() {
			m.onSyncPingResponse(cellID, rsp, err).Subscribe(func(_ struct{}, err error) {
				p.TrySet(struct{}{}, err)
			})
		})
	}()

	f := p.Future()
	f.Subscribe(func(struct{}, error) {
		stopTimer()
		stopEpoch()
	})
	return f
}

// onSyncPingResponse 根据 Ping 回复登记两个方向的等待（状态机线程）
func (m *Manager) onSyncPingResponse(cellID types.CellID, rsp *PingResponse, err error) *future.Future[struct{}] {
	if err != nil {
		return future.Failed[struct{}](types.WrapError(types.CodeUnavailable, err,
			"failed to synchronize with cell %s", cellID))
	}

	mailbox, err := m.GetMailbox(cellID)
	if err != nil {
		return future.Failed[struct{}](err)
	}
	if !mailbox.connected {
		return future.Failed[struct{}](types.NewError(types.CodeUnavailable,
			"unable to synchronize with cell %s since it is not connected", cellID))
	}

	var waits []*future.Future[struct{}]

	// 对端 -> 本单元
	next := mailbox.nextPersistentIncomingMessageID
	if rsp.HasLastOutcomingMessageID && rsp.LastOutcomingMessageID >= next {
		log.Debug("等待对端消息应用",
			"self", m.cellID.ShortString(),
			"cell", cellID.ShortString(),
			"syncMessageID", rsp.LastOutcomingMessageID,
			"nextPersistent", next)
		waits = append(waits, m.registerSyncRequest(mailbox, rsp.LastOutcomingMessageID))
	}

	// 本单元 -> 对端
	last := mailbox.LastOutcomingMessageID()
	if len(mailbox.outcomingMessages) > 0 &&
		!(rsp.HasNextPersistentIncomingMessageID && rsp.NextPersistentIncomingMessageID > last) {
		log.Debug("等待本单元消息被确认",
			"self", m.cellID.ShortString(),
			"cell", cellID.ShortString(),
			"lastOutcoming", last,
			"first", mailbox.firstOutcomingMessageID)
		waits = append(waits, m.registerAckWaiter(mailbox, last))
	}

	if len(waits) == 0 {
		log.Debug("已与对端同步", "self", m.cellID.ShortString(), "cell", cellID.ShortString())
		return future.VoidReady()
	}
	return future.Discard(future.All(waits...))
}

func (m *Manager) registerSyncRequest(mailbox *Mailbox, id types.MessageID) *future.Future[struct{}] {
	if p, ok := mailbox.syncRequests[id]; ok {
		return p.Future()
	}

	p := future.NewPromise[struct{}]()
	mailbox.syncRequests[id] = p
	return p.Future()
}

// registerAckWaiter 等待 id 及之前的出站消息被确认
func (m *Manager) registerAckWaiter(mailbox *Mailbox, id types.MessageID) *future.Future[struct{}] {
	if p, ok := mailbox.ackWaiters[id]; ok {
		return p.Future()
	}

	p := future.NewPromise[struct{}]()
	mailbox.ackWaiters[id] = p
	m.schedulePostOutcomingMessages(mailbox)
	return p.Future()
}

func (m *Manager) flushSyncRequests(mailbox *Mailbox) {
	next := mailbox.nextPersistentIncomingMessageID
	for id, p := range mailbox.syncRequests {
		if id >= next {
			continue
		}
		log.Debug("同步完成",
			"self", m.cellID.ShortString(),
			"cell", mailbox.cellID.ShortString(),
			"messageID", id)
		p.TrySet(struct{}{}, nil)
		delete(mailbox.syncRequests, id)
	}
}

func (m *Manager) flushAckWaiters(mailbox *Mailbox) {
	first := mailbox.firstOutcomingMessageID
	for id, p := range mailbox.ackWaiters {
		if id >= first {
			continue
		}
		p.TrySet(struct{}{}, nil)
		delete(mailbox.ackWaiters, id)
	}
}
