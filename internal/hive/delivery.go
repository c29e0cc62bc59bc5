package hive

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dep2p/go-hive/internal/util/delayed"
	"github.com/dep2p/go-hive/pkg/interfaces"
	pb "github.com/dep2p/go-hive/pkg/lib/proto/hive"
	"github.com/dep2p/go-hive/pkg/types"
)

// ============================================================================
//                              发送
// ============================================================================

// PostReliable 可靠投递
//
// 只能在变更中调用，mc 为 nil 时 panic。消息追加到每个目标邮箱的队列，
// 由领导者批量发送；同一目标的消息按投递顺序应用。
func (m *Manager) PostReliable(mc interfaces.MutationContext, dsts []types.CellID, msg *types.EncapsulatedMessage) {
	if mc == nil {
		panic("hive: reliable message posted outside of a mutation")
	}

	if msg.Trace().IsEmpty() && !mc.Trace().IsEmpty() {
		msg = types.NewEncapsulatedMessage(msg.Type(), msg.Data(), mc.Trace())
	}

	var targets strings.Builder
	for i, dst := range dsts {
		mailbox := m.GetOrCreateMailbox(dst)
		id := mailbox.LastOutcomingMessageID() + 1
		mailbox.outcomingMessages = append(mailbox.outcomingMessages, msg)
		mailbox.updateRuntimeData()

		if i > 0 {
			targets.WriteString(", ")
		}
		targets.WriteString(dst.ShortString())
		targets.WriteString("=>")
		targets.WriteString(strconv.FormatInt(id, 10))

		m.schedulePostOutcomingMessages(mailbox)
	}
	m.metrics.addReliablePosted(len(dsts))

	if m.mutationLogging() {
		log.Debug("可靠消息已入队",
			"type", msg.Type(),
			"self", m.cellID.ShortString(),
			"dsts", targets.String())
	}
}

// PostUnreliable 不可靠投递
//
// 只发送给已连接且有通道的邮箱，不入队、不重传。RPC 失败时邮箱断开。
func (m *Manager) PostUnreliable(dsts []types.CellID, msg *types.EncapsulatedMessage) {
	start := m.clock.Now()
	defer func() { m.metrics.addSyncPosting(m.clock.Since(start)) }()

	req := &SendMessagesRequest{
		SrcCellID: m.cellID,
		Messages:  []*types.EncapsulatedMessage{msg},
	}

	sent := 0
	for _, dst := range dsts {
		mailbox := m.FindMailbox(dst)
		if mailbox == nil || !mailbox.connected {
			continue
		}

		ch := m.findMailboxChannel(mailbox)
		if ch == nil {
			continue
		}

		cellID := dst
		inv := m.automaton.EpochInvoker()
		ctx, cancel := m.clock.WithTimeout(m.automaton.EpochContext(), m.config.SendRpcTimeout)
		go func() {
			defer cancel()
			err := NewProxy(ch).SendMessages(ctx, req)
			inv.Invoke(func() { m.onSendMessagesResponse(cellID, err) })
		}()
		sent++
	}
	m.metrics.addUnreliablePosted(sent)

	log.Debug("发送不可靠消息",
		"type", msg.Type(),
		"self", m.cellID.ShortString(),
		"targets", sent)
}

func (m *Manager) onSendMessagesResponse(cellID types.CellID, err error) {
	mailbox := m.FindMailbox(cellID)
	if mailbox == nil {
		return
	}

	if err != nil {
		log.Debug("不可靠消息发送失败",
			"self", m.cellID.ShortString(),
			"cell", cellID.ShortString(),
			"error", err)
		m.setMailboxDisconnected(mailbox)
		return
	}

	log.Debug("不可靠消息已发送", "self", m.cellID.ShortString(), "cell", cellID.ShortString())
}

// ============================================================================
//                              批量投递
// ============================================================================

func (m *Manager) schedulePostOutcomingMessages(mailbox *Mailbox) {
	if mailbox.postBatchingCookie != nil {
		return
	}
	if !m.automaton.IsLeader() {
		return
	}

	cellID := mailbox.cellID
	mailbox.postBatchingCookie = m.executor.Submit(func() {
		start := m.clock.Now()
		defer func() { m.metrics.addSyncPosting(m.clock.Since(start)) }()

		mailbox := m.FindMailbox(cellID)
		if mailbox == nil {
			return
		}
		mailbox.postBatchingCookie = nil
		m.postOutcomingMessages(mailbox, false)
	}, m.config.PostBatchingPeriod, m.automaton.EpochInvoker())
}

func (m *Manager) onIdlePostOutcomingMessages(cellID types.CellID) {
	start := m.clock.Now()
	defer func() { m.metrics.addSyncPosting(m.clock.Since(start)) }()

	mailbox := m.FindMailbox(cellID)
	if mailbox == nil {
		return
	}
	mailbox.idlePostCookie = nil
	m.postOutcomingMessages(mailbox, true)
}

// postOutcomingMessages 发送下一批消息
//
// 每个邮箱同时最多一个在途 PostMessages。allowIdle 为 false 且没有新消息时
// 改为启动空闲定时器，到期后发送空探测以继续获取确认；有确认等待者时直接探测。
func (m *Manager) postOutcomingMessages(mailbox *Mailbox, allowIdle bool) {
	if !m.automaton.IsLeader() || !mailbox.connected || mailbox.postInProgress {
		return
	}

	first := mailbox.firstOutcomingMessageID
	firstInFlight := mailbox.firstInFlightOutcomingMessageID
	end := first + types.MessageID(len(mailbox.outcomingMessages))
	if firstInFlight < first || firstInFlight > end {
		log.Error("在途游标越界",
			"self", m.cellID.ShortString(),
			"cell", mailbox.cellID.ShortString(),
			"firstInFlight", firstInFlight,
			"first", first,
			"queued", len(mailbox.outcomingMessages))
		m.setMailboxDisconnected(mailbox)
		return
	}

	cellID := mailbox.cellID

	delayed.CancelAndClear(&mailbox.idlePostCookie)
	if !allowIdle && firstInFlight == end && len(mailbox.ackWaiters) == 0 {
		mailbox.idlePostCookie = m.executor.Submit(
			func() { m.onIdlePostOutcomingMessages(cellID) },
			m.config.IdlePostPeriod,
			m.automaton.EpochInvoker())
		return
	}

	ch := m.findMailboxChannel(mailbox)
	if ch == nil {
		m.setMailboxDisconnected(mailbox)
		return
	}

	var (
		batch []*types.EncapsulatedMessage
		bytes int
	)
	for idx := int(firstInFlight - first); idx < len(mailbox.outcomingMessages) &&
		len(batch) < m.config.MaxMessagesPerPost &&
		bytes < m.config.MaxBytesPerPost; idx++ {
		msg := mailbox.outcomingMessages[idx]
		batch = append(batch, msg)
		bytes += msg.Size()
	}

	mailbox.inFlightOutcomingMessageCount = len(batch)
	mailbox.postInProgress = true
	mailbox.postSequence++
	seq := mailbox.postSequence

	if len(batch) == 0 {
		log.Debug("检查邮箱同步状态", "self", m.cellID.ShortString(), "cell", cellID.ShortString())
	} else {
		log.Debug("发送可靠消息",
			"self", m.cellID.ShortString(),
			"cell", cellID.ShortString(),
			"from", firstInFlight,
			"to", firstInFlight+types.MessageID(len(batch))-1)
	}

	req := &PostMessagesRequest{
		SrcCellID:      m.cellID,
		FirstMessageID: firstInFlight,
		Messages:       batch,
	}
	inv := m.automaton.EpochInvoker()
	ctx, cancel := m.clock.WithTimeout(m.automaton.EpochContext(), m.config.PostRpcTimeout)
	go func() {
		defer cancel()
		start := m.clock.Now()
		rsp, err := NewProxy(ch).PostMessages(ctx, req)
		m.metrics.addAsyncPosting(m.clock.Since(start))
		inv.Invoke(func() { m.onPostMessagesResponse(cellID, seq, rsp, err) })
	}()
}

func (m *Manager) onPostMessagesResponse(cellID types.CellID, seq uint64, rsp *PostMessagesResponse, err error) {
	start := m.clock.Now()
	defer func() { m.metrics.addSyncPosting(m.clock.Since(start)) }()

	mailbox := m.FindMailbox(cellID)
	if mailbox == nil {
		return
	}

	// 断开重连后旧请求的回复
	if !mailbox.postInProgress || mailbox.postSequence != seq {
		return
	}

	mailbox.inFlightOutcomingMessageCount = 0
	mailbox.postInProgress = false

	if errors.Is(err, types.ErrMailboxNotCreatedYet) {
		log.Debug("对端邮箱尚未创建，稍后重试",
			"self", m.cellID.ShortString(),
			"cell", cellID.ShortString())
		m.schedulePostOutcomingMessages(mailbox)
		return
	}

	if err != nil {
		log.Debug("可靠消息发送失败",
			"self", m.cellID.ShortString(),
			"cell", cellID.ShortString(),
			"error", err)
		m.setMailboxDisconnected(mailbox)
		return
	}

	log.Debug("可靠消息已发送",
		"self", m.cellID.ShortString(),
		"cell", cellID.ShortString(),
		"nextPersistent", rsp.NextPersistentIncomingMessageID,
		"nextTransient", rsp.NextTransientIncomingMessageID)

	if rsp.HasNextPersistentIncomingMessageID &&
		!m.handlePersistentIncomingMessages(mailbox, rsp.NextPersistentIncomingMessageID) {
		return
	}

	if !m.handleTransientIncomingMessages(mailbox, rsp.NextTransientIncomingMessageID) {
		return
	}

	m.schedulePostOutcomingMessages(mailbox)
}

// checkRequestedMessageID 对端报告的游标必须落在 [First, First+len] 内
func (m *Manager) checkRequestedMessageID(mailbox *Mailbox, requested types.MessageID) bool {
	first := mailbox.firstOutcomingMessageID
	if requested < first {
		log.Error("对端失步：请求已截断的消息",
			"self", m.cellID.ShortString(),
			"cell", mailbox.cellID.ShortString(),
			"requested", requested,
			"first", first)
		m.metrics.incDesync()
		m.setMailboxDisconnected(mailbox)
		return false
	}

	if requested > first+types.MessageID(len(mailbox.outcomingMessages)) {
		log.Error("对端失步：请求不存在的消息",
			"self", m.cellID.ShortString(),
			"cell", mailbox.cellID.ShortString(),
			"requested", requested,
			"first", first,
			"queued", len(mailbox.outcomingMessages))
		m.metrics.incDesync()
		m.setMailboxDisconnected(mailbox)
		return false
	}

	return true
}

func (m *Manager) handlePersistentIncomingMessages(mailbox *Mailbox, next types.MessageID) bool {
	if !m.checkRequestedMessageID(mailbox, next) {
		return false
	}

	if mailbox.acknowledgeInProgress || next == mailbox.firstOutcomingMessageID {
		return true
	}

	mailbox.acknowledgeInProgress = true

	log.Debug("提交确认",
		"self", m.cellID.ShortString(),
		"cell", mailbox.cellID.ShortString(),
		"from", mailbox.firstOutcomingMessageID,
		"to", next-1)

	cellID := mailbox.cellID
	req := &pb.AcknowledgeMessages{
		CellId:                          string(cellID),
		NextPersistentIncomingMessageId: next,
	}
	m.commitMessage(mutationAcknowledgeMessages, req).
		SubscribeVia(m.automaton.EpochInvoker(), func(_ struct{}, err error) {
			if err == nil {
				return
			}
			if mailbox := m.FindMailbox(cellID); mailbox != nil {
				mailbox.acknowledgeInProgress = false
			}
		})
	return true
}

func (m *Manager) handleTransientIncomingMessages(mailbox *Mailbox, next types.MessageID) bool {
	if !m.checkRequestedMessageID(mailbox, next) {
		return false
	}

	mailbox.firstInFlightOutcomingMessageID = next
	return true
}

// ============================================================================
//                              接收
// ============================================================================

// handlePostMessages 处理 PostMessages 请求（状态机线程，领导者）
//
// firstMessageID 与瞬时游标一致且批次非空时推进瞬时游标并提交变更；
// 否则视为重传，只回复当前游标。body 为原始请求，直接作为变更载荷。
func (m *Manager) handlePostMessages(req *PostMessagesRequest, body []byte) (*PostMessagesResponse, error) {
	src := req.SrcCellID
	if !m.automaton.IsLeader() {
		return nil, errNotLeader(m.cellID)
	}

	if m.IsCellRemoved(src) {
		return nil, errCellRemoved(src)
	}

	mailbox := m.FindMailbox(src)
	if mailbox == nil {
		m.commitMessage(mutationRegisterMailbox, &pb.RegisterMailbox{CellId: string(src)})
		return nil, types.NewError(types.CodeMailboxNotCreatedYet, "mailbox %s is not created yet", src)
	}

	next := mailbox.nextTransientIncomingMessageID
	if next < 0 {
		return nil, types.NewError(types.CodeUnavailable, "mailbox %s is not ready", src)
	}

	count := types.MessageID(len(req.Messages))
	if req.FirstMessageID == next && count > 0 {
		log.Debug("提交可靠入站消息",
			"src", src.ShortString(),
			"self", m.cellID.ShortString(),
			"from", next,
			"to", next+count-1)

		mailbox.nextTransientIncomingMessageID = next + count
		m.commitAndLog(mutationPostMessages, body)
	}

	return &PostMessagesResponse{
		NextTransientIncomingMessageID:     mailbox.nextTransientIncomingMessageID,
		HasNextPersistentIncomingMessageID: true,
		NextPersistentIncomingMessageID:    mailbox.nextPersistentIncomingMessageID,
	}, nil
}
