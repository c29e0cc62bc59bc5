package hive

import (
	"slices"

	"github.com/dep2p/go-hive/pkg/interfaces"
	pb "github.com/dep2p/go-hive/pkg/lib/proto/hive"
	"github.com/dep2p/go-hive/pkg/types"
)

// 变更类型
const (
	mutationAcknowledgeMessages = "hive.AcknowledgeMessages"
	mutationPostMessages        = "hive.PostMessages"
	mutationSendMessages        = "hive.SendMessages"
	mutationRegisterMailbox     = "hive.RegisterMailbox"
	mutationUnregisterMailbox   = "hive.UnregisterMailbox"
)

func (m *Manager) registerMutationHandlers() {
	m.automaton.RegisterMutationHandler(mutationAcknowledgeMessages, m.onAcknowledgeMessages)
	m.automaton.RegisterMutationHandler(mutationPostMessages, m.onPostMessages)
	m.automaton.RegisterMutationHandler(mutationSendMessages, m.onSendMessages)
	m.automaton.RegisterMutationHandler(mutationRegisterMailbox, m.onRegisterMailbox)
	m.automaton.RegisterMutationHandler(mutationUnregisterMailbox, m.onUnregisterMailbox)
}

// ============================================================================
//                              变更处理器（所有副本）
// ============================================================================

func (m *Manager) onAcknowledgeMessages(mc interfaces.MutationContext) error {
	var req pb.AcknowledgeMessages
	if err := unmarshalProto(mc.Payload(), &req); err != nil {
		return err
	}
	next := req.GetNextPersistentIncomingMessageId()

	mailbox := m.FindMailbox(types.CellID(req.GetCellId()))
	if mailbox == nil {
		return nil
	}

	mailbox.acknowledgeInProgress = false

	count := next - mailbox.firstOutcomingMessageID
	if count <= 0 {
		if m.mutationLogging() {
			log.Debug("没有消息被确认",
				"self", m.cellID.ShortString(),
				"cell", mailbox.cellID.ShortString(),
				"nextPersistent", next,
				"first", mailbox.firstOutcomingMessageID)
		}
		return nil
	}

	if count > types.MessageID(len(mailbox.outcomingMessages)) {
		if m.mutationLogging() {
			log.Error("请求确认的消息超出队列",
				"self", m.cellID.ShortString(),
				"cell", mailbox.cellID.ShortString(),
				"nextPersistent", next,
				"first", mailbox.firstOutcomingMessageID,
				"queued", len(mailbox.outcomingMessages))
		}
		m.metrics.incDesync()
		m.setMailboxDisconnected(mailbox)
		return nil
	}

	mailbox.outcomingMessages = slices.Delete(mailbox.outcomingMessages, 0, int(count))
	mailbox.firstOutcomingMessageID += count
	if mailbox.firstInFlightOutcomingMessageID < mailbox.firstOutcomingMessageID {
		mailbox.firstInFlightOutcomingMessageID = mailbox.firstOutcomingMessageID
	}
	mailbox.updateRuntimeData()
	m.flushAckWaiters(mailbox)
	m.metrics.addAcknowledged(int(count))

	if m.mutationLogging() {
		log.Debug("消息已确认",
			"self", m.cellID.ShortString(),
			"cell", mailbox.cellID.ShortString(),
			"first", mailbox.firstOutcomingMessageID)
	}
	return nil
}

func (m *Manager) onPostMessages(mc interfaces.MutationContext) error {
	var req PostMessagesRequest
	if err := req.Unmarshal(mc.Payload()); err != nil {
		return err
	}

	if m.IsCellRemoved(req.SrcCellID) {
		return errCellRemoved(req.SrcCellID)
	}

	mailbox := m.FindMailbox(req.SrcCellID)
	if mailbox == nil {
		if req.FirstMessageID != 0 {
			if m.mutationLogging() {
				log.Error("缺失邮箱收到非首条消息",
					"self", m.cellID.ShortString(),
					"src", req.SrcCellID.ShortString(),
					"messageID", req.FirstMessageID)
			}
			return nil
		}
		mailbox = m.GetOrCreateMailbox(req.SrcCellID)
	}

	m.applyReliableIncomingMessages(mc, mailbox, &req)
	return nil
}

func (m *Manager) onSendMessages(mc interfaces.MutationContext) error {
	var req SendMessagesRequest
	if err := req.Unmarshal(mc.Payload()); err != nil {
		return err
	}

	mailbox, err := m.GetMailbox(req.SrcCellID)
	if err != nil {
		return err
	}

	for _, msg := range req.Messages {
		if m.mutationLogging() {
			log.Debug("应用不可靠消息",
				"src", mailbox.cellID.ShortString(),
				"self", m.cellID.ShortString(),
				"type", msg.Type())
		}
		m.applyMessage(mc, msg)
		m.metrics.incApplied(kindUnreliable)
	}
	return nil
}

func (m *Manager) onRegisterMailbox(mc interfaces.MutationContext) error {
	var req pb.RegisterMailbox
	if err := unmarshalProto(mc.Payload(), &req); err != nil {
		return err
	}
	cellID := types.CellID(req.GetCellId())

	if m.IsCellRemoved(cellID) {
		if m.mutationLogging() {
			log.Info("邮箱已被注销，忽略注册",
				"self", m.cellID.ShortString(),
				"cell", cellID.ShortString())
		}
		return nil
	}

	m.GetOrCreateMailbox(cellID)
	return nil
}

func (m *Manager) onUnregisterMailbox(mc interfaces.MutationContext) error {
	var req pb.UnregisterMailbox
	if err := unmarshalProto(mc.Payload(), &req); err != nil {
		return err
	}
	cellID := types.CellID(req.GetCellId())

	if m.FindMailbox(cellID) != nil {
		m.RemoveMailbox(mc, cellID)
	}
	return nil
}

// ============================================================================
//                              应用入站消息
// ============================================================================

func (m *Manager) applyReliableIncomingMessages(mc interfaces.MutationContext, mailbox *Mailbox, req *PostMessagesRequest) {
	for i, msg := range req.Messages {
		id := req.FirstMessageID + types.MessageID(i)
		next := mailbox.nextPersistentIncomingMessageID

		if id < next {
			if m.mutationLogging() {
				log.Debug("跳过已应用的消息",
					"src", mailbox.cellID.ShortString(),
					"self", m.cellID.ShortString(),
					"messageID", id,
					"next", next)
			}
			continue
		}

		if id > next {
			if m.mutationLogging() {
				log.Error("收到乱序消息",
					"src", mailbox.cellID.ShortString(),
					"self", m.cellID.ShortString(),
					"expected", next,
					"actual", id,
					"type", msg.Type())
			}
			m.metrics.incDesync()
			m.setMailboxDisconnected(mailbox)
			return
		}

		if m.mutationLogging() {
			log.Debug("应用可靠消息",
				"src", mailbox.cellID.ShortString(),
				"self", m.cellID.ShortString(),
				"messageID", id,
				"type", msg.Type())
		}

		m.applyMessage(mc, msg)
		m.metrics.incApplied(kindReliable)

		mailbox.nextPersistentIncomingMessageID = id + 1
		mailbox.updateRuntimeData()
		m.flushSyncRequests(mailbox)
	}
}

// applyMessage 在嵌套变更上下文中分发消息
func (m *Manager) applyMessage(mc interfaces.MutationContext, msg *types.EncapsulatedMessage) {
	trace := msg.Trace()
	if m.automaton.IsLeader() {
		trace = trace.Child()
	}

	nested := mc.Nested(msg.Type(), msg.Data(), trace)
	if err := m.registry.Dispatch(nested); err != nil && m.mutationLogging() {
		log.Error("消息处理失败",
			"self", m.cellID.ShortString(),
			"type", msg.Type(),
			"error", err)
	}
}
