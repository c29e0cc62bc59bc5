package hive

import (
	"fmt"

	"google.golang.org/protobuf/proto"

	"github.com/dep2p/go-hive/pkg/interfaces"
	pb "github.com/dep2p/go-hive/pkg/lib/proto/hive"
	"github.com/dep2p/go-hive/pkg/types"
)

// 快照分段:
//
//	HiveManager.Keys   (优先级 0)  pb.SnapshotKeys
//	HiveManager.Values (优先级 1)  pb.SnapshotValues
const (
	sectionKeys   = "HiveManager.Keys"
	sectionValues = "HiveManager.Values"

	priorityKeys   = 0
	priorityValues = 1
)

// SnapshotSections 实现 interfaces.AutomatonPart
func (m *Manager) SnapshotSections() []interfaces.SnapshotSection {
	return []interfaces.SnapshotSection{
		{Name: sectionKeys, Priority: priorityKeys, Save: m.saveKeys, Load: m.loadKeys},
		{Name: sectionValues, Priority: priorityValues, Save: m.saveValues, Load: m.loadValues},
	}
}

func (m *Manager) saveKeys() ([]byte, error) {
	return proto.Marshal(&pb.SnapshotKeys{CellIds: cellIDsToProto(m.Mailboxes())})
}

func (m *Manager) loadKeys(b []byte) error {
	var keys pb.SnapshotKeys
	if err := unmarshalProto(b, &keys); err != nil {
		return err
	}

	for _, id := range cellIDsFromProto(keys.GetCellIds()) {
		if id == "" {
			return fmt.Errorf("hive: empty mailbox id in snapshot")
		}
		if _, ok := m.mailboxes[id]; ok {
			return fmt.Errorf("hive: duplicate mailbox %s in snapshot", id)
		}
		m.mailboxes[id] = newMailbox(id)
	}
	return nil
}

func (m *Manager) saveValues() ([]byte, error) {
	values := &pb.SnapshotValues{}
	for _, id := range m.Mailboxes() {
		mailbox := m.mailboxes[id]
		values.Mailboxes = append(values.Mailboxes, &pb.Mailbox{
			CellId:                          string(id),
			FirstOutcomingMessageId:         mailbox.firstOutcomingMessageID,
			OutcomingMessages:               messagesToProto(mailbox.outcomingMessages),
			NextPersistentIncomingMessageId: mailbox.nextPersistentIncomingMessageID,
		})
	}

	removed := make([]types.CellID, 0, len(m.removedCellIDs))
	for id := range m.removedCellIDs {
		removed = append(removed, id)
	}
	sortCellIDs(removed)
	values.RemovedCellIds = cellIDsToProto(removed)

	return proto.Marshal(values)
}

// loadValues 整段解码并校验成功后才修改状态
func (m *Manager) loadValues(b []byte) error {
	var values pb.SnapshotValues
	if err := unmarshalProto(b, &values); err != nil {
		return err
	}

	for _, mb := range values.GetMailboxes() {
		if _, ok := m.mailboxes[types.CellID(mb.GetCellId())]; !ok {
			return fmt.Errorf("hive: snapshot values reference unknown mailbox %s", mb.GetCellId())
		}
	}
	removed := cellIDsFromProto(values.GetRemovedCellIds())
	for _, id := range removed {
		if id == "" {
			return fmt.Errorf("hive: empty removed cell id in snapshot")
		}
	}

	for _, mb := range values.GetMailboxes() {
		m.loadMailbox(mb)
	}
	for _, id := range removed {
		m.removedCellIDs[id] = struct{}{}
	}

	m.runtimeMu.Lock()
	m.runtimeData = make(map[types.CellID]*runtimeData, len(m.mailboxes))
	for id, mailbox := range m.mailboxes {
		mailbox.updateRuntimeData()
		m.runtimeData[id] = mailbox.runtime
	}
	m.runtimeMu.Unlock()

	m.metrics.setMailboxCount(len(m.mailboxes))
	return nil
}

func (m *Manager) loadMailbox(mb *pb.Mailbox) {
	mailbox := m.mailboxes[types.CellID(mb.GetCellId())]
	mailbox.firstOutcomingMessageID = mb.GetFirstOutcomingMessageId()
	mailbox.outcomingMessages = messagesFromProto(mb.GetOutcomingMessages())
	mailbox.nextPersistentIncomingMessageID = mb.GetNextPersistentIncomingMessageId()
}
