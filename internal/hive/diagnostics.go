package hive

import (
	"context"

	"github.com/dep2p/go-hive/pkg/types"
)

// MailboxDiagnostics 邮箱只读视图
type MailboxDiagnostics struct {
	CellID                          types.CellID    `json:"cell_id"`
	Connected                       bool            `json:"connected"`
	AcknowledgeInProgress           bool            `json:"acknowledge_in_progress"`
	PostInProgress                  bool            `json:"post_in_progress"`
	FirstOutcomingMessageID         types.MessageID `json:"first_outcoming_message_id"`
	OutcomingMessageCount           int             `json:"outcoming_message_count"`
	NextPersistentIncomingMessageID types.MessageID `json:"next_persistent_incoming_message_id"`
	NextTransientIncomingMessageID  types.MessageID `json:"next_transient_incoming_message_id"`
	FirstInFlightOutcomingMessageID types.MessageID `json:"first_in_flight_outcoming_message_id"`
	InFlightOutcomingMessageCount   int             `json:"in_flight_outcoming_message_count"`
	SyncRequestCount                int             `json:"sync_request_count"`
	AckWaiterCount                  int             `json:"ack_waiter_count"`
}

// Diagnostics 单元诊断信息
type Diagnostics struct {
	CellID         types.CellID         `json:"cell_id"`
	Leader         bool                 `json:"leader"`
	Mailboxes      []MailboxDiagnostics `json:"mailboxes"`
	RemovedCellIDs []types.CellID       `json:"removed_cell_ids,omitempty"`
}

// Diagnostics 在状态机线程中采集诊断信息（任意线程）
func (m *Manager) Diagnostics(ctx context.Context) (*Diagnostics, error) {
	return runOnAutomaton(ctx, m, func() (*Diagnostics, error) {
		return m.buildDiagnostics(), nil
	})
}

// FindMailboxDiagnostics 采集单个邮箱（任意线程）
func (m *Manager) FindMailboxDiagnostics(ctx context.Context, cellID types.CellID) (MailboxDiagnostics, bool, error) {
	d, err := m.Diagnostics(ctx)
	if err != nil {
		return MailboxDiagnostics{}, false, err
	}
	for _, mb := range d.Mailboxes {
		if mb.CellID == cellID {
			return mb, true, nil
		}
	}
	return MailboxDiagnostics{}, false, nil
}

func (m *Manager) buildDiagnostics() *Diagnostics {
	d := &Diagnostics{
		CellID:    m.cellID,
		Leader:    m.automaton.IsLeader(),
		Mailboxes: make([]MailboxDiagnostics, 0, len(m.mailboxes)),
	}

	for _, id := range m.Mailboxes() {
		mailbox := m.mailboxes[id]
		d.Mailboxes = append(d.Mailboxes, MailboxDiagnostics{
			CellID:                          id,
			Connected:                       mailbox.connected,
			AcknowledgeInProgress:           mailbox.acknowledgeInProgress,
			PostInProgress:                  mailbox.postInProgress,
			FirstOutcomingMessageID:         mailbox.firstOutcomingMessageID,
			OutcomingMessageCount:           len(mailbox.outcomingMessages),
			NextPersistentIncomingMessageID: mailbox.nextPersistentIncomingMessageID,
			NextTransientIncomingMessageID:  mailbox.nextTransientIncomingMessageID,
			FirstInFlightOutcomingMessageID: mailbox.firstInFlightOutcomingMessageID,
			InFlightOutcomingMessageCount:   mailbox.inFlightOutcomingMessageCount,
			SyncRequestCount:                len(mailbox.syncRequests),
			AckWaiterCount:                  len(mailbox.ackWaiters),
		})
	}

	for id := range m.removedCellIDs {
		d.RemovedCellIDs = append(d.RemovedCellIDs, id)
	}
	sortCellIDs(d.RemovedCellIDs)
	return d
}
