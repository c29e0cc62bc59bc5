package hive

import (
	"context"

	"github.com/dep2p/go-hive/pkg/lib/future"
	"github.com/dep2p/go-hive/pkg/types"
)

// service Hive RPC 服务端
type service struct {
	m *Manager
}

func (s *service) Name() string {
	return ServiceName
}

func (s *service) Handle(ctx context.Context, method string, body []byte) ([]byte, error) {
	rsp, err := s.handle(ctx, method, body)
	s.m.metrics.incRequest(method, err)
	return rsp, err
}

func (s *service) handle(ctx context.Context, method string, body []byte) ([]byte, error) {
	switch method {
	case MethodPing:
		return s.ping(body)
	case MethodSyncCells:
		return s.syncCells(body)
	case MethodPostMessages:
		return s.postMessages(ctx, body)
	case MethodSendMessages:
		return s.sendMessages(ctx, body)
	case MethodSyncWithOthers:
		return s.syncWithOthers(ctx, body)
	default:
		return nil, types.NewError(types.CodeNoSuchMethod, "no such method %s.%s", ServiceName, method)
	}
}

// ping 不进入状态机线程，只读取运行时数据
func (s *service) ping(body []byte) ([]byte, error) {
	var req PingRequest
	if err := req.Unmarshal(body); err != nil {
		return nil, err
	}

	m := s.m
	if !m.automaton.IsLeader() {
		return nil, errNotLeader(m.cellID)
	}

	var rsp PingResponse
	if rd := m.findRuntimeData(req.SrcCellID); rd != nil {
		rsp.HasLastOutcomingMessageID = true
		rsp.LastOutcomingMessageID = rd.lastOutcomingMessageID.Load()
		rsp.HasNextPersistentIncomingMessageID = true
		rsp.NextPersistentIncomingMessageID = rd.nextPersistentIncomingMessageID.Load()
	}
	return rsp.Marshal()
}

func (s *service) syncCells(body []byte) ([]byte, error) {
	var req SyncCellsRequest
	if err := req.Unmarshal(body); err != nil {
		return nil, err
	}

	result := s.m.SyncCells(req.KnownCells)
	rsp := SyncCellsResponse{
		CellsToReconfigure: result.CellsToReconfigure,
		CellsToUnregister:  result.CellsToUnregister,
	}
	return rsp.Marshal()
}

func (s *service) postMessages(ctx context.Context, body []byte) ([]byte, error) {
	var req PostMessagesRequest
	if err := req.Unmarshal(body); err != nil {
		return nil, err
	}

	rsp, err := runOnAutomaton(ctx, s.m, func() (*PostMessagesResponse, error) {
		return s.m.handlePostMessages(&req, body)
	})
	if err != nil {
		return nil, err
	}
	return rsp.Marshal()
}

// sendMessages 提交 SendMessages 变更，应用完成后回复
func (s *service) sendMessages(ctx context.Context, body []byte) ([]byte, error) {
	var req SendMessagesRequest
	if err := req.Unmarshal(body); err != nil {
		return nil, err
	}

	m := s.m
	commit, err := runOnAutomaton(ctx, m, func() (*future.Future[struct{}], error) {
		if !m.automaton.IsLeader() {
			return nil, errNotLeader(m.cellID)
		}
		log.Debug("提交不可靠入站消息",
			"src", req.SrcCellID.ShortString(),
			"self", m.cellID.ShortString(),
			"count", len(req.Messages))
		return m.automaton.CommitMutation(mutationSendMessages, body), nil
	})
	if err != nil {
		return nil, err
	}

	if _, err := commit.Get(ctx); err != nil {
		return nil, err
	}
	return nil, nil
}

func (s *service) syncWithOthers(ctx context.Context, body []byte) ([]byte, error) {
	var req SyncWithOthersRequest
	if err := req.Unmarshal(body); err != nil {
		return nil, err
	}

	if !s.m.automaton.IsLeader() {
		return nil, errNotLeader(s.m.cellID)
	}

	if err := s.m.SyncWithOthers(ctx, req.SrcCellIDs); err != nil {
		return nil, err
	}
	return nil, nil
}
