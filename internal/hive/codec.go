package hive

import (
	"google.golang.org/protobuf/proto"

	pb "github.com/dep2p/go-hive/pkg/lib/proto/hive"
	"github.com/dep2p/go-hive/pkg/types"
)

// RPC 与变更载荷的编码定义在 pkg/lib/proto/hive/hive.proto，
// 本文件只负责 pb 类型与领域类型之间的转换。

// unmarshalProto 解码，失败时返回 CodeInvalidMessage
func unmarshalProto(b []byte, msg proto.Message) error {
	if err := proto.Unmarshal(b, msg); err != nil {
		return types.WrapError(types.CodeInvalidMessage, err,
			"hive: malformed %s", msg.ProtoReflect().Descriptor().Name())
	}
	return nil
}

// ============================================================================
//                              公共结构
// ============================================================================

func traceToProto(t types.TraceContext) *pb.TraceContext {
	if t.IsEmpty() {
		return nil
	}
	return &pb.TraceContext{
		TraceId:      t.TraceID,
		SpanId:       t.SpanID,
		ParentSpanId: t.ParentSpanID,
		Sampled:      t.Sampled,
	}
}

func traceFromProto(t *pb.TraceContext) types.TraceContext {
	return types.TraceContext{
		TraceID:      t.GetTraceId(),
		SpanID:       t.GetSpanId(),
		ParentSpanID: t.GetParentSpanId(),
		Sampled:      t.GetSampled(),
	}
}

func messagesToProto(msgs []*types.EncapsulatedMessage) []*pb.EncapsulatedMessage {
	out := make([]*pb.EncapsulatedMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, &pb.EncapsulatedMessage{
			Type:  m.Type(),
			Data:  m.Data(),
			Trace: traceToProto(m.Trace()),
		})
	}
	return out
}

func messagesFromProto(msgs []*pb.EncapsulatedMessage) []*types.EncapsulatedMessage {
	if len(msgs) == 0 {
		return nil
	}
	out := make([]*types.EncapsulatedMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, types.NewEncapsulatedMessage(m.GetType(), m.GetData(), traceFromProto(m.GetTrace())))
	}
	return out
}

func cellIDsToProto(ids []types.CellID) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

func cellIDsFromProto(ids []string) []types.CellID {
	if len(ids) == 0 {
		return nil
	}
	out := make([]types.CellID, len(ids))
	for i, id := range ids {
		out[i] = types.CellID(id)
	}
	return out
}

// ============================================================================
//                              RPC 消息
// ============================================================================

// PingRequest Ping 请求
type PingRequest struct {
	SrcCellID types.CellID
}

// Marshal 编码
func (r *PingRequest) Marshal() ([]byte, error) {
	return proto.Marshal(&pb.PingRequest{SrcCellId: string(r.SrcCellID)})
}

// Unmarshal 解码
func (r *PingRequest) Unmarshal(b []byte) error {
	var msg pb.PingRequest
	if err := unmarshalProto(b, &msg); err != nil {
		return err
	}
	r.SrcCellID = types.CellID(msg.GetSrcCellId())
	return nil
}

// PingResponse Ping 回复
//
// 对端没有请求方的邮箱时两个字段都不存在。
type PingResponse struct {
	HasLastOutcomingMessageID bool
	LastOutcomingMessageID    types.MessageID

	HasNextPersistentIncomingMessageID bool
	NextPersistentIncomingMessageID    types.MessageID
}

// Marshal 编码
func (r *PingResponse) Marshal() ([]byte, error) {
	var msg pb.PingResponse
	if r.HasLastOutcomingMessageID {
		msg.LastOutcomingMessageId = proto.Int64(r.LastOutcomingMessageID)
	}
	if r.HasNextPersistentIncomingMessageID {
		msg.NextPersistentIncomingMessageId = proto.Int64(r.NextPersistentIncomingMessageID)
	}
	return proto.Marshal(&msg)
}

// Unmarshal 解码
func (r *PingResponse) Unmarshal(b []byte) error {
	var msg pb.PingResponse
	if err := unmarshalProto(b, &msg); err != nil {
		return err
	}
	*r = PingResponse{
		HasLastOutcomingMessageID:          msg.LastOutcomingMessageId != nil,
		LastOutcomingMessageID:             msg.GetLastOutcomingMessageId(),
		HasNextPersistentIncomingMessageID: msg.NextPersistentIncomingMessageId != nil,
		NextPersistentIncomingMessageID:    msg.GetNextPersistentIncomingMessageId(),
	}
	return nil
}

// SyncCellsRequest 目录同步请求
type SyncCellsRequest struct {
	KnownCells []types.CellInfo
}

// Marshal 编码
func (r *SyncCellsRequest) Marshal() ([]byte, error) {
	msg := &pb.SyncCellsRequest{KnownCells: make([]*pb.CellInfo, 0, len(r.KnownCells))}
	for _, c := range r.KnownCells {
		msg.KnownCells = append(msg.KnownCells, &pb.CellInfo{
			CellId:        string(c.CellID),
			ConfigVersion: int64(c.ConfigVersion),
		})
	}
	return proto.Marshal(msg)
}

// Unmarshal 解码
func (r *SyncCellsRequest) Unmarshal(b []byte) error {
	var msg pb.SyncCellsRequest
	if err := unmarshalProto(b, &msg); err != nil {
		return err
	}
	r.KnownCells = nil
	for _, c := range msg.GetKnownCells() {
		r.KnownCells = append(r.KnownCells, types.CellInfo{
			CellID:        types.CellID(c.GetCellId()),
			ConfigVersion: int(c.GetConfigVersion()),
		})
	}
	return nil
}

// SyncCellsResponse 目录同步回复
type SyncCellsResponse struct {
	CellsToReconfigure []types.CellDescriptor
	CellsToUnregister  []types.CellID
}

// Marshal 编码
func (r *SyncCellsResponse) Marshal() ([]byte, error) {
	msg := &pb.SyncCellsResponse{
		CellsToReconfigure: make([]*pb.CellDescriptor, 0, len(r.CellsToReconfigure)),
		CellsToUnregister:  cellIDsToProto(r.CellsToUnregister),
	}
	for _, d := range r.CellsToReconfigure {
		msg.CellsToReconfigure = append(msg.CellsToReconfigure, &pb.CellDescriptor{
			CellId:        string(d.CellID),
			ConfigVersion: int64(d.ConfigVersion),
			Address:       d.Address,
		})
	}
	return proto.Marshal(msg)
}

// Unmarshal 解码
func (r *SyncCellsResponse) Unmarshal(b []byte) error {
	var msg pb.SyncCellsResponse
	if err := unmarshalProto(b, &msg); err != nil {
		return err
	}
	r.CellsToReconfigure = nil
	for _, d := range msg.GetCellsToReconfigure() {
		r.CellsToReconfigure = append(r.CellsToReconfigure, types.CellDescriptor{
			CellID:        types.CellID(d.GetCellId()),
			ConfigVersion: int(d.GetConfigVersion()),
			Address:       d.GetAddress(),
		})
	}
	r.CellsToUnregister = cellIDsFromProto(msg.GetCellsToUnregister())
	return nil
}

// PostMessagesRequest 可靠投递请求
type PostMessagesRequest struct {
	SrcCellID      types.CellID
	FirstMessageID types.MessageID
	Messages       []*types.EncapsulatedMessage
}

// Marshal 编码
func (r *PostMessagesRequest) Marshal() ([]byte, error) {
	return proto.Marshal(&pb.PostMessagesRequest{
		SrcCellId:      string(r.SrcCellID),
		FirstMessageId: r.FirstMessageID,
		Messages:       messagesToProto(r.Messages),
	})
}

// Unmarshal 解码
func (r *PostMessagesRequest) Unmarshal(b []byte) error {
	var msg pb.PostMessagesRequest
	if err := unmarshalProto(b, &msg); err != nil {
		return err
	}
	r.SrcCellID = types.CellID(msg.GetSrcCellId())
	r.FirstMessageID = msg.GetFirstMessageId()
	r.Messages = messagesFromProto(msg.GetMessages())
	return nil
}

// PostMessagesResponse 可靠投递回复
type PostMessagesResponse struct {
	NextTransientIncomingMessageID types.MessageID

	HasNextPersistentIncomingMessageID bool
	NextPersistentIncomingMessageID    types.MessageID
}

// Marshal 编码
func (r *PostMessagesResponse) Marshal() ([]byte, error) {
	msg := pb.PostMessagesResponse{NextTransientIncomingMessageId: r.NextTransientIncomingMessageID}
	if r.HasNextPersistentIncomingMessageID {
		msg.NextPersistentIncomingMessageId = proto.Int64(r.NextPersistentIncomingMessageID)
	}
	return proto.Marshal(&msg)
}

// Unmarshal 解码
func (r *PostMessagesResponse) Unmarshal(b []byte) error {
	var msg pb.PostMessagesResponse
	if err := unmarshalProto(b, &msg); err != nil {
		return err
	}
	*r = PostMessagesResponse{
		NextTransientIncomingMessageID:     msg.GetNextTransientIncomingMessageId(),
		HasNextPersistentIncomingMessageID: msg.NextPersistentIncomingMessageId != nil,
		NextPersistentIncomingMessageID:    msg.GetNextPersistentIncomingMessageId(),
	}
	return nil
}

// SendMessagesRequest 不可靠投递请求
type SendMessagesRequest struct {
	SrcCellID types.CellID
	Messages  []*types.EncapsulatedMessage
}

// Marshal 编码
func (r *SendMessagesRequest) Marshal() ([]byte, error) {
	return proto.Marshal(&pb.SendMessagesRequest{
		SrcCellId: string(r.SrcCellID),
		Messages:  messagesToProto(r.Messages),
	})
}

// Unmarshal 解码
func (r *SendMessagesRequest) Unmarshal(b []byte) error {
	var msg pb.SendMessagesRequest
	if err := unmarshalProto(b, &msg); err != nil {
		return err
	}
	r.SrcCellID = types.CellID(msg.GetSrcCellId())
	r.Messages = messagesFromProto(msg.GetMessages())
	return nil
}

// SyncWithOthersRequest 批量同步请求
type SyncWithOthersRequest struct {
	SrcCellIDs []types.CellID
}

// Marshal 编码
func (r *SyncWithOthersRequest) Marshal() ([]byte, error) {
	return proto.Marshal(&pb.SyncWithOthersRequest{SrcCellIds: cellIDsToProto(r.SrcCellIDs)})
}

// Unmarshal 解码
func (r *SyncWithOthersRequest) Unmarshal(b []byte) error {
	var msg pb.SyncWithOthersRequest
	if err := unmarshalProto(b, &msg); err != nil {
		return err
	}
	r.SrcCellIDs = cellIDsFromProto(msg.GetSrcCellIds())
	return nil
}
