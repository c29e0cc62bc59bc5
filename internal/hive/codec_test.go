package hive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"

	pb "github.com/dep2p/go-hive/pkg/lib/proto/hive"
	"github.com/dep2p/go-hive/pkg/types"
)

func TestPostMessagesRequest_PreservesMessages(t *testing.T) {
	trace := types.NewTraceContext().Child()
	req := &PostMessagesRequest{
		SrcCellID:      types.NewCellID(),
		FirstMessageID: 42,
		Messages: []*types.EncapsulatedMessage{
			types.NewEncapsulatedMessage("a.Type", []byte("payload"), trace),
			types.NewEncapsulatedMessage("b.Type", nil, types.TraceContext{}),
		},
	}

	b, err := req.Marshal()
	require.NoError(t, err)

	var got PostMessagesRequest
	require.NoError(t, got.Unmarshal(b))

	assert.Equal(t, req.SrcCellID, got.SrcCellID)
	assert.Equal(t, types.MessageID(42), got.FirstMessageID)
	require.Len(t, got.Messages, 2)
	for i := range req.Messages {
		assert.True(t, req.Messages[i].Equal(got.Messages[i]), "message %d", i)
	}
	assert.Equal(t, trace, got.Messages[0].Trace())
	assert.True(t, got.Messages[1].Trace().IsEmpty())
}

func TestPingResponse_OptionalFields(t *testing.T) {
	var empty PingResponse
	b, err := empty.Marshal()
	require.NoError(t, err)
	assert.Empty(t, b)

	var got PingResponse
	require.NoError(t, got.Unmarshal(nil))
	assert.False(t, got.HasLastOutcomingMessageID)
	assert.False(t, got.HasNextPersistentIncomingMessageID)

	// 零值也要区分“存在”
	rsp := PingResponse{
		HasLastOutcomingMessageID:          true,
		LastOutcomingMessageID:             -1,
		HasNextPersistentIncomingMessageID: true,
		NextPersistentIncomingMessageID:    0,
	}
	b, err = rsp.Marshal()
	require.NoError(t, err)
	require.NoError(t, got.Unmarshal(b))
	assert.Equal(t, rsp, got)
}

func TestSyncCellsResponse_Descriptors(t *testing.T) {
	rsp := &SyncCellsResponse{
		CellsToReconfigure: []types.CellDescriptor{
			{CellID: types.NewCellID(), ConfigVersion: 3, Address: "cell-a"},
			{CellID: types.NewCellID(), ConfigVersion: -1},
		},
		CellsToUnregister: []types.CellID{types.NewCellID()},
	}

	b, err := rsp.Marshal()
	require.NoError(t, err)

	var got SyncCellsResponse
	require.NoError(t, got.Unmarshal(b))
	assert.Equal(t, rsp.CellsToReconfigure, got.CellsToReconfigure)
	assert.Equal(t, rsp.CellsToUnregister, got.CellsToUnregister)
}

func TestUnmarshal_SkipsUnknownFields(t *testing.T) {
	req := &PingRequest{SrcCellID: types.NewCellID()}
	b, err := req.Marshal()
	require.NoError(t, err)
	b = protowire.AppendTag(b, 99, protowire.VarintType)
	b = protowire.AppendVarint(b, 7)

	var got PingRequest
	require.NoError(t, got.Unmarshal(b))
	assert.Equal(t, req.SrcCellID, got.SrcCellID)
}

func TestUnmarshal_Malformed(t *testing.T) {
	// 长度前缀超出剩余字节
	b := protowire.AppendTag(nil, 1, protowire.BytesType)
	b = protowire.AppendVarint(b, 100)

	var req PostMessagesRequest
	err := req.Unmarshal(b)
	assert.ErrorIs(t, err, types.ErrInvalidMessage)
}

func TestPostMessagesRequest_MatchesWireSchema(t *testing.T) {
	req := &PostMessagesRequest{
		SrcCellID:      types.NewCellID(),
		FirstMessageID: 7,
		Messages:       []*types.EncapsulatedMessage{types.NewEncapsulatedMessage("a.Type", []byte("x"), types.TraceContext{})},
	}
	b, err := req.Marshal()
	require.NoError(t, err)

	var msg pb.PostMessagesRequest
	require.NoError(t, proto.Unmarshal(b, &msg))
	assert.Equal(t, string(req.SrcCellID), msg.GetSrcCellId())
	assert.Equal(t, int64(7), msg.GetFirstMessageId())
	require.Len(t, msg.GetMessages(), 1)
	assert.Equal(t, "a.Type", msg.GetMessages()[0].GetType())
	assert.Nil(t, msg.GetMessages()[0].GetTrace())
}
