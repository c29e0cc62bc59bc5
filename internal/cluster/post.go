package cluster

import (
	"google.golang.org/protobuf/proto"

	"github.com/dep2p/go-hive/pkg/interfaces"
	pb "github.com/dep2p/go-hive/pkg/lib/proto/hive"
	"github.com/dep2p/go-hive/pkg/types"
)

// mutationPost 应用层变更：在变更内可靠投递一条消息，载荷为 pb.PostRequest
const mutationPost = "cluster.Post"

func encodePost(dsts []types.CellID, msg *types.EncapsulatedMessage) ([]byte, error) {
	req := &pb.PostRequest{
		DstCellIds: make([]string, 0, len(dsts)),
		Type:       msg.Type(),
		Data:       msg.Data(),
	}
	for _, id := range dsts {
		req.DstCellIds = append(req.DstCellIds, string(id))
	}
	return proto.Marshal(req)
}

func decodePost(b []byte, trace types.TraceContext) ([]types.CellID, *types.EncapsulatedMessage, error) {
	var req pb.PostRequest
	if err := proto.Unmarshal(b, &req); err != nil {
		return nil, nil, types.WrapError(types.CodeInvalidMessage, err, "cluster: malformed post")
	}

	dsts := make([]types.CellID, 0, len(req.GetDstCellIds()))
	for _, id := range req.GetDstCellIds() {
		dsts = append(dsts, types.CellID(id))
	}
	return dsts, types.NewEncapsulatedMessage(req.GetType(), req.GetData(), trace), nil
}

// applyPost 在变更中把消息交给 Hive 可靠投递
func (c *Cell) applyPost(mc interfaces.MutationContext) error {
	dsts, msg, err := decodePost(mc.Payload(), mc.Trace())
	if err != nil {
		return err
	}
	c.Manager.PostReliable(mc, dsts, msg)
	return nil
}
