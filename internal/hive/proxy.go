package hive

import (
	"context"
	"fmt"

	"github.com/dep2p/go-hive/pkg/interfaces"
	"github.com/dep2p/go-hive/pkg/types"
)

// ServiceName Hive RPC 服务名
const ServiceName = "hive"

// RPC 方法
const (
	MethodPing           = "Ping"
	MethodSyncCells      = "SyncCells"
	MethodPostMessages   = "PostMessages"
	MethodSendMessages   = "SendMessages"
	MethodSyncWithOthers = "SyncWithOthers"
)

// Proxy Hive 服务客户端
type Proxy struct {
	channel interfaces.Channel
}

// NewProxy 基于通道创建客户端
func NewProxy(ch interfaces.Channel) *Proxy {
	return &Proxy{channel: ch}
}

type marshaler interface {
	Marshal() ([]byte, error)
}

type unmarshaler interface {
	Unmarshal(b []byte) error
}

func (p *Proxy) call(ctx context.Context, method string, req marshaler, rsp unmarshaler) error {
	reqBody, err := req.Marshal()
	if err != nil {
		return types.WrapError(types.CodeInvalidMessage, err, "cannot encode %s request", method)
	}
	body, err := p.channel.Invoke(ctx, ServiceName, method, reqBody)
	if err != nil {
		return err
	}
	if rsp == nil {
		return nil
	}
	if err := rsp.Unmarshal(body); err != nil {
		return fmt.Errorf("malformed %s response: %w", method, err)
	}
	return nil
}

// Ping 探测对端并获取其游标
func (p *Proxy) Ping(ctx context.Context, req *PingRequest) (*PingResponse, error) {
	rsp := &PingResponse{}
	if err := p.call(ctx, MethodPing, req, rsp); err != nil {
		return nil, err
	}
	return rsp, nil
}

// SyncCells 目录同步
func (p *Proxy) SyncCells(ctx context.Context, req *SyncCellsRequest) (*SyncCellsResponse, error) {
	rsp := &SyncCellsResponse{}
	if err := p.call(ctx, MethodSyncCells, req, rsp); err != nil {
		return nil, err
	}
	return rsp, nil
}

// PostMessages 可靠投递
func (p *Proxy) PostMessages(ctx context.Context, req *PostMessagesRequest) (*PostMessagesResponse, error) {
	rsp := &PostMessagesResponse{}
	if err := p.call(ctx, MethodPostMessages, req, rsp); err != nil {
		return nil, err
	}
	return rsp, nil
}

// SendMessages 不可靠投递，对端应用后返回
func (p *Proxy) SendMessages(ctx context.Context, req *SendMessagesRequest) error {
	return p.call(ctx, MethodSendMessages, req, nil)
}

// SyncWithOthers 请求对端与 srcCellIDs 同步
func (p *Proxy) SyncWithOthers(ctx context.Context, req *SyncWithOthersRequest) error {
	return p.call(ctx, MethodSyncWithOthers, req, nil)
}
