package interfaces

import "context"

// Channel 指向某个单元领导者的 RPC 通道
type Channel interface {
	// Invoke 调用远端服务方法
	//
	// ctx 取消或超时时返回错误；远端返回的错误原样透传。
	Invoke(ctx context.Context, service, method string, body []byte) ([]byte, error)

	// Address 通道目标地址
	Address() string
}

// Service RPC 服务
type Service interface {
	// Name 服务名
	Name() string

	// Handle 处理请求
	Handle(ctx context.Context, method string, body []byte) ([]byte, error)
}
