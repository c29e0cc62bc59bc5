package transport

import (
	"go.uber.org/fx"

	"github.com/dep2p/go-hive/internal/config"
)

// Module 返回 transport Fx 模块
//
// 提供:
//   - *Network: 进程内 RPC 网络
func Module() fx.Option {
	return fx.Module("transport",
		fx.Provide(ProvideNetwork),
	)
}

// ProvideNetwork 根据统一配置创建网络
func ProvideNetwork(cfg *config.Config) *Network {
	return NewNetwork(WithLatency(cfg.Cluster.NetworkLatency))
}
