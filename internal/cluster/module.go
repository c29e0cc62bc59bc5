package cluster

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/dep2p/go-hive/internal/config"
	"github.com/dep2p/go-hive/internal/core/storage"
	"github.com/dep2p/go-hive/internal/core/transport"
)

// SetupFunc 单元启动前的初始化回调
type SetupFunc func(cell *Cell) error

// Params Cluster 模块依赖参数
type Params struct {
	fx.In

	UnifiedCfg *config.Config
	Network    *transport.Network
	Snapshots  *storage.SnapshotStore `optional:"true"`
	Registerer prometheus.Registerer  `optional:"true"`
	Setup      SetupFunc              `optional:"true"`
}

// Module 返回 Cluster Fx 模块
//
// 提供:
//   - *Cluster: 进程内多单元集群
//
// 生命周期:
//   - OnStart: 所有单元成为领导者
//   - OnStop: 关闭集群
func Module() fx.Option {
	return fx.Module("cluster",
		fx.Provide(ProvideCluster),
		fx.Invoke(registerLifecycle),
	)
}

// ProvideCluster 创建集群
func ProvideCluster(p Params) (*Cluster, error) {
	opts := Options{
		Config:     p.UnifiedCfg,
		Network:    p.Network,
		Registerer: p.Registerer,
		Setup:      p.Setup,
	}
	if p.Snapshots != nil {
		opts.Snapshots = p.Snapshots
		opts.StableIDs = !p.UnifiedCfg.Storage.InMemory
	}
	return New(opts)
}

func registerLifecycle(lc fx.Lifecycle, c *Cluster) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return c.Start(ctx)
		},
		OnStop: func(_ context.Context) error {
			return c.Close()
		},
	})
}
