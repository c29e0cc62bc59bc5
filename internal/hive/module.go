package hive

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/dep2p/go-hive/internal/config"
	"github.com/dep2p/go-hive/pkg/interfaces"
)

// Params Hive 模块依赖参数
type Params struct {
	fx.In

	UnifiedCfg *config.Config `optional:"true"`
	Automaton  interfaces.Automaton
	Directory  interfaces.CellDirectory
	Registry   *Registry             `optional:"true"`
	Registerer prometheus.Registerer `optional:"true"`
}

// Result Hive 模块提供的结果
type Result struct {
	fx.Out

	Manager *Manager
	Service interfaces.Service `group:"services"`
}

// Module 返回 Hive Fx 模块
//
// 提供:
//   - *Manager: 挂载在状态机上的 Hive 管理器
//   - interfaces.Service: RPC 服务（"services" 组）
func Module() fx.Option {
	return fx.Module("hive",
		fx.Provide(ProvideManager),
	)
}

// ProvideManager 创建管理器
func ProvideManager(p Params) (Result, error) {
	cfg := config.DefaultHiveConfig()
	if p.UnifiedCfg != nil {
		cfg = p.UnifiedCfg.Hive
	}

	v := config.NewValidator()
	v.ValidateHive(&cfg)
	if errs := v.Errors(); errs.HasErrors() {
		return Result{}, errs
	}

	opts := []Option{}
	if p.Registerer != nil {
		opts = append(opts, WithRegisterer(p.Registerer))
	}

	m := NewManager(cfg, p.Automaton, p.Directory, p.Registry, opts...)
	return Result{Manager: m, Service: m.Service()}, nil
}
