package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/dep2p/go-hive/internal/cluster"
	"github.com/dep2p/go-hive/internal/config"
	"github.com/dep2p/go-hive/internal/core/storage"
	"github.com/dep2p/go-hive/internal/core/transport"
	"github.com/dep2p/go-hive/internal/debug/introspect"
)

// newApp 组装 Fx 应用
func newApp(cfg *config.Config, opts *options) (*fx.App, error) {
	modules := []fx.Option{
		// ════════════════════════════════════════════════════════════════════
		// 1. 配置与指标
		// ════════════════════════════════════════════════════════════════════
		fx.Supply(cfg),
		fx.Provide(
			newMetricsRegistry,
			func(r *prometheus.Registry) prometheus.Registerer { return r },
			func(r *prometheus.Registry) prometheus.Gatherer { return r },
		),

		// ════════════════════════════════════════════════════════════════════
		// 2. 基础设施
		// ════════════════════════════════════════════════════════════════════
		transport.Module(),
		storage.Module(),

		// ════════════════════════════════════════════════════════════════════
		// 3. 集群
		// ════════════════════════════════════════════════════════════════════
		fx.Provide(func() cluster.SetupFunc { return setupDemo }),
		cluster.Module(),

		// ════════════════════════════════════════════════════════════════════
		// 4. 自省（可选）
		// ════════════════════════════════════════════════════════════════════
		fx.Provide(func(c *cluster.Cluster) introspect.DiagnosticsSource { return c }),
		introspect.Module(),

		// ════════════════════════════════════════════════════════════════════
		// 5. 演示负载
		// ════════════════════════════════════════════════════════════════════
		fx.Invoke(registerWorkload(opts.workload)),
	}

	if opts.verboseFx {
		modules = append(modules, fx.WithLogger(func() fxevent.Logger {
			l, err := zap.NewDevelopment()
			if err != nil {
				l = zap.NewNop()
			}
			return &fxevent.ZapLogger{Logger: l}
		}))
	} else {
		modules = append(modules, fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}))
	}

	app := fx.New(modules...)
	if err := app.Err(); err != nil {
		return nil, err
	}
	return app, nil
}

// newMetricsRegistry 进程级指标注册表
func newMetricsRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
