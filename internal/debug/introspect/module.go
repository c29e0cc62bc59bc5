package introspect

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/dep2p/go-hive/internal/config"
)

// Params 自省服务依赖
type Params struct {
	fx.In

	UnifiedCfg *config.Config      `optional:"true"`
	Source     DiagnosticsSource   `optional:"true"`
	Gatherer   prometheus.Gatherer `optional:"true"`
}

// Module 返回自省服务 Fx 模块
//
// 配置未启用时提供 nil *Server，生命周期钩子跳过。
func Module() fx.Option {
	return fx.Module("introspect",
		fx.Provide(ProvideServer),
		fx.Invoke(registerLifecycle),
	)
}

// ConfigFromUnified 从统一配置创建服务配置，未启用时返回 nil
func ConfigFromUnified(cfg *config.Config) *Config {
	if cfg == nil || !cfg.Introspect.Enable {
		return nil
	}
	addr := cfg.Introspect.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	return &Config{Addr: addr}
}

// ProvideServer 创建自省服务
//
// 除诊断端点外，额外挂载 /debug/introspect/config 输出生效的配置。
func ProvideServer(p Params) *Server {
	cfg := ConfigFromUnified(p.UnifiedCfg)
	if cfg == nil {
		return nil
	}

	cfg.Source = p.Source
	cfg.Gatherer = p.Gatherer
	cfg.CustomHandlers = map[string]http.HandlerFunc{
		"/debug/introspect/config": configHandler(p.UnifiedCfg),
	}
	return New(*cfg)
}

func configHandler(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, cfg)
	}
}

func registerLifecycle(lc fx.Lifecycle, server *Server) {
	if server == nil {
		return
	}
	lc.Append(fx.Hook{
		OnStart: server.Start,
		OnStop: func(context.Context) error {
			return server.Stop()
		},
	})
}
