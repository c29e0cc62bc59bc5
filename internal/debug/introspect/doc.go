// Package introspect 提供本地自省 HTTP 服务
//
// 该服务运行在本地端口，提供 JSON 格式的 Hive 诊断信息，用于调试和监控。
// 默认绑定到 127.0.0.1，不暴露到网络。
//
// # 端点
//
//	GET /debug/introspect            - 完整诊断报告 (JSON)
//	GET /debug/introspect/cells      - 所有单元的邮箱状态
//	GET /debug/introspect/cells/{id} - 单个单元（完整 ID 或短 ID）
//	GET /debug/introspect/runtime    - 运行时信息
//	GET /debug/introspect/config     - 生效的配置（经 Fx 模块创建时）
//	GET /metrics                     - Prometheus 指标
//	GET /debug/pprof/*               - Go pprof 端点
//	GET /health                      - 健康检查
//
// # 使用示例
//
//	server := introspect.New(introspect.Config{
//	    Addr:     "127.0.0.1:6060",
//	    Source:   myCluster,
//	    Gatherer: registry,
//	})
//	server.Start(ctx)
//	defer server.Stop()
//
//	// 访问 http://127.0.0.1:6060/debug/introspect
//
// # 安全
//
// 默认只监听本地地址，不暴露到网络。
// 通过 config.Introspect.Enable 配置启用。
package introspect
