// Package proto 定义 Hive 的线上与持久化消息格式
//
// # 子包
//
//   - hive: Hive RPC 请求与回复、Hive 变更载荷、Hive 快照分段
//   - automaton: 状态机快照容器
//
// # 与 pkg/types 的区别
//
// pkg/lib/proto 定义编码格式，pkg/types 定义 Go 内部数据结构。
// 两者之间的转换放在使用方的 codec.go 中。
package proto
