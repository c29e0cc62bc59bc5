// Package storage 提供快照持久化服务
//
// 参考状态机宿主（internal/core/automaton）把 Hive 等组件的快照分段
// 序列化后交给 SnapshotStore 保存；Hive 本身不做任何持久化 I/O。
//
// # 架构
//
//	┌──────────────────────────────────────────┐
//	│           automaton.Host                  │
//	└──────────────────────────────────────────┘
//	                    │ Save / LoadLatest
//	                    ▼
//	┌──────────────────────────────────────────┐
//	│  SnapshotStore (本包)                     │
//	│    kv.Store  前缀 "snap/"                 │
//	│    engine/badger  BadgerDB 实现           │
//	└──────────────────────────────────────────┘
//
// # 键空间设计
//
//	snap/<cellID>/<seq: 8 字节大端>  →  快照数据
//
// 大端序号保证同一单元的快照按序号有序，反向遍历第一项即最新快照。
package storage
