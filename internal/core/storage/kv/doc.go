// Package kv 提供带前缀隔离的键值存储
//
// Store 为所有键自动添加前缀，不同使用方共享一个引擎而互不干扰。
//
// # 使用示例
//
//	snapshots := kv.New(eng, []byte("s/"))
//	cell := snapshots.SubStore([]byte(cellID + "/"))
//	cell.Put(key, value) // 实际键: s/<cellID>/<key>
package kv
