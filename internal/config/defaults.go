package config

import "time"

// ============================================================================
//                              预设默认值
// ============================================================================

// Hive 默认值
const (
	// DefaultPingPeriod 默认 Ping 周期
	DefaultPingPeriod = 15 * time.Second

	// DefaultRpcTimeout 默认 RPC 超时
	DefaultRpcTimeout = 15 * time.Second

	// DefaultPostBatchingPeriod 默认投递合并延迟
	DefaultPostBatchingPeriod = 10 * time.Millisecond

	// DefaultIdlePostPeriod 默认空闲探测周期
	DefaultIdlePostPeriod = 15 * time.Second

	// DefaultMaxMessagesPerPost 默认单次投递最大消息数
	DefaultMaxMessagesPerPost = 16384

	// DefaultMaxBytesPerPost 默认单次投递最大字节数
	DefaultMaxBytesPerPost = 16 << 20 // 16MB

	// DefaultCachedChannelTimeout 默认通道缓存有效期
	DefaultCachedChannelTimeout = 3 * time.Second

	// DefaultSyncDelay 默认同步合并窗口
	DefaultSyncDelay = 10 * time.Millisecond

	// DefaultSyncTimeout 默认同步屏障超时
	DefaultSyncTimeout = time.Minute
)

// 存储默认值
const (
	// DefaultSnapshotsToKeep 默认保留快照数
	DefaultSnapshotsToKeep = 3
)
