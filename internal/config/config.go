// Package config 提供 go-hive 配置管理层
//
// config 包负责：
//   - 定义内部配置结构
//   - 提供默认值
//   - 配置校验
//   - 从配置文件与环境变量加载（viper）
package config

import (
	"path/filepath"
	"time"
)

// Config 内部配置结构
type Config struct {
	// LogFile 日志文件路径
	// 为空时输出到 stderr，非空时输出到指定文件
	LogFile string `mapstructure:"log_file"`

	// Hive 跨单元消息配置
	Hive HiveConfig `mapstructure:"hive"`

	// Storage 快照存储配置
	Storage StorageConfig `mapstructure:"storage"`

	// Cluster 本地集群配置
	Cluster ClusterConfig `mapstructure:"cluster"`

	// Introspect 自省服务配置
	Introspect IntrospectConfig `mapstructure:"introspect"`
}

// NewConfig 创建默认配置
func NewConfig() *Config {
	return &Config{
		Hive:       DefaultHiveConfig(),
		Storage:    DefaultStorageConfig(),
		Cluster:    DefaultClusterConfig(),
		Introspect: DefaultIntrospectConfig(),
	}
}

// ============================================================================
//                              Hive 配置
// ============================================================================

// HiveConfig 跨单元消息配置
type HiveConfig struct {
	// PingPeriod 每个邮箱的周期性 Ping 间隔
	PingPeriod time.Duration `mapstructure:"ping_period"`

	// PingRpcTimeout Ping RPC 超时
	PingRpcTimeout time.Duration `mapstructure:"ping_rpc_timeout"`

	// PostRpcTimeout PostMessages RPC 超时
	PostRpcTimeout time.Duration `mapstructure:"post_rpc_timeout"`

	// SendRpcTimeout SendMessages RPC 超时
	SendRpcTimeout time.Duration `mapstructure:"send_rpc_timeout"`

	// PostBatchingPeriod 可靠投递的合并延迟
	PostBatchingPeriod time.Duration `mapstructure:"post_batching_period"`

	// IdlePostPeriod 空闲时探测投递的间隔，用于持续获取确认
	IdlePostPeriod time.Duration `mapstructure:"idle_post_period"`

	// MaxMessagesPerPost 单次投递的最大消息数
	MaxMessagesPerPost int `mapstructure:"max_messages_per_post"`

	// MaxBytesPerPost 单次投递的最大字节数
	MaxBytesPerPost int `mapstructure:"max_bytes_per_post"`

	// CachedChannelTimeout 缓存通道的有效期
	CachedChannelTimeout time.Duration `mapstructure:"cached_channel_timeout"`

	// SyncDelay 同步请求的合并窗口
	SyncDelay time.Duration `mapstructure:"sync_delay"`

	// SyncTimeout 同步屏障的整体超时（0 表示不超时）
	SyncTimeout time.Duration `mapstructure:"sync_timeout"`
}

// DefaultHiveConfig 默认 Hive 配置
func DefaultHiveConfig() HiveConfig {
	return HiveConfig{
		PingPeriod:           DefaultPingPeriod,
		PingRpcTimeout:       DefaultRpcTimeout,
		PostRpcTimeout:       DefaultRpcTimeout,
		SendRpcTimeout:       DefaultRpcTimeout,
		PostBatchingPeriod:   DefaultPostBatchingPeriod,
		IdlePostPeriod:       DefaultIdlePostPeriod,
		MaxMessagesPerPost:   DefaultMaxMessagesPerPost,
		MaxBytesPerPost:      DefaultMaxBytesPerPost,
		CachedChannelTimeout: DefaultCachedChannelTimeout,
		SyncDelay:            DefaultSyncDelay,
		SyncTimeout:          DefaultSyncTimeout,
	}
}

// ============================================================================
//                              存储配置
// ============================================================================

// StorageConfig 快照存储配置
type StorageConfig struct {
	// DataDir 数据目录
	DataDir string `mapstructure:"data_dir"`

	// InMemory 仅内存模式（不落盘，用于本地演示）
	InMemory bool `mapstructure:"in_memory"`

	// SyncWrites 是否同步写入
	SyncWrites bool `mapstructure:"sync_writes"`

	// GCInterval 值日志垃圾回收间隔（0 禁用）
	GCInterval time.Duration `mapstructure:"gc_interval"`

	// SnapshotsToKeep 每个单元保留的快照数
	SnapshotsToKeep int `mapstructure:"snapshots_to_keep"`
}

// DefaultStorageConfig 默认存储配置
func DefaultStorageConfig() StorageConfig {
	return StorageConfig{
		DataDir:         "./data",
		GCInterval:      10 * time.Minute,
		SnapshotsToKeep: DefaultSnapshotsToKeep,
	}
}

// DBPath 返回数据库目录
func (c StorageConfig) DBPath() string {
	return filepath.Join(c.DataDir, "hive.db")
}

// ============================================================================
//                              集群配置
// ============================================================================

// ClusterConfig 进程内集群配置
type ClusterConfig struct {
	// Cells 单元数量
	Cells int `mapstructure:"cells"`

	// CommitDelay 模拟共识提交延迟
	CommitDelay time.Duration `mapstructure:"commit_delay"`

	// NetworkLatency 模拟网络延迟
	NetworkLatency time.Duration `mapstructure:"network_latency"`

	// SnapshotPeriod 快照周期（0 禁用）
	SnapshotPeriod time.Duration `mapstructure:"snapshot_period"`
}

// DefaultClusterConfig 默认集群配置
func DefaultClusterConfig() ClusterConfig {
	return ClusterConfig{
		Cells:          3,
		CommitDelay:    time.Millisecond,
		SnapshotPeriod: time.Minute,
	}
}

// ============================================================================
//                              自省配置
// ============================================================================

// IntrospectConfig 自省服务配置
type IntrospectConfig struct {
	// Enable 启用自省 HTTP 服务
	Enable bool `mapstructure:"enable"`

	// Addr 监听地址，默认 "127.0.0.1:6060"
	Addr string `mapstructure:"addr"`
}

// DefaultIntrospectConfig 默认自省服务配置
func DefaultIntrospectConfig() IntrospectConfig {
	return IntrospectConfig{
		Enable: false,
		Addr:   "127.0.0.1:6060",
	}
}
