package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 HIVE_HIVE_PING_PERIOD 对应 hive.ping_period
const EnvPrefix = "HIVE"

// SetDefaults 将默认配置写入 viper
func SetDefaults(v *viper.Viper) {
	d := NewConfig()

	v.SetDefault("log_file", d.LogFile)

	v.SetDefault("hive.ping_period", d.Hive.PingPeriod)
	v.SetDefault("hive.ping_rpc_timeout", d.Hive.PingRpcTimeout)
	v.SetDefault("hive.post_rpc_timeout", d.Hive.PostRpcTimeout)
	v.SetDefault("hive.send_rpc_timeout", d.Hive.SendRpcTimeout)
	v.SetDefault("hive.post_batching_period", d.Hive.PostBatchingPeriod)
	v.SetDefault("hive.idle_post_period", d.Hive.IdlePostPeriod)
	v.SetDefault("hive.max_messages_per_post", d.Hive.MaxMessagesPerPost)
	v.SetDefault("hive.max_bytes_per_post", d.Hive.MaxBytesPerPost)
	v.SetDefault("hive.cached_channel_timeout", d.Hive.CachedChannelTimeout)
	v.SetDefault("hive.sync_delay", d.Hive.SyncDelay)
	v.SetDefault("hive.sync_timeout", d.Hive.SyncTimeout)

	v.SetDefault("storage.data_dir", d.Storage.DataDir)
	v.SetDefault("storage.in_memory", d.Storage.InMemory)
	v.SetDefault("storage.sync_writes", d.Storage.SyncWrites)
	v.SetDefault("storage.gc_interval", d.Storage.GCInterval)
	v.SetDefault("storage.snapshots_to_keep", d.Storage.SnapshotsToKeep)

	v.SetDefault("cluster.cells", d.Cluster.Cells)
	v.SetDefault("cluster.commit_delay", d.Cluster.CommitDelay)
	v.SetDefault("cluster.network_latency", d.Cluster.NetworkLatency)
	v.SetDefault("cluster.snapshot_period", d.Cluster.SnapshotPeriod)

	v.SetDefault("introspect.enable", d.Introspect.Enable)
	v.SetDefault("introspect.addr", d.Introspect.Addr)
}

// NewViper 创建带默认值与环境变量绑定的 viper 实例
//
// configFile 为空时按 ./hive.yaml 查找，找不到文件不视为错误。
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("hive")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}
	return v, nil
}

// Load 从 viper 读取配置并校验
func Load(v *viper.Viper) (*Config, error) {
	cfg := NewConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
