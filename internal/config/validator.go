package config

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError 配置校验错误
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("配置错误 [%s]: %s", e.Field, e.Message)
}

// ValidationErrors 多个配置校验错误
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}

	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// HasErrors 是否有错误
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Validator 配置校验器
type Validator struct {
	errors ValidationErrors
}

// NewValidator 创建校验器
func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) addError(field, message string) {
	v.errors = append(v.errors, ValidationError{Field: field, Message: message})
}

// Errors 返回所有错误
func (v *Validator) Errors() ValidationErrors {
	return v.errors
}

// Validate 校验配置
func Validate(config *Config) error {
	v := NewValidator()

	v.ValidateHive(&config.Hive)
	v.validateStorage(&config.Storage)
	v.validateCluster(&config.Cluster)

	if config.Introspect.Enable && config.Introspect.Addr == "" {
		v.addError("introspect.addr", "启用自省服务时地址不能为空")
	}

	if v.errors.HasErrors() {
		return v.errors
	}
	return nil
}

// ValidateHive 校验 Hive 配置
func (v *Validator) ValidateHive(cfg *HiveConfig) {
	positive := []struct {
		field string
		value time.Duration
	}{
		{"hive.ping_period", cfg.PingPeriod},
		{"hive.ping_rpc_timeout", cfg.PingRpcTimeout},
		{"hive.post_rpc_timeout", cfg.PostRpcTimeout},
		{"hive.send_rpc_timeout", cfg.SendRpcTimeout},
		{"hive.idle_post_period", cfg.IdlePostPeriod},
	}
	for _, p := range positive {
		if p.value <= 0 {
			v.addError(p.field, "必须大于 0")
		}
	}

	if cfg.PostBatchingPeriod < 0 {
		v.addError("hive.post_batching_period", "不能为负数")
	}
	if cfg.SyncDelay < 0 {
		v.addError("hive.sync_delay", "不能为负数")
	}
	if cfg.SyncTimeout < 0 {
		v.addError("hive.sync_timeout", "不能为负数")
	}
	if cfg.CachedChannelTimeout < 0 {
		v.addError("hive.cached_channel_timeout", "不能为负数")
	}
	if cfg.MaxMessagesPerPost < 1 {
		v.addError("hive.max_messages_per_post", "必须大于 0")
	}
	if cfg.MaxBytesPerPost < 1 {
		v.addError("hive.max_bytes_per_post", "必须大于 0")
	}
}

func (v *Validator) validateStorage(cfg *StorageConfig) {
	if !cfg.InMemory && cfg.DataDir == "" {
		v.addError("storage.data_dir", "非内存模式下数据目录不能为空")
	}
	if cfg.GCInterval < 0 {
		v.addError("storage.gc_interval", "不能为负数")
	}
	if cfg.SnapshotsToKeep < 1 {
		v.addError("storage.snapshots_to_keep", "必须大于 0")
	}
}

func (v *Validator) validateCluster(cfg *ClusterConfig) {
	if cfg.Cells < 1 {
		v.addError("cluster.cells", "必须大于 0")
	}
	if cfg.CommitDelay < 0 {
		v.addError("cluster.commit_delay", "不能为负数")
	}
	if cfg.NetworkLatency < 0 {
		v.addError("cluster.network_latency", "不能为负数")
	}
	if cfg.SnapshotPeriod < 0 {
		v.addError("cluster.snapshot_period", "不能为负数")
	}
}
