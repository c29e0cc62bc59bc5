package storage

import (
	"time"

	"github.com/dep2p/go-hive/internal/config"
	"github.com/dep2p/go-hive/internal/core/storage/engine"
)

// Config Storage 模块配置
type Config struct {
	// Path 数据库目录
	Path string

	// InMemory 仅内存模式
	InMemory bool

	// SyncWrites 是否同步写入
	SyncWrites bool

	// GCInterval 垃圾回收间隔
	GCInterval time.Duration

	// SnapshotsToKeep 每个单元保留的快照数
	SnapshotsToKeep int
}

// ConfigFromUnified 从统一配置创建 Storage 配置
func ConfigFromUnified(cfg *config.Config) Config {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return Config{
		Path:            cfg.Storage.DBPath(),
		InMemory:        cfg.Storage.InMemory,
		SyncWrites:      cfg.Storage.SyncWrites,
		GCInterval:      cfg.Storage.GCInterval,
		SnapshotsToKeep: cfg.Storage.SnapshotsToKeep,
	}
}

// ToEngineConfig 转换为引擎配置
func (c Config) ToEngineConfig() *engine.Config {
	ec := engine.DefaultConfig(c.Path)
	ec.InMemory = c.InMemory
	ec.SyncWrites = c.SyncWrites
	ec.GCInterval = c.GCInterval
	return ec
}

// Validate 验证配置
func (c *Config) Validate() error {
	if !c.InMemory && c.Path == "" {
		return ErrInvalidConfig
	}
	if c.SnapshotsToKeep < 1 {
		c.SnapshotsToKeep = config.DefaultSnapshotsToKeep
	}
	return nil
}
