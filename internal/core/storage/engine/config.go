package engine

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Config 存储引擎配置
type Config struct {
	// Path 数据目录（非内存模式必需）
	Path string

	InMemory   bool
	SyncWrites bool

	// GCInterval 值日志垃圾回收间隔，0 禁用
	GCInterval time.Duration

	// GCDiscardRatio 值日志文件可回收比例阈值
	GCDiscardRatio float64

	// BlockCacheSize 块缓存大小（字节）
	BlockCacheSize int64

	// LogLevel 底层引擎日志转发到 storage 子系统的最低级别
	LogLevel slog.Level
}

// DefaultConfig 默认配置
//
// 快照体积小且写入稀疏，块缓存取较小值；底层引擎只转发告警及以上日志。
func DefaultConfig(path string) *Config {
	return &Config{
		Path:           path,
		GCInterval:     10 * time.Minute,
		GCDiscardRatio: 0.5,
		BlockCacheSize: 16 << 20,
		LogLevel:       slog.LevelWarn,
	}
}

// Validate 校验并补全配置
func (c *Config) Validate() error {
	switch {
	case !c.InMemory && c.Path == "":
		return ErrInvalidConfig
	case c.GCInterval < 0:
		return ErrInvalidConfig
	}
	if c.GCDiscardRatio <= 0 || c.GCDiscardRatio >= 1 {
		c.GCDiscardRatio = 0.5
	}
	return nil
}

// PrepareDir 将 Path 转为绝对路径并创建目录
func (c *Config) PrepareDir() error {
	if c.InMemory {
		return nil
	}
	abs, err := filepath.Abs(c.Path)
	if err != nil {
		return err
	}
	c.Path = abs
	return os.MkdirAll(abs, 0o755)
}
