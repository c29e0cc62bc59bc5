package storage

import (
	"errors"

	"github.com/dep2p/go-hive/internal/core/storage/engine"
)

var (
	// ErrNotFound 键不存在
	ErrNotFound = engine.ErrNotFound

	// ErrClosed 引擎已关闭
	ErrClosed = engine.ErrClosed

	// ErrInvalidConfig 无效配置
	ErrInvalidConfig = engine.ErrInvalidConfig

	// ErrNoSnapshot 单元没有任何快照
	ErrNoSnapshot = errors.New("storage: no snapshot")

	// ErrCorrupted 快照键损坏
	ErrCorrupted = engine.ErrCorrupted
)
