package engine

import "errors"

// ============================================================================
//                              错误
// ============================================================================

var (
	// ErrNotFound 键不存在
	ErrNotFound = errors.New("storage: key not found")

	// ErrEmptyKey 空键
	ErrEmptyKey = errors.New("storage: empty key")

	// ErrClosed 引擎已关闭
	ErrClosed = errors.New("storage: engine closed")

	// ErrInvalidConfig 无效配置
	ErrInvalidConfig = errors.New("storage: invalid configuration")

	// ErrCorrupted 数据损坏
	ErrCorrupted = errors.New("storage: data corrupted")
)

// IsNotFound 是否为键不存在
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// ============================================================================
//                              接口
// ============================================================================

// Engine 键值存储引擎，所有方法并发安全
//
// 快照存储只需要点读写、批量写入和有序的前缀遍历。
type Engine interface {
	// Get 获取指定键的值，键不存在时返回 ErrNotFound
	Get(key []byte) ([]byte, error)

	Put(key, value []byte) error
	Delete(key []byte) error
	Has(key []byte) (bool, error)

	// NewBatch 创建批量写入，Write 之前不可见
	NewBatch() Batch

	// NewPrefixIterator 按前缀遍历，reverse 为 true 时从大到小
	NewPrefixIterator(prefix []byte, reverse bool) Iterator

	// Start 启动后台任务（值日志垃圾回收）
	Start() error

	Close() error
}

// Batch 批量写入
type Batch interface {
	Put(key, value []byte)
	Delete(key []byte)

	// Write 原子提交
	Write() error

	// Size 已累积的操作数
	Size() int
}

// Iterator 迭代器
//
//	it := eng.NewPrefixIterator(prefix, false)
//	defer it.Close()
//	for it.Next() {
//	    use(it.Key(), it.Value())
//	}
//	return it.Error()
type Iterator interface {
	Next() bool
	Key() []byte
	Value() []byte
	Close()
	Error() error
}
