package badger

import (
	"github.com/dgraph-io/badger/v4"

	"github.com/dep2p/go-hive/internal/core/storage/engine"
)

// writeBatch 基于 badger.WriteBatch 的批量写入
//
// 单个操作的错误会被记住，并在 Write 时返回。
type writeBatch struct {
	engine *Engine
	batch  *badger.WriteBatch
	size   int
	err    error
}

func (b *writeBatch) Put(key, value []byte) {
	if b.err != nil {
		return
	}
	if len(key) == 0 {
		b.err = engine.ErrEmptyKey
		return
	}
	b.err = b.batch.Set(copyBytes(key), copyBytes(value))
	b.size++
}

func (b *writeBatch) Delete(key []byte) {
	if b.err != nil {
		return
	}
	if len(key) == 0 {
		b.err = engine.ErrEmptyKey
		return
	}
	b.err = b.batch.Delete(copyBytes(key))
	b.size++
}

func (b *writeBatch) Write() error {
	if b.engine.closed.Load() {
		b.batch.Cancel()
		return engine.ErrClosed
	}
	if b.err != nil {
		b.batch.Cancel()
		return b.err
	}
	return convertError(b.batch.Flush())
}

func (b *writeBatch) Size() int {
	return b.size
}

func copyBytes(src []byte) []byte {
	if src == nil {
		return nil
	}
	dst := make([]byte, len(src))
	copy(dst, src)
	return dst
}
