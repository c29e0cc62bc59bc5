package badger

import (
	"bytes"

	"github.com/dgraph-io/badger/v4"
)

// iterator 前缀迭代器
//
// 反向遍历时从前缀的上界开始 Seek，并跳过恰好等于上界的键。
type iterator struct {
	txn     *badger.Txn
	iter    *badger.Iterator
	prefix  []byte
	reverse bool
	started bool
	closed  bool
	err     error
}

func newIterator(txn *badger.Txn, opts badger.IteratorOptions, prefix []byte, reverse bool) *iterator {
	return &iterator{
		txn:     txn,
		iter:    txn.NewIterator(opts),
		prefix:  prefix,
		reverse: reverse,
	}
}

func (it *iterator) Next() bool {
	if it.closed {
		return false
	}
	if !it.started {
		it.started = true
		if it.reverse {
			bound := upperBound(it.prefix)
			it.iter.Seek(bound)
			if it.iter.Valid() && bytes.Equal(it.iter.Item().Key(), bound) {
				it.iter.Next()
			}
		} else {
			it.iter.Seek(it.prefix)
		}
	} else {
		it.iter.Next()
	}
	return it.iter.ValidForPrefix(it.prefix)
}

func (it *iterator) Key() []byte {
	if it.closed || !it.iter.Valid() {
		return nil
	}
	return it.iter.Item().KeyCopy(nil)
}

func (it *iterator) Value() []byte {
	if it.closed || !it.iter.Valid() {
		return nil
	}
	value, err := it.iter.Item().ValueCopy(nil)
	if err != nil {
		it.err = err
		return nil
	}
	return value
}

func (it *iterator) Close() {
	if it.closed {
		return
	}
	it.closed = true
	it.iter.Close()
	it.txn.Discard()
}

func (it *iterator) Error() error {
	return it.err
}

// upperBound 返回大于所有以 prefix 开头的键的最小键
//
// 前缀全为 0xff 时追加一个 0xff 字节。
func upperBound(prefix []byte) []byte {
	bound := copyBytes(prefix)
	for i := len(bound) - 1; i >= 0; i-- {
		if bound[i] < 0xff {
			bound[i]++
			return bound[:i+1]
		}
	}
	return append(copyBytes(prefix), 0xff)
}
