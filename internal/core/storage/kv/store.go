package kv

import (
	"github.com/dep2p/go-hive/internal/core/storage/engine"
)

// Store 带前缀隔离的 KV 存储
type Store struct {
	engine engine.Engine
	prefix []byte
}

// New 创建新的 Store
func New(eng engine.Engine, prefix []byte) *Store {
	return &Store{engine: eng, prefix: append([]byte(nil), prefix...)}
}

func (s *Store) prefixKey(key []byte) []byte {
	out := make([]byte, 0, len(s.prefix)+len(key))
	out = append(out, s.prefix...)
	return append(out, key...)
}

// Get 获取值
func (s *Store) Get(key []byte) ([]byte, error) {
	return s.engine.Get(s.prefixKey(key))
}

// Put 写入值
func (s *Store) Put(key, value []byte) error {
	return s.engine.Put(s.prefixKey(key), value)
}

// Delete 删除键
func (s *Store) Delete(key []byte) error {
	return s.engine.Delete(s.prefixKey(key))
}

// Has 检查键是否存在
func (s *Store) Has(key []byte) (bool, error) {
	return s.engine.Has(s.prefixKey(key))
}

// Scan 遍历 subPrefix 下的键值，fn 返回 false 时停止
//
// 传给 fn 的 key 已去掉 Store 前缀。
func (s *Store) Scan(subPrefix []byte, reverse bool, fn func(key, value []byte) bool) error {
	it := s.engine.NewPrefixIterator(s.prefixKey(subPrefix), reverse)
	defer it.Close()

	for it.Next() {
		key := it.Key()[len(s.prefix):]
		if !fn(key, it.Value()) {
			break
		}
	}
	return it.Error()
}

// Keys 返回 subPrefix 下的所有键（已去掉前缀）
func (s *Store) Keys(subPrefix []byte) ([][]byte, error) {
	var keys [][]byte
	err := s.Scan(subPrefix, false, func(key, _ []byte) bool {
		keys = append(keys, key)
		return true
	})
	return keys, err
}

// DeleteKeys 批量删除
func (s *Store) DeleteKeys(keys [][]byte) error {
	if len(keys) == 0 {
		return nil
	}
	b := s.engine.NewBatch()
	for _, k := range keys {
		b.Delete(s.prefixKey(k))
	}
	return b.Write()
}

// SubStore 创建子命名空间
func (s *Store) SubStore(subPrefix []byte) *Store {
	return New(s.engine, s.prefixKey(subPrefix))
}

// Prefix 返回前缀
func (s *Store) Prefix() []byte {
	return s.prefix
}
