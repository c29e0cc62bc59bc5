package storage

import (
	"encoding/binary"
	"fmt"

	"github.com/dep2p/go-hive/internal/core/storage/engine"
	"github.com/dep2p/go-hive/internal/core/storage/kv"
	"github.com/dep2p/go-hive/pkg/types"
)

// Snapshot 已保存的快照
type Snapshot struct {
	CellID   types.CellID
	Sequence int64
	Data     []byte
}

// SnapshotStore 按单元保存状态机快照
type SnapshotStore struct {
	store *kv.Store
	keep  int
}

// NewSnapshotStore 创建快照存储
//
// keep 为每个单元保留的最新快照数量。
func NewSnapshotStore(eng engine.Engine, keep int) *SnapshotStore {
	if keep < 1 {
		keep = 1
	}
	return &SnapshotStore{
		store: kv.New(eng, []byte("snap/")),
		keep:  keep,
	}
}

func cellPrefix(cellID types.CellID) []byte {
	return []byte(cellID.String() + "/")
}

func seqKey(seq int64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(seq))
	return buf[:]
}

// Save 保存快照并清理旧快照
func (s *SnapshotStore) Save(cellID types.CellID, seq int64, data []byte) error {
	if seq < 0 {
		return fmt.Errorf("storage: negative snapshot sequence %d", seq)
	}

	cell := s.store.SubStore(cellPrefix(cellID))
	if err := cell.Put(seqKey(seq), data); err != nil {
		return fmt.Errorf("storage: save snapshot %s@%d: %w", cellID, seq, err)
	}

	var stale [][]byte
	n := 0
	err := cell.Scan(nil, true, func(key, _ []byte) bool {
		n++
		if n > s.keep {
			stale = append(stale, key)
		}
		return true
	})
	if err != nil {
		return err
	}
	if len(stale) > 0 {
		log.Debug("清理旧快照", "cell", cellID.ShortString(), "count", len(stale))
	}
	return cell.DeleteKeys(stale)
}

// LoadLatest 读取单元的最新快照
func (s *SnapshotStore) LoadLatest(cellID types.CellID) (*Snapshot, error) {
	var (
		found *Snapshot
		bad   bool
	)
	err := s.store.SubStore(cellPrefix(cellID)).Scan(nil, true, func(key, value []byte) bool {
		if len(key) != 8 {
			bad = true
			return false
		}
		found = &Snapshot{
			CellID:   cellID,
			Sequence: int64(binary.BigEndian.Uint64(key)),
			Data:     value,
		}
		return false
	})
	if err != nil {
		return nil, err
	}
	if bad {
		return nil, ErrCorrupted
	}
	if found == nil {
		return nil, ErrNoSnapshot
	}
	return found, nil
}

// Sequences 返回单元已保存的快照序号（升序）
func (s *SnapshotStore) Sequences(cellID types.CellID) ([]int64, error) {
	keys, err := s.store.SubStore(cellPrefix(cellID)).Keys(nil)
	if err != nil {
		return nil, err
	}
	seqs := make([]int64, 0, len(keys))
	for _, k := range keys {
		if len(k) != 8 {
			return nil, ErrCorrupted
		}
		seqs = append(seqs, int64(binary.BigEndian.Uint64(k)))
	}
	return seqs, nil
}
