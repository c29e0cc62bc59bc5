package directory

import (
	"sort"
	"sync"

	"github.com/dep2p/go-hive/internal/util/logger"
	"github.com/dep2p/go-hive/pkg/interfaces"
	"github.com/dep2p/go-hive/pkg/types"
)

var log = logger.Logger("directory")

// ChannelFactory 根据地址创建通道
type ChannelFactory func(address string) interfaces.Channel

// Directory 内存单元目录
type Directory struct {
	factory ChannelFactory

	mu           sync.RWMutex
	entries      map[types.CellID]*entry
	unregistered map[types.CellID]struct{}
}

type entry struct {
	desc    types.CellDescriptor
	channel interfaces.Channel
}

var _ interfaces.CellDirectory = (*Directory)(nil)

// New 创建目录
func New(factory ChannelFactory) *Directory {
	return &Directory{
		factory:      factory,
		entries:      make(map[types.CellID]*entry),
		unregistered: make(map[types.CellID]struct{}),
	}
}

// ============================================================================
//                              查询
// ============================================================================

// FindChannel 查找单元通道，无地址或未注册时返回 false
func (d *Directory) FindChannel(cellID types.CellID) (interfaces.Channel, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	e, ok := d.entries[cellID]
	if !ok || e.channel == nil {
		return nil, false
	}
	return e.channel, true
}

// FindDescriptor 查找单元描述符
func (d *Directory) FindDescriptor(cellID types.CellID) (types.CellDescriptor, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	e, ok := d.entries[cellID]
	if !ok {
		return types.CellDescriptor{}, false
	}
	return e.desc, true
}

// IsCellUnregistered 单元是否已被注销
func (d *Directory) IsCellUnregistered(cellID types.CellID) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.unregistered[cellID]
	return ok
}

// GetRegisteredCells 已注册单元，按 ID 排序
func (d *Directory) GetRegisteredCells() []types.CellInfo {
	d.mu.RLock()
	defer d.mu.RUnlock()

	cells := make([]types.CellInfo, 0, len(d.entries))
	for _, e := range d.entries {
		cells = append(cells, e.desc.Info())
	}
	sort.Slice(cells, func(i, j int) bool {
		return cells[i].CellID < cells[j].CellID
	})
	return cells
}

// ============================================================================
//                              修改
// ============================================================================

// RegisterCell 注册或更新单元
//
// 新单元或版本更高时写入并返回 true。重新注册会清除注销标记。
func (d *Directory) RegisterCell(desc types.CellDescriptor) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if e, ok := d.entries[desc.CellID]; ok && e.desc.ConfigVersion >= desc.ConfigVersion {
		return false
	}

	e := &entry{desc: desc}
	if desc.Address != "" && d.factory != nil {
		e.channel = d.factory(desc.Address)
	}
	d.entries[desc.CellID] = e
	delete(d.unregistered, desc.CellID)

	log.Debug("单元已注册",
		"cell", desc.CellID.ShortString(),
		"version", desc.ConfigVersion,
		"address", desc.Address)
	return true
}

// UnregisterCell 注销单元
func (d *Directory) UnregisterCell(cellID types.CellID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.unregistered[cellID] = struct{}{}
	if _, ok := d.entries[cellID]; !ok {
		return false
	}
	delete(d.entries, cellID)

	log.Debug("单元已注销", "cell", cellID.ShortString())
	return true
}

// ============================================================================
//                              同步
// ============================================================================

// Synchronize 与对方已知单元对比
func (d *Directory) Synchronize(known []types.CellInfo) types.SyncCellsResult {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var result types.SyncCellsResult
	// 只统计本地存在的单元，对方多出的单元不能掩盖本地多出的单元
	found := make(map[types.CellID]struct{}, len(known))
	for _, k := range known {
		e, ok := d.entries[k.CellID]
		if !ok {
			result.CellsToUnregister = append(result.CellsToUnregister, k.CellID)
			continue
		}
		found[k.CellID] = struct{}{}
		if k.ConfigVersion < e.desc.ConfigVersion {
			result.CellsToReconfigure = append(result.CellsToReconfigure, e.desc)
		}
	}

	if len(found) < len(d.entries) {
		var missing []types.CellDescriptor
		for id, e := range d.entries {
			if _, ok := found[id]; !ok {
				missing = append(missing, e.desc)
			}
		}
		sort.Slice(missing, func(i, j int) bool {
			return missing[i].CellID < missing[j].CellID
		})
		result.CellsToReconfigure = append(result.CellsToReconfigure, missing...)
	}
	return result
}
