package interfaces

import "github.com/dep2p/go-hive/pkg/types"

// CellDirectory 单元目录
//
// 线程安全：实现必须保证所有方法的线程安全性。
type CellDirectory interface {
	// FindChannel 查找单元领导者的通道
	FindChannel(cellID types.CellID) (Channel, bool)

	// IsCellUnregistered 单元是否已被管理性注销
	IsCellUnregistered(cellID types.CellID) bool

	// RegisterCell 注册或更新单元描述符
	//
	// 只有版本更高时才会覆盖，返回是否发生变化。
	RegisterCell(desc types.CellDescriptor) bool

	// UnregisterCell 注销单元，返回是否存在
	UnregisterCell(cellID types.CellID) bool

	// GetRegisteredCells 已注册单元列表
	GetRegisteredCells() []types.CellInfo

	// Synchronize 与对方已知的单元列表对比
	Synchronize(known []types.CellInfo) types.SyncCellsResult
}
