package types

// CellInfo 单元及其配置版本
type CellInfo struct {
	CellID        CellID
	ConfigVersion int
}

// CellDescriptor 单元描述符
//
// 由单元目录维护，Address 用于解析到 RPC 通道。
type CellDescriptor struct {
	CellID        CellID
	ConfigVersion int
	Address       string
}

// Info 返回描述符对应的 CellInfo
func (d CellDescriptor) Info() CellInfo {
	return CellInfo{CellID: d.CellID, ConfigVersion: d.ConfigVersion}
}

// SyncCellsResult 单元目录对比结果
type SyncCellsResult struct {
	// CellsToReconfigure 对方缺失或版本落后的单元
	CellsToReconfigure []CellDescriptor

	// CellsToUnregister 对方已知但本地未注册的单元
	CellsToUnregister []CellID
}
