// Package types 定义 Hive 的公共数据结构
//
// 这是整个系统的最底层包，不依赖任何其他 go-hive 内部包。
// 所有类型都是纯值类型或构造后不可变的类型，用于在各模块间传递数据。
//
// # 文件组织
//
//   - ids.go      - CellID, MessageID
//   - message.go  - EncapsulatedMessage, TraceContext
//   - cell.go     - CellInfo, CellDescriptor, SyncCellsResult
//   - errors.go   - 错误码与公共错误
//
// # 设计原则
//
//  1. 不可变性：EncapsulatedMessage 构造后不可修改，可被多个邮箱共享引用
//  2. 可比较性：CellID 可直接作为 map key
//  3. 零依赖：不依赖任何其他 go-hive 内部包（最底层）
//
// # 使用示例
//
//	import "github.com/dep2p/go-hive/pkg/types"
//
//	cellID := types.NewCellID()
//	msg := types.NewEncapsulatedMessage("tablet.Mount", payload, types.NewTraceContext())
package types
