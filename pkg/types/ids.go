package types

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ============================================================================
//                              CellID - 单元标识
// ============================================================================

// CellID 单元（独立复制的状态机）的唯一标识
//
// 外部表示为规范的 UUID 字符串。
type CellID string

// EmptyCellID 空单元 ID
var EmptyCellID CellID

// ErrInvalidCellID 无效的单元 ID
var ErrInvalidCellID = errors.New("invalid cell ID: must be a UUID")

// NewCellID 生成新的随机单元 ID
func NewCellID() CellID {
	return CellID(uuid.NewString())
}

// ParseCellID 从字符串解析单元 ID
func ParseCellID(s string) (CellID, error) {
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return EmptyCellID, ErrInvalidCellID
	}
	return CellID(u.String()), nil
}

// MustParseCellID 解析单元 ID，失败时 panic
func MustParseCellID(s string) CellID {
	id, err := ParseCellID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String 返回单元 ID 的字符串表示
func (id CellID) String() string {
	return string(id)
}

// ShortString 返回单元 ID 的前 8 个字符，用于日志
func (id CellID) ShortString() string {
	if len(id) > 8 {
		return string(id[:8])
	}
	return string(id)
}

// IsEmpty 检查单元 ID 是否为空
func (id CellID) IsEmpty() bool {
	return id == EmptyCellID
}

// ============================================================================
//                              MessageID - 消息序号
// ============================================================================

// MessageID 有向单元对 (src, dst) 内单调递增的消息序号
type MessageID = int64

// InvalidMessageID 无效序号，用于表示"未知"或"未激活"
const InvalidMessageID MessageID = -1
