package types

import (
	"github.com/google/uuid"
)

// ============================================================================
//                              TraceContext - 追踪上下文
// ============================================================================

// TraceContext 随消息传播的追踪字段
type TraceContext struct {
	// TraceID 整条调用链的 ID
	TraceID string

	// SpanID 当前跨度 ID
	SpanID string

	// ParentSpanID 父跨度 ID
	ParentSpanID string

	// Sampled 是否采样
	Sampled bool
}

// NewTraceContext 创建新的根追踪上下文
func NewTraceContext() TraceContext {
	return TraceContext{
		TraceID: uuid.NewString(),
		SpanID:  uuid.NewString(),
		Sampled: true,
	}
}

// IsEmpty 检查追踪上下文是否为空
func (t TraceContext) IsEmpty() bool {
	return t.TraceID == ""
}

// Child 派生子跨度
//
// 空上下文的子跨度仍为空。
func (t TraceContext) Child() TraceContext {
	if t.IsEmpty() {
		return t
	}
	return TraceContext{
		TraceID:      t.TraceID,
		SpanID:       uuid.NewString(),
		ParentSpanID: t.SpanID,
		Sampled:      t.Sampled,
	}
}

// ============================================================================
//                              EncapsulatedMessage - 封装消息
// ============================================================================

// EncapsulatedMessage 封装的跨单元消息
//
// 构造后不可变：扇出到多个目标时，各邮箱共享同一个实例。
// 字段只能通过访问器读取，Data 返回的切片调用者不得修改。
type EncapsulatedMessage struct {
	typ   string
	data  []byte
	trace TraceContext
}

// NewEncapsulatedMessage 创建封装消息
//
// data 会被复制，调用者之后修改原切片不影响消息。
func NewEncapsulatedMessage(typ string, data []byte, trace TraceContext) *EncapsulatedMessage {
	var buf []byte
	if len(data) > 0 {
		buf = make([]byte, len(data))
		copy(buf, data)
	}
	return &EncapsulatedMessage{
		typ:   typ,
		data:  buf,
		trace: trace,
	}
}

// Type 返回消息类型标签
func (m *EncapsulatedMessage) Type() string {
	return m.typ
}

// Data 返回载荷（只读）
func (m *EncapsulatedMessage) Data() []byte {
	return m.data
}

// Trace 返回追踪上下文
func (m *EncapsulatedMessage) Trace() TraceContext {
	return m.trace
}

// Size 返回消息占用的字节数（类型 + 数据），用于 MaxBytesPerPost 批量限制
func (m *EncapsulatedMessage) Size() int {
	return len(m.typ) + len(m.data)
}

// Equal 比较两条消息的内容
func (m *EncapsulatedMessage) Equal(other *EncapsulatedMessage) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.typ == other.typ && string(m.data) == string(other.data) && m.trace == other.trace
}
