package automaton

import (
	"github.com/dep2p/go-hive/pkg/interfaces"
	"github.com/dep2p/go-hive/pkg/types"
)

type mutationContext struct {
	typ     string
	payload []byte
	seq     int64
	trace   types.TraceContext
}

func newMutationContext(typ string, payload []byte, seq int64, trace types.TraceContext) *mutationContext {
	return &mutationContext{typ: typ, payload: payload, seq: seq, trace: trace}
}

func (c *mutationContext) Type() string              { return c.typ }
func (c *mutationContext) Payload() []byte           { return c.payload }
func (c *mutationContext) Sequence() int64           { return c.seq }
func (c *mutationContext) Trace() types.TraceContext { return c.trace }

func (c *mutationContext) Nested(typ string, payload []byte, trace types.TraceContext) interfaces.MutationContext {
	return newMutationContext(typ, payload, c.seq, trace)
}

// NewMutationContext 构造独立的变更上下文（测试与离线工具使用）
func NewMutationContext(typ string, payload []byte, seq int64) interfaces.MutationContext {
	return newMutationContext(typ, payload, seq, types.TraceContext{})
}
