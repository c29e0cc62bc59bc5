package interfaces

import (
	"context"

	"github.com/dep2p/go-hive/pkg/lib/future"
	"github.com/dep2p/go-hive/pkg/types"
)

// Invoker 在特定执行上下文中运行任务
type Invoker interface {
	// Invoke 提交任务，不阻塞调用者
	Invoke(fn func())
}

// MutationContext 变更应用上下文
//
// 只在变更处理器执行期间有效。需要"在变更内部"才能执行的操作
// （例如可靠投递）显式接收该令牌，而不是依赖隐式的线程局部状态。
type MutationContext interface {
	// Type 变更类型
	Type() string

	// Payload 变更载荷
	Payload() []byte

	// Sequence 变更在日志中的序号
	Sequence() int64

	// Trace 追踪上下文
	Trace() types.TraceContext

	// Nested 派生嵌套上下文，用于在同一次应用中分发子消息
	Nested(typ string, payload []byte, trace types.TraceContext) MutationContext
}

// MutationHandler 变更处理器
//
// 在所有副本上以相同顺序确定性地执行。
type MutationHandler func(mc MutationContext) error

// SnapshotSection 快照分段
//
// 保存与加载按 Priority 升序进行。
type SnapshotSection struct {
	Name     string
	Priority int
	Save     func() ([]byte, error)
	Load     func(data []byte) error
}

// AutomatonPart 挂载在状态机上的组件
//
// 所有回调都在状态机线程中执行。
type AutomatonPart interface {
	// OnLeaderActive 成为领导者且日志已追平
	OnLeaderActive()

	// OnStopLeading 失去领导权
	OnStopLeading()

	// OnFollowerRecoveryComplete 追随者恢复完成
	OnFollowerRecoveryComplete()

	// OnStopFollowing 停止追随
	OnStopFollowing()

	// Clear 清空所有状态（加载快照前调用）
	Clear()

	// SnapshotSections 返回需要持久化的分段
	SnapshotSections() []SnapshotSection
}

// Automaton 复制状态机
type Automaton interface {
	// CellID 本单元 ID
	CellID() types.CellID

	// AutomatonInvoker 状态机线程执行器
	AutomatonInvoker() Invoker

	// EpochInvoker 绑定当前任期的执行器
	//
	// 任期变化（失去角色）后提交的任务会被丢弃。
	EpochInvoker() Invoker

	// EpochContext 当前任期的上下文，失去角色时取消
	EpochContext() context.Context

	// RegisterMutationHandler 注册变更处理器
	RegisterMutationHandler(typ string, h MutationHandler)

	// CommitMutation 提交变更
	//
	// 只能在领导者上调用；变更在本地应用后 Future 完成。
	CommitMutation(typ string, payload []byte) *future.Future[struct{}]

	// RegisterPart 注册组件
	RegisterPart(part AutomatonPart)

	// IsLeader 是否为活跃领导者
	IsLeader() bool

	// IsRecovering 是否正在恢复（回放快照或日志）
	IsRecovering() bool
}
