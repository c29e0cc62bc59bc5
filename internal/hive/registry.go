package hive

import (
	"sort"
	"sync"

	"github.com/dep2p/go-hive/pkg/interfaces"
)

// MessageHandler 消息处理器
//
// 在嵌套变更上下文中执行：mc.Type() 为消息类型，mc.Payload() 为消息载荷。
// 处理器可以在 mc 内继续调用 PostReliable。
type MessageHandler func(mc interfaces.MutationContext) error

// Registry 消息处理器注册表
//
// 按类型标签分发。注册应在单元开始应用变更前完成，
// 否则各副本看到的处理器集合可能不同。
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]MessageHandler
}

// NewRegistry 创建注册表
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]MessageHandler),
	}
}

// Register 注册处理器
func (r *Registry) Register(typ string, handler MessageHandler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[typ]; exists {
		return ErrHandlerAlreadyRegistered
	}

	r.handlers[typ] = handler
	return nil
}

// Unregister 注销处理器
func (r *Registry) Unregister(typ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[typ]; !exists {
		return ErrHandlerNotFound
	}

	delete(r.handlers, typ)
	return nil
}

// Get 获取处理器
func (r *Registry) Get(typ string) (MessageHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handler, exists := r.handlers[typ]
	return handler, exists
}

// List 已注册的类型，按名称排序
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.handlers))
	for typ := range r.handlers {
		types = append(types, typ)
	}
	sort.Strings(types)
	return types
}

// Dispatch 按 mc.Type() 分发
func (r *Registry) Dispatch(mc interfaces.MutationContext) error {
	handler, ok := r.Get(mc.Type())
	if !ok {
		return ErrHandlerNotFound
	}
	return handler(mc)
}
