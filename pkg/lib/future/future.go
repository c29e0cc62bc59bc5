// Package future 提供泛型的 Promise/Future 异步结果
//
// Hive 中的所有等待都是异步完成：RPC 回复、定时器、远端应用进度。
// Promise 由生产者持有并只能设置一次；Future 由消费者持有，
// 可以阻塞等待（带 context）或订阅回调。
//
// 使用示例:
//
//	p := future.NewPromise[int]()
//	go func() { p.Set(42) }()
//	v, err := p.Future().Get(ctx)
package future

import (
	"context"
	"errors"
	"sync"
)

// ErrAlreadySet Promise 已被设置
var ErrAlreadySet = errors.New("future: promise already set")

// Invoker 在特定执行上下文中运行回调
type Invoker interface {
	Invoke(fn func())
}

// Future 异步结果的只读视图
type Future[T any] struct {
	mu    sync.Mutex
	done  chan struct{}
	set   bool
	value T
	err   error
	subs  []func(T, error)
}

// Promise 异步结果的写入端
type Promise[T any] struct {
	f *Future[T]
}

// NewPromise 创建新的 Promise
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{f: &Future[T]{done: make(chan struct{})}}
}

// Future 返回关联的 Future
func (p *Promise[T]) Future() *Future[T] {
	return p.f
}

// Set 以值完成
//
// 重复设置会 panic。
func (p *Promise[T]) Set(v T) {
	if !p.f.complete(v, nil) {
		panic(ErrAlreadySet)
	}
}

// SetError 以错误完成
func (p *Promise[T]) SetError(err error) {
	var zero T
	if !p.f.complete(zero, err) {
		panic(ErrAlreadySet)
	}
}

// TrySet 尝试完成，已完成时返回 false
func (p *Promise[T]) TrySet(v T, err error) bool {
	return p.f.complete(v, err)
}

// IsSet 是否已完成
func (p *Promise[T]) IsSet() bool {
	return p.f.IsSet()
}

func (f *Future[T]) complete(v T, err error) bool {
	f.mu.Lock()
	if f.set {
		f.mu.Unlock()
		return false
	}
	f.set = true
	f.value = v
	f.err = err
	subs := f.subs
	f.subs = nil
	close(f.done)
	f.mu.Unlock()

	for _, fn := range subs {
		fn(v, err)
	}
	return true
}

// Done 完成时关闭的通道
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// IsSet 是否已完成
func (f *Future[T]) IsSet() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.set
}

// TryGet 非阻塞获取结果，未完成时 ok 为 false
func (f *Future[T]) TryGet() (v T, err error, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.set {
		return v, nil, false
	}
	return f.value, f.err, true
}

// Get 等待结果
//
// ctx 取消时返回 ctx.Err()，不影响 Future 本身。
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Subscribe 注册完成回调
//
// 已完成时在当前 goroutine 立即调用，否则在完成者的 goroutine 中调用。
func (f *Future[T]) Subscribe(fn func(T, error)) {
	f.mu.Lock()
	if !f.set {
		f.subs = append(f.subs, fn)
		f.mu.Unlock()
		return
	}
	v, err := f.value, f.err
	f.mu.Unlock()
	fn(v, err)
}

// SubscribeVia 注册完成回调，回调通过 inv 执行
func (f *Future[T]) SubscribeVia(inv Invoker, fn func(T, error)) {
	f.Subscribe(func(v T, err error) {
		inv.Invoke(func() { fn(v, err) })
	})
}

// ============================================================================
//                              构造辅助
// ============================================================================

// Ready 返回已成功完成的 Future
func Ready[T any](v T) *Future[T] {
	p := NewPromise[T]()
	p.Set(v)
	return p.Future()
}

// Failed 返回已失败的 Future
func Failed[T any](err error) *Future[T] {
	p := NewPromise[T]()
	p.SetError(err)
	return p.Future()
}

// Void 空结果的 Future
type Void = Future[struct{}]

// VoidReady 返回已成功完成的空结果 Future
func VoidReady() *Void {
	return Ready(struct{}{})
}

// All 等待所有 Future 成功
//
// 任意一个失败时立即以该错误完成。
func All[T any](fs ...*Future[T]) *Future[[]T] {
	p := NewPromise[[]T]()
	if len(fs) == 0 {
		p.Set(nil)
		return p.Future()
	}

	var (
		mu        sync.Mutex
		remaining = len(fs)
		values    = make([]T, len(fs))
	)
	for i, f := range fs {
		f.Subscribe(func(v T, err error) {
			if err != nil {
				p.TrySet(nil, err)
				return
			}
			mu.Lock()
			values[i] = v
			remaining--
			last := remaining == 0
			mu.Unlock()
			if last {
				p.TrySet(values, nil)
			}
		})
	}
	return p.Future()
}

// Discard 将任意 Future 转为空结果 Future
func Discard[T any](f *Future[T]) *Void {
	p := NewPromise[struct{}]()
	f.Subscribe(func(_ T, err error) {
		p.TrySet(struct{}{}, err)
	})
	return p.Future()
}

// Async 通过 inv 执行 fn，返回其结果
func Async[T any](inv Invoker, fn func() (T, error)) *Future[T] {
	p := NewPromise[T]()
	inv.Invoke(func() {
		v, err := fn()
		p.TrySet(v, err)
	})
	return p.Future()
}
