// Package batcher 提供异步合并执行器
//
// 在一个延迟窗口内到达的多次 Run 调用共享同一次底层执行与同一个结果。
// 窗口关闭后到达的调用开启新的窗口。
package batcher

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/dep2p/go-hive/pkg/lib/future"
)

// Batcher 合并执行器
type Batcher[T any] struct {
	clock clock.Clock
	delay time.Duration
	fn    func() *future.Future[T]

	mu      sync.Mutex
	pending *future.Promise[T]
	timer   *clock.Timer
	runs    int
}

// New 创建合并执行器
//
// fn 在窗口关闭时被调用一次，其结果分发给窗口内的所有调用者。
func New[T any](c clock.Clock, delay time.Duration, fn func() *future.Future[T]) *Batcher[T] {
	if c == nil {
		c = clock.New()
	}
	return &Batcher[T]{clock: c, delay: delay, fn: fn}
}

// Run 加入当前窗口
func (b *Batcher[T]) Run() *future.Future[T] {
	b.mu.Lock()
	if b.pending != nil {
		f := b.pending.Future()
		b.mu.Unlock()
		return f
	}

	p := future.NewPromise[T]()
	b.pending = p
	if b.delay > 0 {
		b.timer = b.clock.AfterFunc(b.delay, func() { b.fire(p) })
		b.mu.Unlock()
		return p.Future()
	}
	b.mu.Unlock()

	b.fire(p)
	return p.Future()
}

func (b *Batcher[T]) fire(p *future.Promise[T]) {
	b.mu.Lock()
	if b.pending != p {
		b.mu.Unlock()
		return
	}
	b.pending = nil
	b.timer = nil
	b.runs++
	b.mu.Unlock()

	b.fn().Subscribe(func(v T, err error) {
		p.TrySet(v, err)
	})
}

// Cancel 以 err 结束当前窗口
func (b *Batcher[T]) Cancel(err error) {
	b.mu.Lock()
	p := b.pending
	b.pending = nil
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.mu.Unlock()

	if p != nil {
		var zero T
		p.TrySet(zero, err)
	}
}

// Runs 底层执行次数
func (b *Batcher[T]) Runs() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.runs
}
