// Package delayed 提供可取消的延迟任务执行器
//
// Submit 返回 Cookie，重新调度 = 取消旧 Cookie 后重新提交。
// 任务到期后通过调用方给定的 Invoker 执行（通常是状态机的任期执行器），
// 执行前再次检查取消标记，因此 Cancel 之后任务保证不会运行。
package delayed

import (
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
)

// Invoker 任务执行上下文
type Invoker interface {
	Invoke(fn func())
}

// Executor 延迟任务执行器
type Executor struct {
	clock clock.Clock
}

// New 创建执行器
func New(c clock.Clock) *Executor {
	if c == nil {
		c = clock.New()
	}
	return &Executor{clock: c}
}

// Clock 返回执行器使用的时钟
func (e *Executor) Clock() clock.Clock {
	return e.clock
}

// Cookie 已提交任务的取消令牌
type Cookie struct {
	timer    *clock.Timer
	canceled atomic.Bool
	fired    atomic.Bool
}

// Submit 在 delay 之后通过 inv 执行 fn
//
// inv 为 nil 时在定时器 goroutine 中直接执行。
func (e *Executor) Submit(fn func(), delay time.Duration, inv Invoker) *Cookie {
	c := &Cookie{}
	run := func() {
		if c.canceled.Load() {
			return
		}
		c.fired.Store(true)
		fn()
	}
	c.timer = e.clock.AfterFunc(delay, func() {
		if inv == nil {
			run()
			return
		}
		inv.Invoke(run)
	})
	return c
}

// Cancel 取消任务，返回任务是否尚未执行
func (c *Cookie) Cancel() bool {
	if c == nil {
		return false
	}
	c.canceled.Store(true)
	c.timer.Stop()
	return !c.fired.Load()
}

// Active 任务是否仍待执行
func (c *Cookie) Active() bool {
	return c != nil && !c.canceled.Load() && !c.fired.Load()
}

// CancelAndClear 取消 *cookie 并置空
func CancelAndClear(cookie **Cookie) {
	if *cookie != nil {
		(*cookie).Cancel()
		*cookie = nil
	}
}
