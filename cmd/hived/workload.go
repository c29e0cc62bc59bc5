package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"

	"github.com/dep2p/go-hive/internal/cluster"
	"github.com/dep2p/go-hive/pkg/interfaces"
	"github.com/dep2p/go-hive/pkg/types"
)

// greetingType 演示消息类型
const greetingType = "demo.Greeting"

// syncEvery 每隔多少条消息做一次同步
const syncEvery = 10

// setupDemo 为单元注册演示消息处理器
func setupDemo(cell *cluster.Cell) error {
	return cell.Registry.Register(greetingType, func(mc interfaces.MutationContext) error {
		log.Info("收到问候",
			"cell", cell.ID.ShortString(),
			"seq", mc.Sequence(),
			"text", string(mc.Payload()))
		return nil
	})
}

// registerWorkload 返回注册演示负载的 Invoke 函数，interval 为 0 时不启动
func registerWorkload(interval time.Duration) func(lc fx.Lifecycle, c *cluster.Cluster) {
	return func(lc fx.Lifecycle, c *cluster.Cluster) {
		if interval <= 0 {
			return
		}

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})

		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				go func() {
					defer close(done)
					runWorkload(ctx, c, interval)
				}()
				return nil
			},
			OnStop: func(context.Context) error {
				cancel()
				<-done
				return nil
			},
		})
	}
}

// runWorkload 轮流由每个单元向下一个单元发送问候
func runWorkload(ctx context.Context, c *cluster.Cluster, interval time.Duration) {
	cells := c.Cells()
	if len(cells) < 2 {
		log.Warn("单元数不足，演示负载未启动", "cells", len(cells))
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for n := 1; ; n++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		src := cells[n%len(cells)]
		dst := cells[(n+1)%len(cells)]
		text := fmt.Sprintf("hello #%d from %s", n, src.ID.ShortString())
		msg := types.NewEncapsulatedMessage(greetingType, []byte(text), types.NewTraceContext())

		if err := src.Post(ctx, []types.CellID{dst.ID}, msg); err != nil {
			log.Warn("投递问候失败", "src", src.ID.ShortString(), "dst", dst.ID.ShortString(), "error", err)
			continue
		}

		if n%syncEvery != 0 {
			continue
		}

		start := time.Now()
		if err := dst.SyncWith(ctx, src.ID); err != nil {
			log.Warn("同步失败", "src", dst.ID.ShortString(), "dst", src.ID.ShortString(), "error", err)
			continue
		}
		log.Info("同步完成", "src", dst.ID.ShortString(), "dst", src.ID.ShortString(), "elapsed", time.Since(start))
	}
}
