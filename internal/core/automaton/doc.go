// Package automaton 提供单副本的进程内复制状态机宿主
//
// Host 实现 interfaces.Automaton，是 Hive 的参考宿主：
//
//   - 单个状态机 goroutine 串行执行所有任务（无界 FIFO 队列）
//   - 变更按提交顺序应用，可配置提交延迟以模拟共识延迟
//   - 任期（epoch）在每次角色变化时递增，任期执行器丢弃过期任务，
//     任期上下文在失去角色时取消
//   - 快照按分段优先级保存/加载，可选地持久化到 SnapshotStore
//   - Recover 从最新快照加上内存日志回放重建状态（回放期间 IsRecovering 为 true）
//
// 使用示例:
//
//	host := automaton.NewHost(cellID, automaton.WithCommitDelay(time.Millisecond))
//	host.Start()
//	defer host.Stop()
//
//	hive := hive.NewManager(cfg, cellID, host, directory, registry)
//	_ = host.BecomeLeader(ctx)
package automaton
