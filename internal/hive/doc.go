// Package hive 实现单元间可靠消息投递
//
// 每个单元是一个复制状态机。Manager 为每个目标单元维护一个邮箱：
// 出站队列按消息 ID 连续编号，收到对端确认后截断；入站游标保证每条
// 可靠消息在所有副本上按序且只应用一次。
//
// # 投递流程
//
//	发送方                                   接收方
//	PostReliable(mc, dsts, msg)  入队
//	  └─ 批量定时器 ─► PostMessages RPC ─►  比较瞬时游标，提交 hive.PostMessages 变更
//	                 ◄─ {transient, persistent}
//	  persistent > First ─► 提交 hive.AcknowledgeMessages 变更，截断队列
//
// 瞬时游标在提交前推进，使发送方无需等待共识延迟即可继续发送；
// 持久游标在变更应用后推进，是发送方截断队列的依据。
//
// # 线程模型
//
// 所有邮箱状态只在状态机线程中访问。RPC 在独立 goroutine 中执行，
// 完成回调通过任期执行器回到状态机线程，失去角色后回调被丢弃。
// Ping 处理器读取运行时数据，不进入状态机线程。
//
// # 同步屏障
//
// SyncWith(cellID) 在以下两个方向都完成后结束：
//   - 调用前对端发往本单元的可靠消息已在本单元应用
//   - 调用前本单元发往对端的可靠消息已被对端应用并确认
//
// 同一窗口内（SyncDelay）的多次调用共享一次 Ping。
package hive
