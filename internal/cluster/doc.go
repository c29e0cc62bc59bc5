// Package cluster 在单个进程内运行多个单元
//
// 每个单元由一个状态机宿主（automaton.Host）与挂载其上的 Hive 管理器组成，
// 单元之间通过进程内网络（transport.Network）通信，地址解析由共享的
// 单元目录（directory.Directory）完成。
//
// 集群用于 cmd/hived 的本地演示与端到端场景测试：
//
//	c, err := cluster.New(cluster.Options{Config: cfg})
//	if err != nil {
//	    return err
//	}
//	if err := c.Start(ctx); err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	a, b := c.Cell(0), c.Cell(1)
//	err = a.Post(ctx, []types.CellID{b.ID}, msg)
//
// 快照周期（config.ClusterConfig.SnapshotPeriod）大于零时，集群定期为每个
// 单元保存快照；提供 SnapshotStore 时快照写入 badger。
package cluster
