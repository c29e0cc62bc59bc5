// Package interfaces 定义 Hive 的公共接口
//
// Hive 本身只依赖这里的接口，具体实现由宿主提供：
//
//   - automaton.go  - 复制状态机（变更提交、角色回调、快照分段）
//   - channel.go    - RPC 通道与服务
//   - directory.go  - 单元目录（单元 ID → 通道/配置版本）
//
// 仓库内的参考实现位于 internal/core 下：
//
//   - internal/core/automaton  - 单副本进程内状态机
//   - internal/core/transport  - 进程内 RPC 网络
//   - internal/core/directory  - 内存单元目录
package interfaces
