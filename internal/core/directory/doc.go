// Package directory 提供内存单元目录
//
// Directory 记录单元 ID 到描述符（配置版本、地址）的映射，并通过
// ChannelFactory 为有地址的单元创建通道。描述符只在版本更高时覆盖。
//
// Synchronize 对比对方已知的单元列表：
//   - 对方已知但本地不存在的单元进入 CellsToUnregister
//   - 本地存在但对方未知或版本更低的单元进入 CellsToReconfigure
package directory
