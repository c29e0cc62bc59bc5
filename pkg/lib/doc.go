// Package lib 存放与 Hive 领域无关的通用工具
//
//   - future: Promise/Future，状态机线程与调用方之间传递异步结果
//
// 这里的包不依赖 pkg/types 以外的任何 go-hive 包。
package lib
