// Package engine 定义存储引擎接口
//
// 默认实现位于 engine/badger。
package engine
