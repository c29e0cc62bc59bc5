// Package main 提供 hived 命令行入口
//
// hived 在一个进程内启动多个单元，单元之间通过 Hive 可靠地投递消息，
// 用于本地演示与调试。
//
// 使用方法:
//
//	hived --config hive.yaml
//	hived --cells 5 --introspect 127.0.0.1:6060 --workload 1s
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}
