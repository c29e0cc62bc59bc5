// Package logger 提供 Hive 的统一日志系统
//
// 基于标准库 log/slog，支持按子系统配置日志级别、环境变量配置和结构化日志。
//
// 使用示例:
//
//	package hive
//
//	import "github.com/dep2p/go-hive/internal/util/logger"
//
//	var log = logger.Logger("hive")
//
//	func foo() {
//	    log.Info("邮箱已连接", "src", self, "dst", cellID)
//	}
//
// 环境变量配置:
//
//	# 所有模块为 info，hive 模块为 debug
//	HIVE_LOG_LEVEL=hive=debug,info
//
//	# 使用 JSON 格式输出
//	HIVE_LOG_FORMAT=json
package logger

import (
	"io"
	"log/slog"
	"sync"
)

var loggers sync.Map // map[string]*entry

type entry struct {
	logger  *slog.Logger
	handler *subsystemHandler
}

// Logger 获取指定子系统的 Logger
//
// 同一子系统多次调用返回相同实例。
func Logger(subsystem string) *slog.Logger {
	if e, ok := loggers.Load(subsystem); ok {
		return e.(*entry).logger
	}

	h := newHandler(subsystem, ConfigFromEnv())
	e := &entry{logger: slog.New(h), handler: h}
	actual, _ := loggers.LoadOrStore(subsystem, e)
	return actual.(*entry).logger
}

// SetLevel 运行时调整子系统的日志级别
func SetLevel(subsystem string, level slog.Level) {
	Logger(subsystem)
	if e, ok := loggers.Load(subsystem); ok {
		e.(*entry).handler.level.Set(level)
	}
}

// SetGlobalLevel 调整所有已创建子系统的日志级别
func SetGlobalLevel(level slog.Level) {
	loggers.Range(func(_, value any) bool {
		value.(*entry).handler.level.Set(level)
		return true
	})
}

// SetOutput 设置日志输出目标
//
// 已创建的 Logger 同样会切换到新目标。
func SetOutput(w io.Writer) {
	outputMu.Lock()
	output = w
	outputMu.Unlock()
}

// Discard 返回丢弃所有日志的 Logger
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}
