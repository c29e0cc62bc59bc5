// Package proto 包含 Hive 的 Protobuf 定义
//
// 使用以下命令生成 Go 代码：
//   go generate ./...
//
//go:generate protoc --go_out=. --go_opt=paths=source_relative hive/hive.proto
//go:generate protoc --go_out=. --go_opt=paths=source_relative automaton/automaton.proto
package proto
