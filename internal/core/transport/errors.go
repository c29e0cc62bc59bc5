package transport

import "errors"

var (
	// ErrUnreachable 地址不可达（不存在或已断开）
	ErrUnreachable = errors.New("transport: address unreachable")

	// ErrNoSuchService 服务不存在
	ErrNoSuchService = errors.New("transport: no such service")

	// ErrDuplicateAddress 地址已被占用
	ErrDuplicateAddress = errors.New("transport: address already in use")
)
