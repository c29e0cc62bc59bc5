package types

import (
	"errors"
	"fmt"
)

// ============================================================================
//                              错误码
// ============================================================================

// ErrorCode Hive 错误码
type ErrorCode int

const (
	// CodeOK 无错误
	CodeOK ErrorCode = iota
	// CodeUnavailable 对端不可达或本地失去领导权
	CodeUnavailable
	// CodeMailboxNotCreatedYet 接收方邮箱尚未创建，发送方稍后重试
	CodeMailboxNotCreatedYet
	// CodeNoSuchMailbox 邮箱不存在
	CodeNoSuchMailbox
	// CodeCellRemoved 单元已被注销
	CodeCellRemoved
	// CodeTimeout 操作超时
	CodeTimeout
	// CodeInvalidMessage 消息格式错误
	CodeInvalidMessage
	// CodeNoSuchMethod 未知 RPC 方法
	CodeNoSuchMethod
)

// String 返回错误码名称
func (c ErrorCode) String() string {
	switch c {
	case CodeOK:
		return "OK"
	case CodeUnavailable:
		return "Unavailable"
	case CodeMailboxNotCreatedYet:
		return "MailboxNotCreatedYet"
	case CodeNoSuchMailbox:
		return "NoSuchMailbox"
	case CodeCellRemoved:
		return "CellRemoved"
	case CodeTimeout:
		return "Timeout"
	case CodeInvalidMessage:
		return "InvalidMessage"
	case CodeNoSuchMethod:
		return "NoSuchMethod"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// ============================================================================
//                              Error
// ============================================================================

// Error 带错误码的 Hive 错误
//
// errors.Is 按错误码匹配：
//
//	errors.Is(err, types.ErrUnavailable)
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// NewError 创建错误
func NewError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WrapError 包装底层错误
func WrapError(code ErrorCode, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Error 实现 error 接口
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Code.String()
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap 返回底层错误
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is 按错误码匹配
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// CodeOf 提取错误链中第一个 Hive 错误码
//
// nil 返回 CodeOK，非 Hive 错误返回 CodeUnavailable。
func CodeOf(err error) ErrorCode {
	if err == nil {
		return CodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnavailable
}

// ============================================================================
//                              公共错误
// ============================================================================

var (
	// ErrUnavailable 不可用
	ErrUnavailable = &Error{Code: CodeUnavailable, Message: "unavailable"}

	// ErrMailboxNotCreatedYet 邮箱尚未创建
	ErrMailboxNotCreatedYet = &Error{Code: CodeMailboxNotCreatedYet, Message: "mailbox is not created yet"}

	// ErrNoSuchMailbox 邮箱不存在
	ErrNoSuchMailbox = &Error{Code: CodeNoSuchMailbox, Message: "no such mailbox"}

	// ErrCellRemoved 单元已注销
	ErrCellRemoved = &Error{Code: CodeCellRemoved, Message: "cell is removed"}

	// ErrTimeout 超时
	ErrTimeout = &Error{Code: CodeTimeout, Message: "timeout"}

	// ErrInvalidMessage 消息格式错误
	ErrInvalidMessage = &Error{Code: CodeInvalidMessage, Message: "invalid message"}

	// ErrNoSuchMethod 未知方法
	ErrNoSuchMethod = &Error{Code: CodeNoSuchMethod, Message: "no such method"}
)
