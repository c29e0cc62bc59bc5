package hive

import (
	"errors"

	"github.com/dep2p/go-hive/pkg/types"
)

var (
	// ErrHandlerAlreadyRegistered 消息处理器已注册
	ErrHandlerAlreadyRegistered = errors.New("hive: handler already registered")

	// ErrHandlerNotFound 消息处理器不存在
	ErrHandlerNotFound = errors.New("hive: handler not found")

	// ErrMailboxExists 邮箱已存在
	ErrMailboxExists = errors.New("hive: mailbox already exists")
)

func errNotLeader(cellID types.CellID) error {
	return types.NewError(types.CodeUnavailable, "cell %s is not leading", cellID)
}

func errPeerStopped() error {
	return types.NewError(types.CodeUnavailable, "hive peer has stopped")
}

func errNoSuchMailbox(cellID types.CellID) error {
	return types.NewError(types.CodeNoSuchMailbox, "no such mailbox %s", cellID)
}

func errCellRemoved(cellID types.CellID) error {
	return types.NewError(types.CodeCellRemoved, "cell %s is removed", cellID)
}
