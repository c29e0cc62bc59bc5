package transport

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-hive/pkg/types"
)

type echoService struct {
	block chan struct{}
}

func (s *echoService) Name() string { return "echo" }

func (s *echoService) Handle(ctx context.Context, method string, body []byte) ([]byte, error) {
	switch method {
	case "Echo":
		body[0] = 'X' // 服务端修改请求不影响调用方
		return body, nil
	case "Fail":
		return nil, types.ErrNoSuchMailbox
	case "Block":
		select {
		case <-s.block:
		case <-ctx.Done():
		}
		return nil, nil
	}
	return nil, types.ErrNoSuchMethod
}

func TestChannel_Invoke(t *testing.T) {
	n := NewNetwork()
	require.NoError(t, n.AddServer("a", &echoService{}))
	assert.ErrorIs(t, n.AddServer("a", &echoService{}), ErrDuplicateAddress)

	req := []byte("hello")
	rsp, err := n.Channel("a").Invoke(context.Background(), "echo", "Echo", req)
	require.NoError(t, err)
	assert.Equal(t, "Xello", string(rsp))
	assert.Equal(t, "hello", string(req))
	assert.Equal(t, 1, n.CallCount("a", "echo", "Echo"))
}

func TestChannel_ServerErrorPassesThrough(t *testing.T) {
	n := NewNetwork()
	require.NoError(t, n.AddServer("a", &echoService{}))

	_, err := n.Channel("a").Invoke(context.Background(), "echo", "Fail", nil)
	assert.ErrorIs(t, err, types.ErrNoSuchMailbox)
}

func TestChannel_Unreachable(t *testing.T) {
	n := NewNetwork()
	require.NoError(t, n.AddServer("a", &echoService{}))

	_, err := n.Channel("missing").Invoke(context.Background(), "echo", "Echo", []byte("x"))
	assert.ErrorIs(t, err, types.ErrUnavailable)
	assert.ErrorIs(t, err, ErrUnreachable)

	n.Enable("a", false)
	_, err = n.Channel("a").Invoke(context.Background(), "echo", "Echo", []byte("x"))
	assert.ErrorIs(t, err, types.ErrUnavailable)
	assert.Equal(t, 0, n.CallCount("a", "echo", "Echo"))

	n.Enable("a", true)
	_, err = n.Channel("a").Invoke(context.Background(), "echo", "Echo", []byte("x"))
	assert.NoError(t, err)
}

func TestChannel_Timeout(t *testing.T) {
	n := NewNetwork()
	svc := &echoService{block: make(chan struct{})}
	require.NoError(t, n.AddServer("a", svc))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := n.Channel("a").Invoke(ctx, "echo", "Block", nil)
	assert.ErrorIs(t, err, types.ErrTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestChannel_Filter(t *testing.T) {
	n := NewNetwork()
	require.NoError(t, n.AddServer("a", &echoService{}))

	drop := errors.New("dropped")
	n.SetFilter(func(r Request) error {
		if r.Method == "Echo" {
			return drop
		}
		return nil
	})

	_, err := n.Channel("a").Invoke(context.Background(), "echo", "Echo", []byte("x"))
	assert.ErrorIs(t, err, drop)
	assert.ErrorIs(t, err, types.ErrUnavailable)

	n.SetFilter(nil)
	_, err = n.Channel("a").Invoke(context.Background(), "echo", "Echo", []byte("x"))
	assert.NoError(t, err)
}
