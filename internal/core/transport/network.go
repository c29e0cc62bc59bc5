package transport

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/dep2p/go-hive/internal/util/logger"
	"github.com/dep2p/go-hive/pkg/interfaces"
	"github.com/dep2p/go-hive/pkg/types"
)

var log = logger.Logger("transport")

// Request 在途请求，供过滤器检查
type Request struct {
	Address string
	Service string
	Method  string
	Body    []byte
}

// Filter 请求过滤器，返回非 nil 错误时请求失败且不会到达服务端
type Filter func(req Request) error

// Option 网络选项
type Option func(*Network)

// WithClock 设置时钟
func WithClock(c clock.Clock) Option {
	return func(n *Network) { n.clock = c }
}

// WithLatency 设置单向延迟
func WithLatency(d time.Duration) Option {
	return func(n *Network) { n.latency = d }
}

type endpoint struct {
	services map[string]interfaces.Service
	enabled  bool
}

type callKey struct {
	address string
	service string
	method  string
}

// Network 进程内 RPC 网络
type Network struct {
	clock clock.Clock

	mu        sync.RWMutex
	endpoints map[string]*endpoint
	latency   time.Duration
	filter    Filter
	counts    map[callKey]int
}

// NewNetwork 创建网络
func NewNetwork(opts ...Option) *Network {
	n := &Network{
		clock:     clock.New(),
		endpoints: make(map[string]*endpoint),
		counts:    make(map[callKey]int),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// AddServer 在 address 上注册服务
func (n *Network) AddServer(address string, services ...interfaces.Service) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.endpoints[address]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateAddress, address)
	}
	ep := &endpoint{services: make(map[string]interfaces.Service), enabled: true}
	for _, svc := range services {
		ep.services[svc.Name()] = svc
	}
	n.endpoints[address] = ep
	log.Debug("注册服务端", "address", address, "services", len(services))
	return nil
}

// RemoveServer 移除地址
func (n *Network) RemoveServer(address string) {
	n.mu.Lock()
	delete(n.endpoints, address)
	n.mu.Unlock()
}

// Enable 连通或断开地址
func (n *Network) Enable(address string, enabled bool) {
	n.mu.Lock()
	if ep, ok := n.endpoints[address]; ok {
		ep.enabled = enabled
	}
	n.mu.Unlock()
	log.Debug("调整地址连通性", "address", address, "enabled", enabled)
}

// SetLatency 设置单向延迟
func (n *Network) SetLatency(d time.Duration) {
	n.mu.Lock()
	n.latency = d
	n.mu.Unlock()
}

// SetFilter 设置请求过滤器，nil 清除
func (n *Network) SetFilter(f Filter) {
	n.mu.Lock()
	n.filter = f
	n.mu.Unlock()
}

// CallCount 到达服务端的调用次数
func (n *Network) CallCount(address, service, method string) int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.counts[callKey{address, service, method}]
}

// Channel 返回指向 address 的通道
func (n *Network) Channel(address string) interfaces.Channel {
	return &channel{network: n, address: address}
}

func (n *Network) lookup(address, service string) (interfaces.Service, time.Duration, Filter, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	ep, ok := n.endpoints[address]
	if !ok || !ep.enabled {
		return nil, 0, nil, ErrUnreachable
	}
	svc, ok := ep.services[service]
	if !ok {
		return nil, 0, nil, fmt.Errorf("%w: %s", ErrNoSuchService, service)
	}
	return svc, n.latency, n.filter, nil
}

func (n *Network) reachable(address string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	ep, ok := n.endpoints[address]
	return ok && ep.enabled
}

func (n *Network) count(address, service, method string) {
	n.mu.Lock()
	n.counts[callKey{address, service, method}]++
	n.mu.Unlock()
}

func (n *Network) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := n.clock.Timer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type channel struct {
	network *Network
	address string
}

func (c *channel) Address() string {
	return c.address
}

type result struct {
	body []byte
	err  error
}

// Invoke 调用远端方法
func (c *channel) Invoke(ctx context.Context, service, method string, body []byte) ([]byte, error) {
	n := c.network
	req := Request{Address: c.address, Service: service, Method: method, Body: clone(body)}

	svc, latency, filter, err := n.lookup(c.address, service)
	if err != nil {
		return nil, wrapError(c.address, method, err)
	}
	if filter != nil {
		if err := filter(req); err != nil {
			return nil, wrapError(c.address, method, err)
		}
	}
	if err := n.sleep(ctx, latency); err != nil {
		return nil, wrapError(c.address, method, err)
	}
	if !n.reachable(c.address) {
		return nil, wrapError(c.address, method, ErrUnreachable)
	}
	n.count(c.address, service, method)

	done := make(chan result, 1)
	go func() {
		rsp, err := svc.Handle(ctx, method, req.Body)
		done <- result{body: clone(rsp), err: err}
	}()

	var res result
	select {
	case res = <-done:
	case <-ctx.Done():
		return nil, wrapError(c.address, method, ctx.Err())
	}

	if err := n.sleep(ctx, latency); err != nil {
		return nil, wrapError(c.address, method, err)
	}
	// 回复在途时地址被断开，视为丢失
	if !n.reachable(c.address) {
		return nil, wrapError(c.address, method, ErrUnreachable)
	}
	return res.body, res.err
}

// wrapError 将传输错误转换为 Hive 错误码；服务端返回的错误原样透传
func wrapError(address, method string, err error) error {
	var herr *types.Error
	if errors.As(err, &herr) {
		return err
	}
	code := types.CodeUnavailable
	if errors.Is(err, context.DeadlineExceeded) {
		code = types.CodeTimeout
	}
	return types.WrapError(code, err, "%s to %s failed", method, address)
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
