package cluster

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/dep2p/go-hive/internal/config"
	"github.com/dep2p/go-hive/internal/core/automaton"
	"github.com/dep2p/go-hive/internal/core/directory"
	"github.com/dep2p/go-hive/internal/core/transport"
	"github.com/dep2p/go-hive/internal/hive"
	"github.com/dep2p/go-hive/internal/util/logger"
	"github.com/dep2p/go-hive/pkg/types"
)

var log = logger.Logger("cluster")

// ErrClosed 集群已关闭
var ErrClosed = errors.New("cluster: closed")

const closeTimeout = 5 * time.Second

// ============================================================================
//                              单元
// ============================================================================

// Cell 集群中的一个单元
type Cell struct {
	ID      types.CellID
	Address string

	Host     *automaton.Host
	Manager  *hive.Manager
	Registry *hive.Registry
}

// Post 提交一个变更，在其中向 dsts 可靠投递 msg（任意线程）
//
// 变更应用后返回，此时消息已进入各目标邮箱的队列。
func (c *Cell) Post(ctx context.Context, dsts []types.CellID, msg *types.EncapsulatedMessage) error {
	payload, err := encodePost(dsts, msg)
	if err != nil {
		return err
	}
	_, err = c.Host.CommitMutation(mutationPost, payload).Get(ctx)
	return err
}

// Send 不可靠投递（任意线程）
func (c *Cell) Send(ctx context.Context, dsts []types.CellID, msg *types.EncapsulatedMessage) error {
	return c.Host.Call(ctx, func() error {
		c.Manager.PostUnreliable(dsts, msg)
		return nil
	})
}

// SyncWith 与另一个单元同步
func (c *Cell) SyncWith(ctx context.Context, other types.CellID) error {
	_, err := c.Manager.SyncWith(other, true).Get(ctx)
	return err
}

// ============================================================================
//                              选项
// ============================================================================

// Options 集群选项
type Options struct {
	// Config 统一配置，nil 时使用默认值
	Config *config.Config

	// Clock 时钟，nil 时使用系统时钟
	Clock clock.Clock

	// Network 进程内网络，nil 时按 Config.Cluster.NetworkLatency 创建
	Network *transport.Network

	// Snapshots 快照存储，nil 时快照只保存在内存
	Snapshots automaton.SnapshotStore

	// Registerer 指标注册器
	Registerer prometheus.Registerer

	// Setup 单元启动前调用，用于注册消息处理器
	Setup func(cell *Cell) error

	// StableIDs 按序号派生固定的单元 ID，重启后可以从持久化快照恢复
	StableIDs bool
}

// StableCellID 第 i 个单元的固定 ID
func StableCellID(i int) types.CellID {
	return types.CellID(uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("hive-cell-%d", i))).String())
}

// ============================================================================
//                              Cluster
// ============================================================================

// Cluster 进程内多单元集群
type Cluster struct {
	cfg       *config.Config
	clock     clock.Clock
	network   *transport.Network
	directory *directory.Directory
	cells     []*Cell

	mu      sync.Mutex
	started bool
	closed  bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New 创建集群并初始化所有单元
//
// 单元在 Start 之前不承担任何角色。
func New(opts Options) (*Cluster, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	clk := opts.Clock
	if clk == nil {
		clk = clock.New()
	}

	network := opts.Network
	if network == nil {
		network = transport.NewNetwork(
			transport.WithClock(clk),
			transport.WithLatency(cfg.Cluster.NetworkLatency))
	}

	c := &Cluster{
		cfg:       cfg,
		clock:     clk,
		network:   network,
		directory: directory.New(network.Channel),
	}

	for i := 0; i < cfg.Cluster.Cells; i++ {
		id := types.NewCellID()
		if opts.StableIDs {
			id = StableCellID(i)
		}
		cell, err := c.newCell(id, opts)
		if err != nil {
			c.stopHosts()
			return nil, fmt.Errorf("cluster: create cell %d: %w", i, err)
		}
		c.cells = append(c.cells, cell)
	}

	log.Info("集群已创建", "cells", len(c.cells))
	return c, nil
}

func (c *Cluster) newCell(id types.CellID, opts Options) (*Cell, error) {
	hostOpts := []automaton.Option{
		automaton.WithClock(c.clock),
		automaton.WithCommitDelay(c.cfg.Cluster.CommitDelay),
	}
	if opts.Snapshots != nil {
		hostOpts = append(hostOpts, automaton.WithSnapshotStore(opts.Snapshots))
	}

	cell := &Cell{
		ID:       id,
		Address:  "cell-" + id.ShortString(),
		Host:     automaton.NewHost(id, hostOpts...),
		Registry: hive.NewRegistry(),
	}

	managerOpts := []hive.Option{hive.WithClock(c.clock)}
	if opts.Registerer != nil {
		managerOpts = append(managerOpts, hive.WithRegisterer(opts.Registerer))
	}
	cell.Manager = hive.NewManager(c.cfg.Hive, cell.Host, c.directory, cell.Registry, managerOpts...)
	cell.Host.RegisterMutationHandler(mutationPost, cell.applyPost)

	if opts.Setup != nil {
		if err := opts.Setup(cell); err != nil {
			return nil, err
		}
	}

	if err := c.network.AddServer(cell.Address, cell.Manager.Service()); err != nil {
		return nil, err
	}
	c.directory.RegisterCell(types.CellDescriptor{
		CellID:        id,
		ConfigVersion: 1,
		Address:       cell.Address,
	})

	cell.Host.Start()
	return cell, nil
}

// Start 所有单元成为领导者，并启动周期性快照
func (c *Cluster) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if c.started {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, cell := range c.cells {
		g.Go(func() error {
			if err := cell.Host.Recover(gctx); err != nil {
				return fmt.Errorf("cluster: recover cell %s: %w", cell.ID, err)
			}
			return cell.Host.BecomeLeader(gctx)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.done = make(chan struct{})
	go c.snapshotLoop(runCtx)

	c.started = true
	log.Info("集群已启动", "cells", len(c.cells))
	return nil
}

// Close 停止所有单元
//
// 每个单元先失去领导权再停止宿主；所有错误合并返回。
func (c *Cluster) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	if c.cancel != nil {
		c.cancel()
		<-c.done
	}

	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	var err error
	for _, cell := range c.cells {
		err = multierr.Append(err, cell.Host.StopLeading(ctx))
	}
	c.stopHosts()

	log.Info("集群已关闭", "cells", len(c.cells))
	return err
}

func (c *Cluster) stopHosts() {
	for _, cell := range c.cells {
		c.network.RemoveServer(cell.Address)
		cell.Host.Stop()
	}
}

// ============================================================================
//                              访问器
// ============================================================================

// Cells 所有单元
func (c *Cluster) Cells() []*Cell {
	return c.cells
}

// Cell 第 i 个单元
func (c *Cluster) Cell(i int) *Cell {
	return c.cells[i]
}

// FindCell 按 ID 查找单元
func (c *Cluster) FindCell(id types.CellID) (*Cell, bool) {
	for _, cell := range c.cells {
		if cell.ID == id {
			return cell, true
		}
	}
	return nil, false
}

// Network 进程内网络
func (c *Cluster) Network() *transport.Network {
	return c.network
}

// Directory 单元目录
func (c *Cluster) Directory() *directory.Directory {
	return c.directory
}

// Diagnostics 采集所有单元的诊断信息
func (c *Cluster) Diagnostics(ctx context.Context) ([]*hive.Diagnostics, error) {
	out := make([]*hive.Diagnostics, 0, len(c.cells))
	for _, cell := range c.cells {
		d, err := cell.Manager.Diagnostics(ctx)
		if err != nil {
			return nil, fmt.Errorf("cluster: diagnostics of cell %s: %w", cell.ID, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// ============================================================================
//                              快照
// ============================================================================

// SaveSnapshots 为所有单元保存快照
func (c *Cluster) SaveSnapshots(ctx context.Context) error {
	var err error
	for _, cell := range c.cells {
		seq, serr := cell.Host.SaveSnapshot(ctx)
		if serr != nil {
			err = multierr.Append(err, fmt.Errorf("cluster: snapshot cell %s: %w", cell.ID, serr))
			continue
		}
		log.Debug("快照已保存", "cell", cell.ID.ShortString(), "seq", seq)
	}
	return err
}

func (c *Cluster) snapshotLoop(ctx context.Context) {
	defer close(c.done)

	period := c.cfg.Cluster.SnapshotPeriod
	if period <= 0 {
		<-ctx.Done()
		return
	}

	ticker := c.clock.Ticker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.SaveSnapshots(ctx); err != nil {
				log.Warn("周期性快照失败", "error", err)
			}
		}
	}
}
