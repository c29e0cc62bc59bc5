package hive

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dep2p/go-hive/pkg/types"
)

const (
	kindReliable   = "reliable"
	kindUnreliable = "unreliable"
)

// Metrics Hive 指标
//
// 同一注册器上的多个单元共享指标向量，以 cell_id 标签区分。
type Metrics struct {
	syncPostingSeconds  prometheus.Counter
	asyncPostingSeconds prometheus.Counter
	reliablePosted      prometheus.Counter
	unreliablePosted    prometheus.Counter
	appliedReliable     prometheus.Counter
	appliedUnreliable   prometheus.Counter
	acknowledged        prometheus.Counter
	desyncs             prometheus.Counter
	syncRounds          prometheus.Counter
	mailboxes           prometheus.Gauge
	connected           prometheus.Gauge
	requests            *prometheus.CounterVec
}

// NewMetrics 创建指标，reg 为 nil 时不注册
func NewMetrics(reg prometheus.Registerer, cellID types.CellID) *Metrics {
	cell := prometheus.Labels{"cell_id": string(cellID)}

	counter := func(name, help string) prometheus.Counter {
		vec := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hive",
			Name:      name,
			Help:      help,
		}, []string{"cell_id"}))
		return vec.With(cell)
	}
	gauge := func(name, help string) prometheus.Gauge {
		vec := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "hive",
			Name:      name,
			Help:      help,
		}, []string{"cell_id"}))
		return vec.With(cell)
	}

	applied := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hive",
		Name:      "messages_applied_total",
		Help:      "Incoming messages applied by this cell.",
	}, []string{"cell_id", "kind"}))

	requests := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hive",
		Name:      "rpc_requests_total",
		Help:      "Hive RPC requests served, by method and result code.",
	}, []string{"cell_id", "method", "code"}))

	return &Metrics{
		syncPostingSeconds:  counter("sync_posting_seconds_total", "Time spent posting on the automaton goroutine."),
		asyncPostingSeconds: counter("async_posting_seconds_total", "Time spent in outgoing PostMessages calls."),
		reliablePosted:      counter("reliable_messages_posted_total", "Reliable messages enqueued (one per destination)."),
		unreliablePosted:    counter("unreliable_messages_sent_total", "Unreliable messages sent (one per destination)."),
		appliedReliable:     applied.With(prometheus.Labels{"cell_id": string(cellID), "kind": kindReliable}),
		appliedUnreliable:   applied.With(prometheus.Labels{"cell_id": string(cellID), "kind": kindUnreliable}),
		acknowledged:        counter("messages_acknowledged_total", "Outgoing messages truncated after acknowledgment."),
		desyncs:             counter("desync_total", "Protocol desynchronizations that forced a disconnect."),
		syncRounds:          counter("sync_rounds_total", "Underlying synchronization rounds (one Ping each)."),
		mailboxes:           gauge("mailboxes", "Mailboxes owned by this cell."),
		connected:           gauge("connected_mailboxes", "Mailboxes currently connected."),
		requests:            requests.MustCurryWith(cell),
	}
}

// register 注册收集器，已存在时复用
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if reg == nil {
		return c
	}
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		log.Warn("注册指标失败", "error", err)
	}
	return c
}

func (m *Metrics) addSyncPosting(d time.Duration)  { m.syncPostingSeconds.Add(d.Seconds()) }
func (m *Metrics) addAsyncPosting(d time.Duration) { m.asyncPostingSeconds.Add(d.Seconds()) }
func (m *Metrics) addReliablePosted(n int)         { m.reliablePosted.Add(float64(n)) }
func (m *Metrics) addUnreliablePosted(n int)       { m.unreliablePosted.Add(float64(n)) }
func (m *Metrics) addAcknowledged(n int)           { m.acknowledged.Add(float64(n)) }
func (m *Metrics) incDesync()                      { m.desyncs.Inc() }
func (m *Metrics) incSyncRounds()                  { m.syncRounds.Inc() }
func (m *Metrics) setMailboxCount(n int)           { m.mailboxes.Set(float64(n)) }
func (m *Metrics) incConnected(delta int)          { m.connected.Add(float64(delta)) }
func (m *Metrics) setConnected(n int)              { m.connected.Set(float64(n)) }

func (m *Metrics) incApplied(kind string) {
	if kind == kindReliable {
		m.appliedReliable.Inc()
		return
	}
	m.appliedUnreliable.Inc()
}

func (m *Metrics) incRequest(method string, err error) {
	m.requests.With(prometheus.Labels{"method": method, "code": types.CodeOf(err).String()}).Inc()
}

// SyncRounds 底层同步轮数
func (m *Metrics) SyncRounds() prometheus.Counter {
	return m.syncRounds
}

// ReliablePosted 可靠消息入队计数
func (m *Metrics) ReliablePosted() prometheus.Counter {
	return m.reliablePosted
}

// Acknowledged 已确认的出站消息计数
func (m *Metrics) Acknowledged() prometheus.Counter {
	return m.acknowledged
}

// Desyncs 失步计数
func (m *Metrics) Desyncs() prometheus.Counter {
	return m.desyncs
}
