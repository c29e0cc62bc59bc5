package introspect

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/pprof"
	"runtime"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dep2p/go-hive/internal/hive"
	"github.com/dep2p/go-hive/internal/util/logger"
	"github.com/dep2p/go-hive/pkg/types"
)

var log = logger.Logger("introspect")

// DefaultAddr 默认监听地址
const DefaultAddr = "127.0.0.1:6060"

// collectTimeout 采集诊断信息的超时
const collectTimeout = 5 * time.Second

// ============================================================================
//                              配置
// ============================================================================

// Config 服务配置
type Config struct {
	// Addr 监听地址，默认 "127.0.0.1:6060"
	Addr string

	// Source 可选的诊断信息来源
	Source DiagnosticsSource

	// Gatherer 可选的指标采集器，设置后提供 /metrics
	Gatherer prometheus.Gatherer

	// CustomHandlers 自定义处理器
	CustomHandlers map[string]http.HandlerFunc
}

// DiagnosticsSource 诊断信息来源
type DiagnosticsSource interface {
	Diagnostics(ctx context.Context) ([]*hive.Diagnostics, error)
}

// ============================================================================
//                              Server
// ============================================================================

// Server 本地自省 HTTP 服务
type Server struct {
	config Config

	// HTTP 服务器
	server   *http.Server
	listener net.Listener

	// 状态
	running   bool
	startTime time.Time

	mu sync.Mutex
}

// New 创建自省服务
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}

	return &Server{
		config: cfg,
	}
}

// Handler 返回路由，不启动监听
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// 自省端点
	mux.HandleFunc("/debug/introspect", s.handleIntrospect)
	mux.HandleFunc("/debug/introspect/cells", s.handleCells)
	mux.HandleFunc("/debug/introspect/cells/{id}", s.handleCell)
	mux.HandleFunc("/debug/introspect/runtime", s.handleRuntime)

	// 指标
	if s.config.Gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(s.config.Gatherer, promhttp.HandlerOpts{}))
	}

	// pprof 端点
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	// 健康检查
	mux.HandleFunc("/health", s.handleHealth)

	for path, handler := range s.config.CustomHandlers {
		mux.HandleFunc(path, handler)
	}
	return mux
}

// Start 启动服务
func (s *Server) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	listener, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return err
	}
	s.listener = listener

	s.server = &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("自省服务异常退出", "error", err)
		}
	}()

	s.running = true
	s.startTime = time.Now()
	log.Info("自省服务已启动", "addr", listener.Addr().String())
	return nil
}

// Stop 停止服务
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		log.Error("关闭自省服务失败", "error", err)
		return err
	}

	s.running = false
	log.Info("自省服务已停止")
	return nil
}

// Addr 返回实际监听地址
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.config.Addr
}

// ============================================================================
//                              响应结构
// ============================================================================

// IntrospectResponse 完整诊断响应
type IntrospectResponse struct {
	Timestamp time.Time           `json:"timestamp"`
	Uptime    string              `json:"uptime"`
	Cells     []*hive.Diagnostics `json:"cells,omitempty"`
	Summary   *Summary            `json:"summary,omitempty"`
	Runtime   *RuntimeInfo        `json:"runtime,omitempty"`
	Error     string              `json:"error,omitempty"`
}

// Summary 汇总信息
type Summary struct {
	Cells              int `json:"cells"`
	Leaders            int `json:"leaders"`
	Mailboxes          int `json:"mailboxes"`
	ConnectedMailboxes int `json:"connected_mailboxes"`
	QueuedMessages     int `json:"queued_messages"`
	PendingSyncs       int `json:"pending_syncs"`
}

// RuntimeInfo 运行时信息
type RuntimeInfo struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	NumCPU       int    `json:"num_cpu"`
	MemAlloc     uint64 `json:"mem_alloc"`
	MemSys       uint64 `json:"mem_sys"`
	NumGC        uint32 `json:"num_gc"`
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    string    `json:"uptime,omitempty"`
}

// ============================================================================
//                              HTTP 处理器
// ============================================================================

// handleIntrospect 处理完整诊断请求
func (s *Server) handleIntrospect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := IntrospectResponse{
		Timestamp: time.Now(),
		Uptime:    time.Since(s.startTime).String(),
		Runtime:   s.collectRuntimeInfo(),
	}

	cells, err := s.collectCells(r.Context())
	if err != nil {
		response.Error = err.Error()
	} else {
		response.Cells = cells
		response.Summary = summarize(cells)
	}

	writeJSON(w, response)
}

// handleCells 处理单元列表请求
func (s *Server) handleCells(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	cells, err := s.collectCells(r.Context())
	if err != nil {
		http.Error(w, "Cell info not available", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, cells)
}

// handleCell 处理单个单元请求
func (s *Server) handleCell(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	cells, err := s.collectCells(r.Context())
	if err != nil {
		http.Error(w, "Cell info not available", http.StatusServiceUnavailable)
		return
	}

	id := types.CellID(r.PathValue("id"))
	for _, d := range cells {
		if d.CellID == id || d.CellID.ShortString() == string(id) {
			writeJSON(w, d)
			return
		}
	}
	http.Error(w, "No such cell", http.StatusNotFound)
}

// handleRuntime 处理运行时信息请求
func (s *Server) handleRuntime(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, s.collectRuntimeInfo())
}

// handleHealth 处理健康检查请求
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Uptime:    time.Since(s.startTime).String(),
	}

	// 没有诊断来源，或有单元失去领导权
	cells, err := s.collectCells(r.Context())
	if err != nil {
		health.Status = "degraded"
	} else if sum := summarize(cells); sum.Leaders < sum.Cells {
		health.Status = "degraded"
	}

	writeJSON(w, health)
}

// ============================================================================
//                              数据收集
// ============================================================================

var errNoSource = &types.Error{Code: types.CodeUnavailable, Message: "introspect: no diagnostics source"}

func (s *Server) collectCells(ctx context.Context) ([]*hive.Diagnostics, error) {
	if s.config.Source == nil {
		return nil, errNoSource
	}

	ctx, cancel := context.WithTimeout(ctx, collectTimeout)
	defer cancel()
	return s.config.Source.Diagnostics(ctx)
}

func summarize(cells []*hive.Diagnostics) *Summary {
	sum := &Summary{Cells: len(cells)}
	for _, d := range cells {
		if d.Leader {
			sum.Leaders++
		}
		for _, mb := range d.Mailboxes {
			sum.Mailboxes++
			if mb.Connected {
				sum.ConnectedMailboxes++
			}
			sum.QueuedMessages += mb.OutcomingMessageCount
			sum.PendingSyncs += mb.SyncRequestCount + mb.AckWaiterCount
		}
	}
	return sum
}

// collectRuntimeInfo 收集运行时信息
func (s *Server) collectRuntimeInfo() *RuntimeInfo {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return &RuntimeInfo{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAlloc:     memStats.Alloc,
		MemSys:       memStats.Sys,
		NumGC:        memStats.NumGC,
	}
}

// ============================================================================
//                              辅助方法
// ============================================================================

// writeJSON 写入 JSON 响应
func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		log.Error("JSON 编码失败", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
