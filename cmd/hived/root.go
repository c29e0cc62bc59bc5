package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dep2p/go-hive/internal/config"
	"github.com/dep2p/go-hive/internal/util/logger"
)

var log = logger.Logger("hived")

// options 命令行参数
type options struct {
	configFile string
	workload   time.Duration
	verboseFx  bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "hived",
		Short: "Run an in-process cluster of cells connected by Hive",
		Long: `hived starts several cells in one process. Cells exchange messages
through reliable, ordered mailboxes and can be inspected over a local
HTTP introspection endpoint.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := config.NewViper(opts.configFile)
			if err != nil {
				return fmt.Errorf("加载配置文件失败: %w", err)
			}
			if err := bindFlags(v, cmd); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return fmt.Errorf("配置错误: %w", err)
			}
			return run(cmd.Context(), cfg, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "config file (default is ./hive.yaml)")
	flags.Int("cells", 0, "number of cells")
	flags.String("data-dir", "", "snapshot data directory")
	flags.Bool("in-memory", false, "keep snapshots in memory only")
	flags.String("introspect", "", "enable the introspection server on this address")
	flags.DurationVar(&opts.workload, "workload", 0, "post a demo message between cells at this interval (0 disables)")
	flags.BoolVar(&opts.verboseFx, "verbose-fx", false, "log dependency injection events")

	return cmd
}

// bindFlags 显式设置的命令行参数覆盖配置文件与环境变量
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	flags := cmd.Flags()
	for key, name := range map[string]string{
		"cluster.cells":     "cells",
		"storage.data_dir":  "data-dir",
		"storage.in_memory": "in-memory",
		"introspect.addr":   "introspect",
	} {
		if !flags.Changed(name) {
			continue
		}
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return err
		}
	}
	if flags.Changed("introspect") {
		v.Set("introspect.enable", true)
	}
	return nil
}

func run(ctx context.Context, cfg *config.Config, opts *options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	closeLog, err := setupLogFile(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "警告: %v\n", err)
		fmt.Fprintln(os.Stderr, "将继续使用控制台输出日志")
	}
	defer closeLog()

	app, err := newApp(cfg, opts)
	if err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return fmt.Errorf("启动失败: %w", err)
	}

	log.Info("hived 已启动", "cells", cfg.Cluster.Cells, "introspect", cfg.Introspect.Enable)
	fmt.Printf("已启动 %d 个单元，按 Ctrl+C 退出\n", cfg.Cluster.Cells)

	waitForSignal(ctx)
	fmt.Println("\n正在关闭...")

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	return app.Stop(stopCtx)
}

// setupLogFile 日志写入文件，返回关闭函数
func setupLogFile(path string) (func(), error) {
	if path == "" {
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return func() {}, fmt.Errorf("打开日志文件失败: %w", err)
	}
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}

func waitForSignal(ctx context.Context) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-sigCh:
	case <-ctx.Done():
	}
}
