package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-hive/internal/config"
)

func TestBindFlags(t *testing.T) {
	cmd := newRootCommand()
	require.NoError(t, cmd.Flags().Parse([]string{"--cells", "5", "--introspect", "127.0.0.1:0"}))

	v, err := config.NewViper("")
	require.NoError(t, err)
	require.NoError(t, bindFlags(v, cmd))

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Cluster.Cells)
	assert.True(t, cfg.Introspect.Enable)
	assert.Equal(t, "127.0.0.1:0", cfg.Introspect.Addr)

	// 未设置的参数保持默认值
	assert.Equal(t, config.NewConfig().Storage.DataDir, cfg.Storage.DataDir)
}

func TestNewApp_StartStop(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Storage.InMemory = true
	cfg.Cluster.Cells = 2
	cfg.Cluster.SnapshotPeriod = 0
	cfg.Hive.PostBatchingPeriod = time.Millisecond

	app, err := newApp(cfg, &options{workload: 5 * time.Millisecond})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, app.Start(ctx))
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, app.Stop(ctx))
}
