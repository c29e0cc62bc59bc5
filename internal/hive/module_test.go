package hive

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/dep2p/go-hive/internal/config"
	"github.com/dep2p/go-hive/internal/core/automaton"
	"github.com/dep2p/go-hive/internal/core/directory"
	"github.com/dep2p/go-hive/internal/core/transport"
	"github.com/dep2p/go-hive/pkg/interfaces"
	"github.com/dep2p/go-hive/pkg/types"
)

func TestModule(t *testing.T) {
	host := automaton.NewHost(types.NewCellID())
	net := transport.NewNetwork()
	dir := directory.New(net.Channel)

	var (
		manager  *Manager
		services []interfaces.Service
	)
	app := fxtest.New(t,
		fx.NopLogger,
		fx.Provide(
			func() interfaces.Automaton { return host },
			func() interfaces.CellDirectory { return dir },
			func() prometheus.Registerer { return prometheus.NewRegistry() },
		),
		Module(),
		fx.Populate(&manager),
		fx.Invoke(fx.Annotate(func(s []interfaces.Service) { services = s }, fx.ParamTags(`group:"services"`))),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, manager)
	assert.Equal(t, host.CellID(), manager.CellID())
	require.Len(t, services, 1)
	assert.Equal(t, ServiceName, services[0].Name())
}

func TestProvideManager_InvalidConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Hive.PingPeriod = -time.Second

	_, err := ProvideManager(Params{
		UnifiedCfg: cfg,
		Automaton:  automaton.NewHost(types.NewCellID()),
		Directory:  directory.New(transport.NewNetwork().Channel),
	})
	assert.Error(t, err)
}
