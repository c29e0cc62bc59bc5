package introspect

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-hive/internal/config"
)

func TestConfigFromUnified(t *testing.T) {
	assert.Nil(t, ConfigFromUnified(nil))

	cfg := config.NewConfig()
	assert.Nil(t, ConfigFromUnified(cfg), "默认禁用")

	cfg.Introspect.Enable = true
	cfg.Introspect.Addr = ""
	got := ConfigFromUnified(cfg)
	require.NotNil(t, got)
	assert.Equal(t, DefaultAddr, got.Addr)

	cfg.Introspect.Addr = "127.0.0.1:7070"
	assert.Equal(t, "127.0.0.1:7070", ConfigFromUnified(cfg).Addr)
}

func TestProvideServer(t *testing.T) {
	assert.Nil(t, ProvideServer(Params{}))

	cfg := config.NewConfig()
	cfg.Introspect.Enable = true
	cfg.Cluster.Cells = 7
	source, _, _ := testSource()

	server := ProvideServer(Params{UnifiedCfg: cfg, Source: source})
	require.NotNil(t, server)
	assert.Equal(t, source, server.config.Source)
	assert.Nil(t, server.config.Gatherer)

	rec := get(t, server.Handler(), "/debug/introspect/config")
	require.Equal(t, http.StatusOK, rec.Code)

	var got config.Config
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 7, got.Cluster.Cells)
}
