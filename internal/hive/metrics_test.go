package hive

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-hive/pkg/types"
)

func testutilCounter(c prometheus.Counter) float64 {
	return testutil.ToFloat64(c)
}

func TestMetrics_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()

	a := NewMetrics(reg, types.NewCellID())
	b := NewMetrics(reg, types.NewCellID())

	a.addReliablePosted(3)
	b.addReliablePosted(1)
	a.incApplied(kindReliable)

	assert.Equal(t, 3.0, testutilCounter(a.ReliablePosted()))
	assert.Equal(t, 1.0, testutilCounter(b.ReliablePosted()))

	n, err := testutil.GatherAndCount(reg, "hive_reliable_messages_posted_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestMetrics_NilRegisterer(t *testing.T) {
	m := NewMetrics(nil, types.NewCellID())
	m.incSyncRounds()
	assert.Equal(t, 1.0, testutilCounter(m.SyncRounds()))
}

func TestMetrics_CountsDelivery(t *testing.T) {
	env := newTestEnv()
	a := env.addCell(t, testConfig())
	b := env.addCell(t, testConfig())

	a.post(t, b, 0, 4)
	require.Eventually(t, func() bool { return a.drained(t, b) }, waitFor, tick)

	assert.Equal(t, 4.0, testutilCounter(a.manager.Metrics().ReliablePosted()))
	assert.Equal(t, 4.0, testutilCounter(a.manager.Metrics().Acknowledged()))
}
