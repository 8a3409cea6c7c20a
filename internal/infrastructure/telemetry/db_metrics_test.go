package telemetry

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type fakePool struct {
	stats sql.DBStats
}

func (f fakePool) Stats() sql.DBStats { return f.stats }

func TestRegisterDBPoolMetrics(t *testing.T) {
	mp, reader := newManualMeterProvider(t)

	pool := fakePool{stats: sql.DBStats{MaxOpenConnections: 25, InUse: 3, Idle: 2, WaitCount: 7}}
	m, err := RegisterDBPoolMetrics(mp.Meter("db"), pool)
	require.NoError(t, err)

	data := collect(t, reader)

	gauge, ok := data["db_pool_connections"].(metricdata.Gauge[int64])
	require.True(t, ok)
	byState := map[string]int64{}
	for _, dp := range gauge.DataPoints {
		state, _ := dp.Attributes.Value(AttrDBState)
		byState[state.AsString()] = dp.Value
	}
	assert.Equal(t, map[string]int64{"in_use": 3, "idle": 2}, byState)

	maxOpen, ok := data["db_pool_connections_max"].(metricdata.Gauge[int64])
	require.True(t, ok)
	assert.Equal(t, int64(25), maxOpen.DataPoints[0].Value)

	waits, ok := data["db_pool_wait_total"].(metricdata.Sum[int64])
	require.True(t, ok)
	assert.Equal(t, int64(7), waits.DataPoints[0].Value)

	assert.NoError(t, m.Stop())
}

func TestRegisterDBPoolMetrics_RequiresArguments(t *testing.T) {
	mp, _ := newManualMeterProvider(t)

	_, err := RegisterDBPoolMetrics(mp.Meter("db"), nil)
	assert.Error(t, err)
	_, err = RegisterDBPoolMetrics(nil, fakePool{})
	assert.Error(t, err)
}
