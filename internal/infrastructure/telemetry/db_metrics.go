package telemetry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// PoolStatser reports connection pool statistics. *sql.DB satisfies it.
type PoolStatser interface {
	Stats() sql.DBStats
}

// DBPoolMetrics exports connection pool statistics as observable instruments,
// read on every collection cycle.
type DBPoolMetrics struct {
	registration metric.Registration
}

// RegisterDBPoolMetrics registers pool gauges for db on meter.
func RegisterDBPoolMetrics(meter metric.Meter, db PoolStatser) (*DBPoolMetrics, error) {
	if meter == nil || db == nil {
		return nil, errors.New("telemetry: meter and db are required")
	}

	connections, err := meter.Int64ObservableGauge("db_pool_connections",
		metric.WithDescription("Number of connections in the pool by state"),
		metric.WithUnit("{connection}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gauge db_pool_connections: %w", err)
	}
	maxOpen, err := meter.Int64ObservableGauge("db_pool_connections_max",
		metric.WithDescription("Maximum number of open connections"),
		metric.WithUnit("{connection}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gauge db_pool_connections_max: %w", err)
	}
	waits, err := meter.Int64ObservableCounter("db_pool_wait_total",
		metric.WithDescription("Total number of connections waited for"),
		metric.WithUnit("{wait}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create counter db_pool_wait_total: %w", err)
	}

	reg, err := meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		s := db.Stats()
		o.ObserveInt64(connections, int64(s.InUse), metric.WithAttributes(AttrDBState.String("in_use")))
		o.ObserveInt64(connections, int64(s.Idle), metric.WithAttributes(AttrDBState.String("idle")))
		o.ObserveInt64(maxOpen, int64(s.MaxOpenConnections))
		o.ObserveInt64(waits, s.WaitCount)
		return nil
	}, connections, maxOpen, waits)
	if err != nil {
		return nil, fmt.Errorf("failed to register pool metrics callback: %w", err)
	}

	return &DBPoolMetrics{registration: reg}, nil
}

// Stop unregisters the pool callback.
func (m *DBPoolMetrics) Stop() error {
	return m.registration.Unregister()
}
