package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig holds configuration for database tracing.
type DBTracingConfig struct {
	Enabled         bool
	LogFullSQL      bool          // Include query variables in spans (dev only)
	SlowQueryThresh time.Duration // Spans slower than this are flagged
	DBName          string
	TracerProvider  trace.TracerProvider // nil uses the global provider
}

// DefaultDBTracingConfig returns default configuration for database tracing.
func DefaultDBTracingConfig() DBTracingConfig {
	return DBTracingConfig{
		SlowQueryThresh: 200 * time.Millisecond,
		DBName:          "crm",
	}
}

type queryStartKey struct{}

// RegisterDBTracing installs otelgorm on db plus callbacks that flag slow statements.
func RegisterDBTracing(db *gorm.DB, cfg DBTracingConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		logger.Debug("Database tracing disabled")
		return nil
	}
	if cfg.SlowQueryThresh == 0 {
		cfg.SlowQueryThresh = DefaultDBTracingConfig().SlowQueryThresh
	}

	// Pool statistics are exported by RegisterDBPoolMetrics.
	opts := []otelgorm.Option{otelgorm.WithDBName(cfg.DBName), otelgorm.WithoutMetrics()}
	if !cfg.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if cfg.TracerProvider != nil {
		opts = append(opts, otelgorm.WithTracerProvider(cfg.TracerProvider))
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	if err := registerSpanAnnotations(db, cfg.SlowQueryThresh); err != nil {
		return err
	}

	logger.Info("Database tracing enabled",
		zap.Bool("log_full_sql", cfg.LogFullSQL),
		zap.Duration("slow_query_threshold", cfg.SlowQueryThresh),
	)
	return nil
}

func registerSpanAnnotations(db *gorm.DB, threshold time.Duration) error {
	annotate := func(tx *gorm.DB) { markSlowQuery(tx, threshold) }
	cb := db.Callback()

	// The slow-query check must see the span before otelgorm ends it.
	registrations := []func() error{
		func() error { return cb.Create().Before("gorm:create").Register("crm_tracing:before_create", markStart) },
		func() error { return cb.Query().Before("gorm:query").Register("crm_tracing:before_query", markStart) },
		func() error { return cb.Update().Before("gorm:update").Register("crm_tracing:before_update", markStart) },
		func() error { return cb.Delete().Before("gorm:delete").Register("crm_tracing:before_delete", markStart) },
		func() error { return cb.Row().Before("gorm:row").Register("crm_tracing:before_row", markStart) },
		func() error { return cb.Raw().Before("gorm:raw").Register("crm_tracing:before_raw", markStart) },
		func() error {
			return cb.Create().After("gorm:create").Before("otel:after:create").Register("crm_tracing:after_create", annotate)
		},
		func() error {
			return cb.Query().After("gorm:query").Before("otel:after:select").Register("crm_tracing:after_query", annotate)
		},
		func() error {
			return cb.Update().After("gorm:update").Before("otel:after:update").Register("crm_tracing:after_update", annotate)
		},
		func() error {
			return cb.Delete().After("gorm:delete").Before("otel:after:delete").Register("crm_tracing:after_delete", annotate)
		},
		func() error {
			return cb.Row().After("gorm:row").Before("otel:after:row").Register("crm_tracing:after_row", annotate)
		},
		func() error {
			return cb.Raw().After("gorm:raw").Before("otel:after:raw").Register("crm_tracing:after_raw", annotate)
		},
	}
	for _, register := range registrations {
		if err := register(); err != nil {
			return err
		}
	}
	return nil
}

func markStart(tx *gorm.DB) {
	if tx.Statement.Context != nil {
		tx.Statement.Context = context.WithValue(tx.Statement.Context, queryStartKey{}, time.Now())
	}
}

// markSlowQuery flags the statement span when it ran longer than threshold.
// Failed statements also get a db.error_kind attribute.
func markSlowQuery(tx *gorm.DB, threshold time.Duration) {
	ctx := tx.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
		span.SetAttributes(attribute.String("db.error_kind", "duplicated_key"))
	} else if errors.Is(tx.Error, gorm.ErrForeignKeyViolated) {
		span.SetAttributes(attribute.String("db.error_kind", "foreign_key_violated"))
	}

	start, ok := ctx.Value(queryStartKey{}).(time.Time)
	if !ok {
		return
	}
	if elapsed := time.Since(start); elapsed > threshold {
		span.SetAttributes(
			attribute.Bool("db.slow_query", true),
			attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
		)
		span.AddEvent("slow_query_warning", trace.WithAttributes(
			attribute.Int64("duration_ms", elapsed.Milliseconds()),
			attribute.Int64("threshold_ms", threshold.Milliseconds()),
		))
	}
}
