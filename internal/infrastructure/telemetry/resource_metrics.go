package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/crm/backend/internal/domain/shared"
	"go.opentelemetry.io/otel/metric"
)

// Outcome values reported on the crm.outcome attribute.
const (
	OutcomeSuccess    = "success"
	OutcomeInvalid    = "validation_error"
	OutcomeNotFound   = "not_found"
	OutcomeRejected   = "rejected"
	OutcomeFailure    = "error"
	resourceMeterName = "github.com/crm/backend/resource"
)

// ResourceMetrics counts and times resource service operations.
type ResourceMetrics struct {
	operations *Counter
	duration   *Histogram
}

// NewResourceMetrics creates the operation counter and duration histogram on meter.
func NewResourceMetrics(meter metric.Meter) (*ResourceMetrics, error) {
	if meter == nil {
		return nil, errors.New("telemetry: meter cannot be nil")
	}

	operations, err := NewCounter(meter,
		"crm_resource_operations_total",
		"Total number of resource operations by outcome",
		"{operations}",
	)
	if err != nil {
		return nil, err
	}

	duration, err := NewHistogram(meter, HistogramOpts{
		Name:        "crm_resource_operation_duration_seconds",
		Description: "Resource operation duration",
		Unit:        "s",
		Boundaries:  OperationDurationBuckets,
	})
	if err != nil {
		return nil, err
	}

	return &ResourceMetrics{operations: operations, duration: duration}, nil
}

// NewResourceMetricsFromProvider creates ResourceMetrics on the provider's CRM meter.
func NewResourceMetricsFromProvider(mp *MeterProvider) (*ResourceMetrics, error) {
	return NewResourceMetrics(mp.Meter(resourceMeterName))
}

// RecordOperation records one completed operation.
func (m *ResourceMetrics) RecordOperation(ctx context.Context, resource, operation string, duration time.Duration, err error) {
	m.operations.Inc(ctx,
		AttrResource.String(resource),
		AttrOperation.String(operation),
		AttrOutcome.String(Outcome(err)),
	)
	m.duration.RecordDuration(ctx, duration,
		AttrResource.String(resource),
		AttrOperation.String(operation),
	)
}

// Outcome classifies an operation error for metric attributes.
func Outcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}

	var verr *shared.ValidationError
	if errors.As(err, &verr) {
		return OutcomeInvalid
	}
	if errors.Is(err, shared.ErrNotFound) {
		return OutcomeNotFound
	}
	var derr *shared.DomainError
	if errors.As(err, &derr) {
		return OutcomeRejected
	}
	return OutcomeFailure
}
