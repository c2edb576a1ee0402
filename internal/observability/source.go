package observability

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/BuildersAQP/api-comida-peru/internal/models"
	"github.com/BuildersAQP/api-comida-peru/internal/storage"
)

// InstrumentedSource wraps a storage.Source with OpenTelemetry tracing and
// metrics. Each fetch produces a span and a counted outcome: ok, unavailable,
// or error.
type InstrumentedSource struct {
	inner    storage.Source
	tracer   trace.Tracer
	duration metric.Float64Histogram
	fetches  metric.Int64Counter
}

// NewInstrumentedSource creates a source wrapper that records trace spans,
// fetch latency histograms, and per-outcome counters.
func NewInstrumentedSource(inner storage.Source) (*InstrumentedSource, error) {
	tracer := otel.Tracer("api-comida-peru/storage")
	meter := otel.Meter("api-comida-peru/storage")

	duration, err := meter.Float64Histogram(
		"region.fetch.duration",
		metric.WithDescription("Duration of region document fetches in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	fetches, err := meter.Int64Counter(
		"region.fetch.total",
		metric.WithDescription("Region document fetches by outcome"),
		metric.WithUnit("{fetch}"),
	)
	if err != nil {
		return nil, err
	}

	return &InstrumentedSource{
		inner:    inner,
		tracer:   tracer,
		duration: duration,
		fetches:  fetches,
	}, nil
}

// FetchRegion delegates to the wrapped source, recording the outcome.
func (s *InstrumentedSource) FetchRegion(ctx context.Context, file string) (*models.RegionDocument, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FetchRegion",
		trace.WithAttributes(attribute.String("region.file", file)),
	)
	start := time.Now()

	doc, err := s.inner.FetchRegion(ctx, file)

	outcome := "ok"
	switch {
	case errors.Is(err, storage.ErrUnavailable):
		outcome = "unavailable"
		span.SetStatus(codes.Error, "unavailable")
	case err != nil:
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	default:
		span.SetStatus(codes.Ok, "")
	}

	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	s.duration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.fetches.Add(ctx, 1, attrs)
	span.End()

	return doc, err
}
