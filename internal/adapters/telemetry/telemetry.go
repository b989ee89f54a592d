// Package telemetry wires the OpenTelemetry SDK to the logger so that
// pipeline stage spans surface as debug timing lines.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/pkgup/internal/core/ports"
)

// Processor is a SpanProcessor that reports span durations to the logger.
type Processor struct {
	logger ports.Logger
}

// NewProcessor creates a span processor logging to the given logger.
func NewProcessor(logger ports.Logger) *Processor {
	return &Processor{logger: logger}
}

// OnStart implements sdktrace.SpanProcessor.
func (p *Processor) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the completed span with its duration.
func (p *Processor) OnEnd(s sdktrace.ReadOnlySpan) {
	duration := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	p.logger.Debug(fmt.Sprintf("%s finished in %s", s.Name(), duration))
}

// Shutdown implements sdktrace.SpanProcessor.
func (p *Processor) Shutdown(_ context.Context) error { return nil }

// ForceFlush implements sdktrace.SpanProcessor.
func (p *Processor) ForceFlush(_ context.Context) error { return nil }

// Setup installs a tracer provider backed by the logging processor as the
// global OTel provider and returns its shutdown function.
func Setup(logger ports.Logger) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewProcessor(logger)),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
