// Package telemetry provides the no-op implementation of the telemetry
// port. The progrock subpackage provides the recording one.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/compdb/internal/core/ports"
)

// NoOpTelemetry is a no-op implementation of ports.Telemetry.
type NoOpTelemetry struct{}

// NewNoOp creates a new NoOpTelemetry.
func NewNoOp() *NoOpTelemetry {
	return &NoOpTelemetry{}
}

// Record creates a new no-op vertex.
func (t *NoOpTelemetry) Record(ctx context.Context, _ string, _ ...ports.VertexOption) (context.Context, ports.Vertex) {
	return ctx, &NoOpVertex{}
}

// Close does nothing.
func (t *NoOpTelemetry) Close() error { return nil }

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Stdout returns a writer that discards everything.
func (v *NoOpVertex) Stdout() io.Writer { return io.Discard }

// Stderr returns a writer that discards everything.
func (v *NoOpVertex) Stderr() io.Writer { return io.Discard }

// Complete does nothing.
func (v *NoOpVertex) Complete(_ error) {}

// Cached does nothing.
func (v *NoOpVertex) Cached() {}
