package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type MockTracer struct {
	mock.Mock
}

// StartSpan returns ctx unchanged with a non-recording span.
func (m *MockTracer) StartSpan(ctx context.Context, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	m.Called(ctx, spanName, attrs)
	return noop.NewTracerProvider().Tracer("").Start(ctx, spanName)
}

func (m *MockTracer) RecordError(ctx context.Context, err error) {
	m.Called(ctx, err)
}
