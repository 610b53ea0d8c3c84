package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Tracer defines the interface for tracing operations.
// The application layer opens one span per operation through it.
// Tracer 定义了链路追踪接口，应用层通过它为每个操作创建一个 span。
type Tracer interface {
	// StartSpan starts a span named spanName as a child of ctx.
	// StartSpan 以 ctx 为父级启动名为 spanName 的 span。
	StartSpan(ctx context.Context, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span)

	// RecordError marks the span in ctx as failed with err.
	// RecordError 将 ctx 中的 span 标记为失败。
	RecordError(ctx context.Context, err error)
}
