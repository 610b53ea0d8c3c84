// Package monitoring provides the zap logger, Prometheus metrics and
// OpenTelemetry tracing used by certgen.
package monitoring

import (
	"time"

	"github.com/turtacn/certgen/internal/domain/service"
	"github.com/turtacn/certgen/pkg/constants"
)

// MetricsAdapter implements the domain's service.Metrics interface on top of Metrics.
// MetricsAdapter 基于 Prometheus Metrics 实现域的 service.Metrics 接口。
type MetricsAdapter struct {
	metrics *Metrics
}

// NewMetricsAdapter wraps metrics so it satisfies service.Metrics.
// NewMetricsAdapter 包装 Metrics 以满足 service.Metrics 接口。
func NewMetricsAdapter(metrics *Metrics) service.Metrics {
	return &MetricsAdapter{metrics: metrics}
}

// RecordOperation delegates the call to the underlying Prometheus Metrics object.
// RecordOperation 将调用委托给底层的 Prometheus Metrics 对象。
func (a *MetricsAdapter) RecordOperation(op constants.Operation, result constants.OperationResult, duration time.Duration) {
	a.metrics.RecordOperation(op, result, duration)
}

// RecordArtifact delegates the call to the underlying Prometheus Metrics object.
// RecordArtifact 将调用委托给底层的 Prometheus Metrics 对象。
func (a *MetricsAdapter) RecordArtifact(artifact string, size int) {
	a.metrics.RecordArtifact(artifact, size)
}
