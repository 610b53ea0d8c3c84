package service

import (
	"time"

	"github.com/turtacn/certgen/pkg/constants"
)

// Metrics defines the interface for collecting operation metrics.
// This abstraction keeps the application layer independent of Prometheus.
// Metrics 定义了收集操作指标的接口，使应用层独立于 Prometheus。
type Metrics interface {
	// RecordOperation records the outcome and latency of one operation.
	// RecordOperation 记录一次操作的结果和耗时。
	RecordOperation(op constants.Operation, result constants.OperationResult, duration time.Duration)

	// RecordArtifact records the size of a file written by an operation.
	// RecordArtifact 记录操作写入文件的大小。
	RecordArtifact(artifact string, size int)
}
