package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/turtacn/certgen/pkg/constants"
)

type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) RecordOperation(op constants.Operation, result constants.OperationResult, duration time.Duration) {
	m.Called(op, result, duration)
}

func (m *MockMetrics) RecordArtifact(artifact string, size int) {
	m.Called(artifact, size)
}
