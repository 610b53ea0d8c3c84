package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/turtacn/certgen/internal/domain/models"
)

type MockCSRGenerator struct {
	mock.Mock
}

func (m *MockCSRGenerator) GenerateCSR(ctx context.Context, req models.CSRRequest) (*models.CSRResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CSRResult), args.Error(1)
}
