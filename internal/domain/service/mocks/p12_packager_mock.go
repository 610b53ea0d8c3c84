package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/turtacn/certgen/internal/domain/models"
)

type MockP12Packager struct {
	mock.Mock
}

func (m *MockP12Packager) CreateP12(ctx context.Context, req models.P12Request) (*models.P12Result, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.P12Result), args.Error(1)
}
