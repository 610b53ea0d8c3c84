package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/turtacn/certgen/internal/domain/models"
)

type MockCertificateInspector struct {
	mock.Mock
}

func (m *MockCertificateInspector) ParseCertificate(ctx context.Context, certPath string) (*models.CertificateInfo, error) {
	args := m.Called(ctx, certPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CertificateInfo), args.Error(1)
}
