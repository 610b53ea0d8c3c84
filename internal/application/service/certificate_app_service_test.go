package service

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"

	"github.com/turtacn/certgen/internal/domain/models"
	"github.com/turtacn/certgen/internal/domain/service/mocks"
	"github.com/turtacn/certgen/pkg/constants"
	"github.com/turtacn/certgen/pkg/errors"
	"github.com/turtacn/certgen/pkg/logger"
)

type appServiceMocks struct {
	csr       *mocks.MockCSRGenerator
	p12       *mocks.MockP12Packager
	inspector *mocks.MockCertificateInspector
	metrics   *mocks.MockMetrics
}

func newTestAppService() (CertificateAppService, *appServiceMocks) {
	m := &appServiceMocks{
		csr:       new(mocks.MockCSRGenerator),
		p12:       new(mocks.MockP12Packager),
		inspector: new(mocks.MockCertificateInspector),
		metrics:   new(mocks.MockMetrics),
	}
	svc := NewCertificateAppService(m.csr, m.p12, m.inspector, m.metrics, nil, logger.NewNoopLogger())
	return svc, m
}

// withRunContext matches a context tagged with a run ID and the given operation.
func withRunContext(op constants.Operation) interface{} {
	return mock.MatchedBy(func(ctx context.Context) bool {
		runID, ok := ctx.Value(constants.ContextKeyRunID).(string)
		if !ok {
			return false
		}
		if _, err := uuid.Parse(runID); err != nil {
			return false
		}
		got, ok := ctx.Value(constants.ContextKeyOperation).(constants.Operation)
		return ok && got == op
	})
}

func TestCertificateAppService_GenerateCSR(t *testing.T) {
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "client.key")
	csrPath := filepath.Join(dir, "client.csr")
	require.NoError(t, os.WriteFile(keyPath, []byte("key!"), 0o600))
	require.NoError(t, os.WriteFile(csrPath, []byte("csr"), 0o644))

	req := models.CSRRequest{
		Subject: models.DistinguishedName{CommonName: "test.example.com"},
		KeyPath: keyPath,
		CSRPath: csrPath,
	}

	t.Run("success", func(t *testing.T) {
		svc, m := newTestAppService()
		m.csr.On("GenerateCSR", withRunContext(constants.OperationGenerateCSR), req).
			Return(&models.CSRResult{KeyPath: keyPath, CSRPath: csrPath}, nil).Once()
		m.metrics.On("RecordArtifact", "private_key", 4).Once()
		m.metrics.On("RecordArtifact", "csr", 3).Once()
		m.metrics.On("RecordOperation", constants.OperationGenerateCSR, constants.ResultSuccess, mock.Anything).Once()

		result, err := svc.GenerateCSR(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, keyPath, result.KeyPath)
		assert.Equal(t, csrPath, result.CSRPath)

		m.csr.AssertExpectations(t)
		m.metrics.AssertExpectations(t)
	})

	t.Run("plain error is classified", func(t *testing.T) {
		svc, m := newTestAppService()
		m.csr.On("GenerateCSR", mock.Anything, req).Return(nil, stderrors.New("disk full")).Once()
		m.metrics.On("RecordOperation", constants.OperationGenerateCSR, constants.ResultFailure, mock.Anything).Once()

		result, err := svc.GenerateCSR(context.Background(), req)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.HasCode(err, constants.ErrCodeCSRGenerationFailed))
		assert.Contains(t, err.Error(), "disk full")

		m.metrics.AssertExpectations(t)
		m.metrics.AssertNotCalled(t, "RecordArtifact", mock.Anything, mock.Anything)
	})
}

func TestCertificateAppService_CreateP12(t *testing.T) {
	req := models.P12Request{CertPath: "cert.pem", KeyPath: "key.pem", P12Path: "out.p12", Password: "secret"}

	t.Run("cert error passes through", func(t *testing.T) {
		svc, m := newTestAppService()
		cause := errors.ErrP12CreationFailed(stderrors.New("bad PEM"))
		m.p12.On("CreateP12", withRunContext(constants.OperationCreateP12), req).Return(nil, cause).Once()
		m.metrics.On("RecordOperation", constants.OperationCreateP12, constants.ResultFailure, mock.Anything).Once()

		_, err := svc.CreateP12(context.Background(), req)
		require.Error(t, err)
		assert.Same(t, cause, err)

		m.p12.AssertExpectations(t)
		m.metrics.AssertExpectations(t)
	})

	t.Run("success without artifact on disk", func(t *testing.T) {
		svc, m := newTestAppService()
		m.p12.On("CreateP12", mock.Anything, req).Return(&models.P12Result{P12Path: "out.p12"}, nil).Once()
		m.metrics.On("RecordOperation", constants.OperationCreateP12, constants.ResultSuccess, mock.Anything).Once()

		result, err := svc.CreateP12(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "out.p12", result.P12Path)
		m.metrics.AssertNotCalled(t, "RecordArtifact", mock.Anything, mock.Anything)
	})
}

func TestCertificateAppService_ParseCertificate(t *testing.T) {
	info := &models.CertificateInfo{SerialNumber: "123456789012345678901234567890", Version: 2}

	svc, m := newTestAppService()
	m.inspector.On("ParseCertificate", withRunContext(constants.OperationParseCertificate), "cert.pem").Return(info, nil).Once()
	m.inspector.On("ParseCertificate", mock.Anything, "missing.pem").Return(nil, stderrors.New("no such file")).Once()
	m.metrics.On("RecordOperation", constants.OperationParseCertificate, constants.ResultSuccess, mock.Anything).Once()
	m.metrics.On("RecordOperation", constants.OperationParseCertificate, constants.ResultFailure, mock.Anything).Once()

	got, err := svc.ParseCertificate(context.Background(), "cert.pem")
	require.NoError(t, err)
	assert.Equal(t, info, got)

	got, err = svc.ParseCertificate(context.Background(), "missing.pem")
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.HasCode(err, constants.ErrCodeCertificateParseFailed))

	m.inspector.AssertExpectations(t)
	m.metrics.AssertExpectations(t)
}

func TestCertificateAppService_NilMetrics(t *testing.T) {
	inspector := new(mocks.MockCertificateInspector)
	inspector.On("ParseCertificate", mock.Anything, "cert.pem").Return(&models.CertificateInfo{}, nil)

	svc := NewCertificateAppService(nil, nil, inspector, nil, nil, nil)
	_, err := svc.ParseCertificate(context.Background(), "cert.pem")
	assert.NoError(t, err)
}

func TestCertificateAppService_Tracing(t *testing.T) {
	inspector := new(mocks.MockCertificateInspector)
	tracer := new(mocks.MockTracer)
	svc := NewCertificateAppService(nil, nil, inspector, nil, tracer, nil)

	hasCertPath := func(path string) interface{} {
		return mock.MatchedBy(func(attrs []attribute.KeyValue) bool {
			for _, kv := range attrs {
				if kv.Key == "cert_path" && kv.Value.AsString() == path {
					return true
				}
			}
			return false
		})
	}

	cause := stderrors.New("no such file")
	inspector.On("ParseCertificate", mock.Anything, "cert.pem").Return(&models.CertificateInfo{}, nil).Once()
	inspector.On("ParseCertificate", mock.Anything, "missing.pem").Return(nil, cause).Once()
	tracer.On("StartSpan", mock.Anything, "parse-cert", hasCertPath("cert.pem")).Once()
	tracer.On("StartSpan", mock.Anything, "parse-cert", hasCertPath("missing.pem")).Once()
	tracer.On("RecordError", withRunContext(constants.OperationParseCertificate), mock.MatchedBy(func(err error) bool {
		return errors.HasCode(err, constants.ErrCodeCertificateParseFailed) && stderrors.Is(err, cause)
	})).Once()

	_, err := svc.ParseCertificate(context.Background(), "cert.pem")
	require.NoError(t, err)

	_, err = svc.ParseCertificate(context.Background(), "missing.pem")
	require.Error(t, err)

	tracer.AssertExpectations(t)
	tracer.AssertNumberOfCalls(t, "RecordError", 1)
}
