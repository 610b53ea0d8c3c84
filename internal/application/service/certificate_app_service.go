// Package service provides application-level services that orchestrate domain services
package service

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/turtacn/certgen/internal/domain/models"
	domainService "github.com/turtacn/certgen/internal/domain/service"
	"github.com/turtacn/certgen/pkg/constants"
	"github.com/turtacn/certgen/pkg/errors"
	"github.com/turtacn/certgen/pkg/logger"
)

// CertificateAppService defines the interface for the certificate material application service
type CertificateAppService interface {
	// GenerateCSR generates a key pair and CSR
	GenerateCSR(ctx context.Context, req models.CSRRequest) (*models.CSRResult, error)

	// CreateP12 packages a certificate and key into a PKCS#12 archive
	CreateP12(ctx context.Context, req models.P12Request) (*models.P12Result, error)

	// ParseCertificate returns the metadata of a PEM certificate
	ParseCertificate(ctx context.Context, certPath string) (*models.CertificateInfo, error)
}

// certificateAppServiceImpl is the concrete implementation of CertificateAppService
type certificateAppServiceImpl struct {
	csrGenerator domainService.CSRGenerator
	p12Packager  domainService.P12Packager
	inspector    domainService.CertificateInspector
	metrics      domainService.Metrics
	tracer       domainService.Tracer
	logger       logger.Logger
}

// NewCertificateAppService creates a new instance of CertificateAppService.
// tracer may be nil, in which case spans are not recorded.
// NewCertificateAppService 创建 CertificateAppService 实例，tracer 为 nil 时不记录 span。
func NewCertificateAppService(
	csrGenerator domainService.CSRGenerator,
	p12Packager domainService.P12Packager,
	inspector domainService.CertificateInspector,
	metrics domainService.Metrics,
	tracer domainService.Tracer,
	log logger.Logger,
) CertificateAppService {
	if tracer == nil {
		tracer = noopTracer{noop.NewTracerProvider().Tracer("")}
	}
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &certificateAppServiceImpl{
		csrGenerator: csrGenerator,
		p12Packager:  p12Packager,
		inspector:    inspector,
		metrics:      metrics,
		tracer:       tracer,
		logger:       log,
	}
}

// GenerateCSR implements CSR generation
func (s *certificateAppServiceImpl) GenerateCSR(ctx context.Context, req models.CSRRequest) (*models.CSRResult, error) {
	var result *models.CSRResult
	err := s.run(ctx, constants.OperationGenerateCSR, func(ctx context.Context) error {
		var err error
		result, err = s.csrGenerator.GenerateCSR(ctx, req)
		if err != nil {
			return s.classify(err, errors.ErrCSRGenerationFailed)
		}
		s.recordArtifact("private_key", result.KeyPath)
		s.recordArtifact("csr", result.CSRPath)
		return nil
	},
		attribute.String("key_path", req.KeyPath),
		attribute.String("csr_path", req.CSRPath),
		attribute.String("common_name", req.Subject.CommonName),
	)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreateP12 implements PKCS#12 packaging
func (s *certificateAppServiceImpl) CreateP12(ctx context.Context, req models.P12Request) (*models.P12Result, error) {
	var result *models.P12Result
	err := s.run(ctx, constants.OperationCreateP12, func(ctx context.Context) error {
		var err error
		result, err = s.p12Packager.CreateP12(ctx, req)
		if err != nil {
			return s.classify(err, errors.ErrP12CreationFailed)
		}
		s.recordArtifact("p12", result.P12Path)
		return nil
	},
		attribute.String("cert_path", req.CertPath),
		attribute.String("p12_path", req.P12Path),
		attribute.Bool("password_protected", req.Password != ""),
		attribute.Bool("legacy", req.Legacy),
	)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ParseCertificate implements certificate inspection
func (s *certificateAppServiceImpl) ParseCertificate(ctx context.Context, certPath string) (*models.CertificateInfo, error) {
	var info *models.CertificateInfo
	err := s.run(ctx, constants.OperationParseCertificate, func(ctx context.Context) error {
		var err error
		info, err = s.inspector.ParseCertificate(ctx, certPath)
		if err != nil {
			return s.classify(err, errors.ErrCertificateParseFailed)
		}
		return nil
	},
		attribute.String("cert_path", certPath),
	)
	if err != nil {
		return nil, err
	}
	return info, nil
}

// run executes fn as one operation: it tags ctx with a run ID, opens a span,
// logs the start and outcome, and records metrics.
func (s *certificateAppServiceImpl) run(ctx context.Context, op constants.Operation, fn func(context.Context) error, attrs ...attribute.KeyValue) error {
	runID := uuid.NewString()
	ctx = context.WithValue(ctx, constants.ContextKeyRunID, runID)
	ctx = context.WithValue(ctx, constants.ContextKeyOperation, op)

	attrs = append(attrs, attribute.String("run_id", runID))
	ctx, span := s.tracer.StartSpan(ctx, string(op), attrs...)
	defer span.End()

	s.logger.Info(ctx, "Operation started")
	start := time.Now()

	err := fn(ctx)
	duration := time.Since(start)

	if err != nil {
		s.tracer.RecordError(ctx, err)
		s.recordOperation(op, constants.ResultFailure, duration)
		s.logger.Error(ctx, "Operation failed", err, logger.Duration("duration", duration))
		return err
	}

	span.SetStatus(codes.Ok, "")
	s.recordOperation(op, constants.ResultSuccess, duration)
	s.logger.Info(ctx, "Operation completed", logger.Duration("duration", duration))
	return nil
}

// classify keeps a CertError as is and wraps anything else with wrap.
func (s *certificateAppServiceImpl) classify(err error, wrap func(error) errors.CertError) error {
	if _, ok := errors.AsCertError(err); ok {
		return err
	}
	return wrap(err)
}

func (s *certificateAppServiceImpl) recordOperation(op constants.Operation, result constants.OperationResult, duration time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordOperation(op, result, duration)
}

func (s *certificateAppServiceImpl) recordArtifact(artifact, path string) {
	if s.metrics == nil {
		return
	}
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	s.metrics.RecordArtifact(artifact, int(info.Size()))
}

type noopTracer struct {
	tracer trace.Tracer
}

func (t noopTracer) StartSpan(ctx context.Context, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, spanName, trace.WithAttributes(attrs...))
}

func (noopTracer) RecordError(context.Context, error) {}
