package crypto

import (
	"context"
	"crypto/x509"
	"encoding/asn1"
	"encoding/pem"
	"fmt"

	"github.com/turtacn/certgen/internal/domain/models"
	"github.com/turtacn/certgen/internal/domain/service"
	"github.com/turtacn/certgen/pkg/constants"
	"github.com/turtacn/certgen/pkg/errors"
	"github.com/turtacn/certgen/pkg/logger"
	"github.com/turtacn/certgen/pkg/utils"
)

// CSRGenerator creates RSA key pairs and self-signed PKCS#10 requests.
type CSRGenerator struct {
	logger logger.Logger
	opts   options
}

var _ service.CSRGenerator = (*CSRGenerator)(nil)

// NewCSRGenerator creates a new CSRGenerator.
func NewCSRGenerator(log logger.Logger, opts ...Option) *CSRGenerator {
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &CSRGenerator{
		logger: log.WithComponent("csr_generator"),
		opts:   applyOptions(opts),
	}
}

// GenerateCSR generates a 2048-bit RSA key, writes it to req.KeyPath, then
// writes a SHA-256 signed CSR for req.Subject to req.CSRPath.
//
// The key is written first. If the CSR step fails afterwards the key file is
// left in place.
//
// Parameters:
//   - ctx: Context for the operation
//   - req: Subject, output paths and key format
//
// Returns:
//   - *models.CSRResult: Paths of the written key and CSR
//   - error: csr_generation_failed wrapping the cause
func (g *CSRGenerator) GenerateCSR(ctx context.Context, req models.CSRRequest) (*models.CSRResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, errors.ErrCSRGenerationFailed(err)
	}

	eng := newEngine(g.opts.random)

	key, err := eng.GenerateRSAKey()
	if err != nil {
		return nil, errors.ErrCSRGenerationFailed(err)
	}

	keyPEM, err := encodePrivateKey(key, req.KeyFormat)
	if err != nil {
		return nil, errors.ErrCSRGenerationFailed(err)
	}
	if err := writeFileAtomic(req.KeyPath, keyPEM, constants.PrivateFileMode); err != nil {
		return nil, errors.ErrCSRGenerationFailed(err)
	}
	g.logger.Debug(ctx, "Private key written",
		logger.String("key_path", req.KeyPath),
		logger.String("key_format", string(keyFormatOrDefault(req.KeyFormat))),
	)

	rawSubject, err := asn1.Marshal(req.Subject.RDNSequence())
	if err != nil {
		return nil, errors.ErrCSRGenerationFailed(fmt.Errorf("failed to encode subject: %w", err))
	}

	template := &x509.CertificateRequest{
		RawSubject:         rawSubject,
		SignatureAlgorithm: x509.SHA256WithRSA,
	}
	csrDER, err := x509.CreateCertificateRequest(eng.Rand(), template, key)
	if err != nil {
		return nil, errors.ErrCSRGenerationFailed(fmt.Errorf("failed to create certificate request: %w", err))
	}

	csrPEM := pem.EncodeToMemory(&pem.Block{Type: constants.PEMTypeCertificateRequest, Bytes: csrDER})
	if err := writeFileAtomic(req.CSRPath, csrPEM, constants.PublicFileMode); err != nil {
		return nil, errors.ErrCSRGenerationFailed(err)
	}

	g.logger.Info(ctx, "CSR generated",
		logger.String("common_name", req.Subject.CommonName),
		logger.String("key_path", req.KeyPath),
		logger.String("csr_path", req.CSRPath),
	)

	return &models.CSRResult{KeyPath: req.KeyPath, CSRPath: req.CSRPath}, nil
}

func keyFormatOrDefault(f constants.KeyFormat) constants.KeyFormat {
	if f == "" {
		return constants.DefaultKeyFormat
	}
	return f
}
