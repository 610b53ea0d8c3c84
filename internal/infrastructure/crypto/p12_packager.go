package crypto

import (
	"context"
	"fmt"

	"software.sslmate.com/src/go-pkcs12"

	"github.com/turtacn/certgen/internal/domain/models"
	"github.com/turtacn/certgen/internal/domain/service"
	"github.com/turtacn/certgen/pkg/constants"
	"github.com/turtacn/certgen/pkg/errors"
	"github.com/turtacn/certgen/pkg/logger"
	"github.com/turtacn/certgen/pkg/utils"
)

// P12Packager bundles one certificate and one private key into a PKCS#12 archive.
type P12Packager struct {
	logger logger.Logger
	opts   options
}

var _ service.P12Packager = (*P12Packager)(nil)

// NewP12Packager creates a new P12Packager.
func NewP12Packager(log logger.Logger, opts ...Option) *P12Packager {
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &P12Packager{
		logger: log.WithComponent("p12_packager"),
		opts:   applyOptions(opts),
	}
}

// CreateP12 reads a PEM certificate and PEM private key and writes them as a
// DER PKCS#12 archive to req.P12Path. The key is not checked against the
// certificate.
func (p *P12Packager) CreateP12(ctx context.Context, req models.P12Request) (*models.P12Result, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, errors.ErrP12CreationFailed(err)
	}

	cert, err := readCertificate(req.CertPath)
	if err != nil {
		return nil, errors.ErrP12CreationFailed(err)
	}

	key, err := readPrivateKey(req.KeyPath, req.KeyPassword)
	if err != nil {
		return nil, errors.ErrP12CreationFailed(err)
	}

	eng := newEngine(p.opts.random)
	encoder, profile := selectEncoder(req.Password, req.Legacy)

	pfx, err := encoder.WithRand(eng.Rand()).Encode(key, cert, nil, req.Password)
	if err != nil {
		return nil, errors.ErrP12CreationFailed(fmt.Errorf("failed to encode PKCS#12: %w", err))
	}

	if err := writeFileAtomic(req.P12Path, pfx, constants.PrivateFileMode); err != nil {
		return nil, errors.ErrP12CreationFailed(err)
	}

	p.logger.Info(ctx, "PKCS#12 archive created",
		logger.String("p12_path", req.P12Path),
		logger.String("profile", profile),
		logger.String("size", utils.FormatFileSize(int64(len(pfx)))),
	)

	return &models.P12Result{P12Path: req.P12Path}, nil
}

// selectEncoder picks the archive profile. An empty password always yields an
// unencrypted archive without a MAC.
func selectEncoder(password string, legacy bool) (*pkcs12.Encoder, string) {
	switch {
	case password == "":
		return pkcs12.Passwordless, "passwordless"
	case legacy:
		return pkcs12.LegacyDES, "legacy-des"
	default:
		return pkcs12.Modern, "modern"
	}
}
