package crypto

import (
	"context"
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"

	"github.com/turtacn/certgen/internal/domain/models"
	"github.com/turtacn/certgen/internal/domain/service"
	"github.com/turtacn/certgen/pkg/constants"
	"github.com/turtacn/certgen/pkg/errors"
	"github.com/turtacn/certgen/pkg/logger"
)

// CertificateInspector reads certificate metadata from PEM files.
type CertificateInspector struct {
	logger logger.Logger
}

var _ service.CertificateInspector = (*CertificateInspector)(nil)

// NewCertificateInspector creates a new CertificateInspector.
func NewCertificateInspector(log logger.Logger) *CertificateInspector {
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &CertificateInspector{logger: log.WithComponent("cert_inspector")}
}

// ParseCertificate decodes the first certificate in certPath and flattens its
// subject, issuer, serial, validity, version and signature algorithm.
func (i *CertificateInspector) ParseCertificate(ctx context.Context, certPath string) (*models.CertificateInfo, error) {
	if certPath == "" {
		return nil, errors.ErrCertificateParseFailed(fmt.Errorf("certificate path is required"))
	}

	cert, err := readCertificate(certPath)
	if err != nil {
		return nil, errors.ErrCertificateParseFailed(err)
	}

	notBefore, notAfter, err := rawValidity(cert.RawTBSCertificate)
	if err != nil {
		return nil, errors.ErrCertificateParseFailed(fmt.Errorf("failed to read validity: %w", err))
	}

	sigOID, err := rawSignatureOID(cert.Raw)
	if err != nil {
		return nil, errors.ErrCertificateParseFailed(fmt.Errorf("failed to read signature algorithm: %w", err))
	}

	info := &models.CertificateInfo{
		Subject: models.SubjectInfo{
			CommonName:         firstAttribute(cert.Subject, constants.OIDCommonName),
			Organization:       firstAttribute(cert.Subject, constants.OIDOrganization),
			OrganizationalUnit: firstAttribute(cert.Subject, constants.OIDOrganizationalUnit),
			Country:            firstAttribute(cert.Subject, constants.OIDCountry),
			State:              firstAttribute(cert.Subject, constants.OIDState),
			Locality:           firstAttribute(cert.Subject, constants.OIDLocality),
			Email:              firstAttribute(cert.Subject, constants.OIDEmailAddress),
		},
		Issuer: models.IssuerInfo{
			CommonName:         firstAttribute(cert.Issuer, constants.OIDCommonName),
			Organization:       firstAttribute(cert.Issuer, constants.OIDOrganization),
			OrganizationalUnit: firstAttribute(cert.Issuer, constants.OIDOrganizationalUnit),
			Country:            firstAttribute(cert.Issuer, constants.OIDCountry),
		},
		SerialNumber:       cert.SerialNumber.String(),
		NotBefore:          notBefore,
		NotAfter:           notAfter,
		Version:            cert.Version - 1,
		SignatureAlgorithm: signatureAlgorithmName(sigOID),
	}

	i.logger.Debug(ctx, "Certificate parsed",
		logger.String("cert_path", certPath),
		logger.String("serial_number", info.SerialNumber),
		logger.String("signature_algorithm", info.SignatureAlgorithm),
	)

	return info, nil
}

// firstAttribute returns the first value of oid in name, or "" if absent.
func firstAttribute(name pkix.Name, oid asn1.ObjectIdentifier) string {
	for _, atv := range name.Names {
		if !atv.Type.Equal(oid) {
			continue
		}
		if s, ok := atv.Value.(string); ok {
			return s
		}
		return fmt.Sprint(atv.Value)
	}
	return ""
}
