// Package service defines the interfaces for domain services.
package service

import (
	"context"

	"github.com/turtacn/certgen/internal/domain/models"
)

//go:generate mockery --name CSRGenerator --output mocks --outpkg mocks
// CSRGenerator produces an RSA key pair and a self-signed PKCS#10 request.
// CSRGenerator 生成 RSA 密钥对和自签名的 PKCS#10 请求。
type CSRGenerator interface {
	// GenerateCSR writes the private key, then the CSR, and returns both paths.
	// GenerateCSR 先写入私钥，再写入 CSR，并返回两个路径。
	GenerateCSR(ctx context.Context, req models.CSRRequest) (*models.CSRResult, error)
}

//go:generate mockery --name P12Packager --output mocks --outpkg mocks
// P12Packager bundles a certificate and its private key into a PKCS#12 archive.
// The key/certificate pairing is the caller's responsibility and is not checked.
// P12Packager 将证书和私钥打包为 PKCS#12 文件，不校验二者是否匹配。
type P12Packager interface {
	// CreateP12 writes a DER-encoded PKCS#12 archive.
	// CreateP12 写入 DER 编码的 PKCS#12 文件。
	CreateP12(ctx context.Context, req models.P12Request) (*models.P12Result, error)
}

//go:generate mockery --name CertificateInspector --output mocks --outpkg mocks
// CertificateInspector extracts structured metadata from a PEM certificate.
// CertificateInspector 从 PEM 证书中提取结构化元数据。
type CertificateInspector interface {
	// ParseCertificate decodes the certificate at certPath.
	// ParseCertificate 解析 certPath 处的证书。
	ParseCertificate(ctx context.Context, certPath string) (*models.CertificateInfo, error)
}
