// Package constants defines system-wide constants for certgen.
// This package provides type-safe constant definitions used across all modules.
package constants

import "encoding/asn1"

// ================================================================================
// Key Constants
// ================================================================================

// RSAKeyBits is the only supported key size for generated key pairs.
const RSAKeyBits = 2048

// KeyFormat selects the PEM encoding of a generated private key
type KeyFormat string

const (
	// KeyFormatPKCS8 writes a "PRIVATE KEY" block
	KeyFormatPKCS8 KeyFormat = "pkcs8"

	// KeyFormatRSA writes a PKCS#1 "RSA PRIVATE KEY" block
	KeyFormatRSA KeyFormat = "rsa"
)

// DefaultKeyFormat is the encoding used when none is configured
const DefaultKeyFormat = KeyFormatPKCS8

// ================================================================================
// PEM Block Types
// ================================================================================

const (
	PEMTypeCertificate         = "CERTIFICATE"
	PEMTypeCertificateRequest  = "CERTIFICATE REQUEST"
	PEMTypeRSAPrivateKey       = "RSA PRIVATE KEY"
	PEMTypePrivateKey          = "PRIVATE KEY"
	PEMTypeEncryptedPrivateKey = "ENCRYPTED PRIVATE KEY"
	PEMTypeECPrivateKey        = "EC PRIVATE KEY"
)

// ================================================================================
// File Modes
// ================================================================================

const (
	// PrivateFileMode is used for private keys and PKCS#12 archives
	PrivateFileMode = 0o600

	// PublicFileMode is used for CSRs
	PublicFileMode = 0o644
)

// ================================================================================
// Object Identifiers
// ================================================================================

var (
	OIDCommonName         = asn1.ObjectIdentifier{2, 5, 4, 3}
	OIDCountry            = asn1.ObjectIdentifier{2, 5, 4, 6}
	OIDLocality           = asn1.ObjectIdentifier{2, 5, 4, 7}
	OIDState              = asn1.ObjectIdentifier{2, 5, 4, 8}
	OIDOrganization       = asn1.ObjectIdentifier{2, 5, 4, 10}
	OIDOrganizationalUnit = asn1.ObjectIdentifier{2, 5, 4, 11}
	OIDEmailAddress       = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 1}
)

// ================================================================================
// Operation Names
// ================================================================================

// Operation names a core operation for logs, metrics and spans
type Operation string

const (
	OperationGenerateCSR      Operation = "generate-csr"
	OperationCreateP12        Operation = "create-p12"
	OperationParseCertificate Operation = "parse-cert"
)

// OperationResult labels the outcome of an operation in metrics
type OperationResult string

const (
	ResultSuccess OperationResult = "success"
	ResultFailure OperationResult = "failure"
)

// ================================================================================
// Error Code Constants
// ================================================================================

// ErrorCode identifies a class of failure reported to callers
type ErrorCode string

const (
	// ErrCodeCSRGenerationFailed covers key generation, CSR signing and their file writes
	ErrCodeCSRGenerationFailed ErrorCode = "csr_generation_failed"

	// ErrCodeP12CreationFailed covers certificate/key decoding and archive encoding
	ErrCodeP12CreationFailed ErrorCode = "p12_creation_failed"

	// ErrCodeCertificateParseFailed covers unreadable or malformed certificates
	ErrCodeCertificateParseFailed ErrorCode = "certificate_parse_failed"

	// ErrCodeInvalidRequest indicates bad flags or configuration before any operation ran
	ErrCodeInvalidRequest ErrorCode = "invalid_request"
)

// ================================================================================
// Log Levels
// ================================================================================

// LogLevel represents the severity level of log messages
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// ================================================================================
// Context Keys
// ================================================================================

// ContextKey represents keys used in context.Context
type ContextKey string

const (
	// ContextKeyRunID is the key for the per-invocation run ID
	ContextKeyRunID ContextKey = "run_id"

	// ContextKeyOperation is the key for the operation being executed
	ContextKeyOperation ContextKey = "operation"
)

// ================================================================================
// Exit Codes
// ================================================================================

const (
	ExitCodeSuccess = 0
	ExitCodeFailure = 1
)
