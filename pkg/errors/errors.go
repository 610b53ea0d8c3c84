// Package errors defines custom error types and error handling utilities for certgen.
// Every failure of a core operation is reported as a CertError carrying one of the
// codes in pkg/constants and, where available, the underlying cause.
package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/turtacn/certgen/pkg/constants"
)

// ================================================================================
// Base Error Interface
// ================================================================================

// CertError represents a structured error with additional metadata
type CertError interface {
	error

	// Code returns the error code
	Code() constants.ErrorCode

	// Description returns a human-readable description of the error class
	Description() string

	// Unwrap returns the underlying error for error chain support
	Unwrap() error

	// WithCause adds a cause error to the error chain
	WithCause(cause error) CertError

	// WithMetadata adds additional context metadata
	WithMetadata(key string, value interface{}) CertError

	// Metadata returns all metadata
	Metadata() map[string]interface{}
}

// ================================================================================
// Base Error Implementation
// ================================================================================

type baseError struct {
	code        constants.ErrorCode
	description string
	message     string
	cause       error
	metadata    map[string]interface{}
}

// Error renders "message: cause" so the underlying reason reaches the caller
func (e *baseError) Error() string {
	msg := e.message
	if msg == "" {
		msg = e.description
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

func (e *baseError) Code() constants.ErrorCode {
	return e.code
}

func (e *baseError) Description() string {
	return e.description
}

func (e *baseError) Unwrap() error {
	return e.cause
}

func (e *baseError) WithCause(cause error) CertError {
	e.cause = cause
	return e
}

func (e *baseError) WithMetadata(key string, value interface{}) CertError {
	if e.metadata == nil {
		e.metadata = make(map[string]interface{})
	}
	e.metadata[key] = value
	return e
}

func (e *baseError) Metadata() map[string]interface{} {
	return e.metadata
}

// ================================================================================
// Error Constructor
// ================================================================================

// NewError creates a new CertError with the specified parameters
func NewError(code constants.ErrorCode, description string, message string) CertError {
	return &baseError{
		code:        code,
		description: description,
		message:     message,
		metadata:    make(map[string]interface{}),
	}
}

// ================================================================================
// Predefined Error Constructors
// ================================================================================

// ErrCSRGenerationFailed creates a csr_generation_failed error wrapping cause
func ErrCSRGenerationFailed(cause error) CertError {
	return NewError(
		constants.ErrCodeCSRGenerationFailed,
		"Failed to generate CSR",
		"Failed to generate CSR",
	).WithCause(cause)
}

// ErrP12CreationFailed creates a p12_creation_failed error wrapping cause
func ErrP12CreationFailed(cause error) CertError {
	return NewError(
		constants.ErrCodeP12CreationFailed,
		"Failed to create P12",
		"Failed to create P12",
	).WithCause(cause)
}

// ErrCertificateParseFailed creates a certificate_parse_failed error wrapping cause
func ErrCertificateParseFailed(cause error) CertError {
	return NewError(
		constants.ErrCodeCertificateParseFailed,
		"Failed to parse certificate",
		"Failed to parse certificate",
	).WithCause(cause)
}

// ErrInvalidRequest creates an invalid_request error
func ErrInvalidRequest(message string) CertError {
	return NewError(
		constants.ErrCodeInvalidRequest,
		"The command is missing a required flag or includes an invalid value.",
		message,
	)
}

// ErrMissingRequiredParameter creates a missing required parameter error
func ErrMissingRequiredParameter(paramName string) CertError {
	return ErrInvalidRequest(fmt.Sprintf("Missing required parameter: %s", paramName)).
		WithMetadata("parameter", paramName)
}

// ================================================================================
// Error Validation Utilities
// ================================================================================

// AsCertError finds the first CertError in err's chain
func AsCertError(err error) (CertError, bool) {
	var certErr CertError
	if stderrors.As(err, &certErr) {
		return certErr, true
	}
	return nil, false
}

// HasCode reports whether err carries the given code anywhere in its chain
func HasCode(err error, code constants.ErrorCode) bool {
	certErr, ok := AsCertError(err)
	return ok && certErr.Code() == code
}

// ================================================================================
// Error Response Builder
// ================================================================================

// ErrorResponse is the JSON failure payload written to stdout
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

// ToErrorResponse converts any error into the failure payload
func ToErrorResponse(err error) *ErrorResponse {
	resp := &ErrorResponse{Success: false, Error: "An unexpected error occurred"}
	if err == nil {
		return resp
	}
	resp.Error = err.Error()
	if certErr, ok := AsCertError(err); ok {
		resp.Code = string(certErr.Code())
	}
	return resp
}
