package transport

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies transport-level failures.
type ErrorCode int

const (
	// ErrCodeTimeout indicates a request or connection timeout.
	ErrCodeTimeout ErrorCode = iota
	// ErrCodeConnection indicates a connection failure (refused, DNS, reset).
	ErrCodeConnection
	// ErrCodeTLS indicates a TLS handshake or certificate verification failure.
	ErrCodeTLS
	// ErrCodeRequest indicates the request could not be built or sent.
	ErrCodeRequest
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeTLS:
		return "tls"
	case ErrCodeRequest:
		return "request"
	default:
		return "unknown"
	}
}

// Error is a structured transport error with classification. It covers
// failures below the HTTP layer; responses that arrive with a non-2xx
// status are reported as *StatusError instead.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("transport: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *Error {
	return &Error{
		Code:    ErrCodeTimeout,
		Message: err.Error(),
		Err:     err,
	}
}

// NewConnectionError creates a connection error.
func NewConnectionError(err error) *Error {
	return &Error{
		Code:    ErrCodeConnection,
		Message: err.Error(),
		Err:     err,
	}
}

// NewTLSError creates a TLS error.
func NewTLSError(err error) *Error {
	return &Error{
		Code:    ErrCodeTLS,
		Message: err.Error(),
		Err:     err,
	}
}

// NewRequestError creates a request construction error.
func NewRequestError(err error) *Error {
	return &Error{
		Code:    ErrCodeRequest,
		Message: err.Error(),
		Err:     err,
	}
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTimeout
}

// IsConnection checks if an error is a connection error.
func IsConnection(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConnection
}

// IsTLS checks if an error is a TLS error.
func IsTLS(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTLS
}

// StatusError reports a response that arrived with a non-2xx status.
// The response itself is still returned alongside it so callers can
// inspect headers and decode the error body.
type StatusError struct {
	// Status is the HTTP status code.
	Status int
	// Headers are the response headers.
	Headers http.Header
	// Body is the raw response body (may be empty).
	Body []byte
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("transport: HTTP %d", e.Status)
}

// AsStatusError extracts a *StatusError from an error chain.
func AsStatusError(err error) (*StatusError, bool) {
	var e *StatusError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
