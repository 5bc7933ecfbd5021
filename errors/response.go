package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/kbukum/vcd/model"
)

// ResponseError is the unified error for a non-2xx API response.
type ResponseError struct {
	// Status is the HTTP status the server returned.
	Status int
	// Code is the machine-readable code selected by status.
	Code ErrorCode
	// RequestID is the server-side correlation id, when the server sent one.
	RequestID string
	// APIError is the structured error body, nil when the response carried
	// none or it could not be decoded.
	APIError *model.APIError
	// Cause is the underlying transport error.
	Cause error
}

// NewResponseError builds the typed error for a failed API call, selecting
// the code from the status lookup table.
func NewResponseError(status int, requestID string, apiErr *model.APIError, cause error) *ResponseError {
	return &ResponseError{
		Status:    status,
		Code:      CodeForStatus(status),
		RequestID: requestID,
		APIError:  apiErr,
		Cause:     cause,
	}
}

// Error returns the string representation of the error.
func (e *ResponseError) Error() string {
	msg := fmt.Sprintf("%s: status %d", e.Code, e.Status)
	if e.APIError != nil && e.APIError.MinorErrorCode != nil {
		msg += "/" + *e.APIError.MinorErrorCode
	}
	if e.RequestID != "" {
		msg += ", request id " + e.RequestID
	}
	if e.APIError != nil && e.APIError.Message != nil {
		msg += ": " + *e.APIError.Message
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause of the error.
func (e *ResponseError) Unwrap() error { return e.Cause }

// Retryable reports whether a caller may reasonably retry the failed call.
func (e *ResponseError) Retryable() bool {
	return IsRetryableCode(e.Code)
}

// Message returns the server's error message, or "" when the response
// carried no structured body.
func (e *ResponseError) Message() string {
	if e.APIError == nil || e.APIError.Message == nil {
		return ""
	}
	return *e.APIError.Message
}

// IsResponseError checks if an error is a ResponseError.
func IsResponseError(err error) bool {
	var rerr *ResponseError
	return stderrors.As(err, &rerr)
}

// AsResponseError converts an error to a ResponseError if possible.
func AsResponseError(err error) (*ResponseError, bool) {
	var rerr *ResponseError
	if stderrors.As(err, &rerr) {
		return rerr, true
	}
	return nil, false
}

func hasCode(err error, code ErrorCode) bool {
	rerr, ok := AsResponseError(err)
	return ok && rerr.Code == code
}

// IsBadRequest reports whether err is a 400 response error.
func IsBadRequest(err error) bool { return hasCode(err, ErrCodeBadRequest) }

// IsUnauthorized reports whether err is a 401 response error.
func IsUnauthorized(err error) bool { return hasCode(err, ErrCodeUnauthorized) }

// IsAccessForbidden reports whether err is a 403 response error.
func IsAccessForbidden(err error) bool { return hasCode(err, ErrCodeAccessForbidden) }

// IsNotFound reports whether err is a 404 response error.
func IsNotFound(err error) bool { return hasCode(err, ErrCodeNotFound) }

// IsMethodNotAllowed reports whether err is a 405 response error.
func IsMethodNotAllowed(err error) bool { return hasCode(err, ErrCodeMethodNotAllowed) }

// IsNotAcceptable reports whether err is a 406 response error.
func IsNotAcceptable(err error) bool { return hasCode(err, ErrCodeNotAcceptable) }

// IsRequestTimeout reports whether err is a 408 response error.
func IsRequestTimeout(err error) bool { return hasCode(err, ErrCodeRequestTimeout) }

// IsConflict reports whether err is a 409 response error.
func IsConflict(err error) bool { return hasCode(err, ErrCodeConflict) }

// IsUnsupportedMediaType reports whether err is a 415 response error.
func IsUnsupportedMediaType(err error) bool { return hasCode(err, ErrCodeUnsupportedMediaType) }

// IsInvalidContentLength reports whether err is a 416 response error.
func IsInvalidContentLength(err error) bool { return hasCode(err, ErrCodeInvalidContentLength) }

// IsInternalServerError reports whether err is a 500 response error.
func IsInternalServerError(err error) bool { return hasCode(err, ErrCodeInternalServerError) }

// IsUnknownAPI reports whether err is a response error with no dedicated
// status code.
func IsUnknownAPI(err error) bool { return hasCode(err, ErrCodeUnknownAPI) }
