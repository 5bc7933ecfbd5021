package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// One code per HTTP status the server distinguishes, plus a catch-all for
// everything else.
const (
	// ErrCodeBadRequest indicates a 400 response.
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"
	// ErrCodeUnauthorized indicates a 401 response.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeAccessForbidden indicates a 403 response.
	ErrCodeAccessForbidden ErrorCode = "ACCESS_FORBIDDEN"
	// ErrCodeNotFound indicates a 404 response.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeMethodNotAllowed indicates a 405 response.
	ErrCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	// ErrCodeNotAcceptable indicates a 406 response.
	ErrCodeNotAcceptable ErrorCode = "NOT_ACCEPTABLE"
	// ErrCodeRequestTimeout indicates a 408 response.
	ErrCodeRequestTimeout ErrorCode = "REQUEST_TIMEOUT"
	// ErrCodeConflict indicates a 409 response.
	ErrCodeConflict ErrorCode = "CONFLICT"
	// ErrCodeUnsupportedMediaType indicates a 415 response.
	ErrCodeUnsupportedMediaType ErrorCode = "UNSUPPORTED_MEDIA_TYPE"
	// ErrCodeInvalidContentLength indicates a 416 response.
	ErrCodeInvalidContentLength ErrorCode = "INVALID_CONTENT_LENGTH"
	// ErrCodeInternalServerError indicates a 500 response.
	ErrCodeInternalServerError ErrorCode = "INTERNAL_SERVER_ERROR"
	// ErrCodeUnknownAPI indicates a status with no dedicated code.
	ErrCodeUnknownAPI ErrorCode = "UNKNOWN_API"
)

var codeByStatus = map[int]ErrorCode{
	400: ErrCodeBadRequest,
	401: ErrCodeUnauthorized,
	403: ErrCodeAccessForbidden,
	404: ErrCodeNotFound,
	405: ErrCodeMethodNotAllowed,
	406: ErrCodeNotAcceptable,
	408: ErrCodeRequestTimeout,
	409: ErrCodeConflict,
	415: ErrCodeUnsupportedMediaType,
	416: ErrCodeInvalidContentLength,
	500: ErrCodeInternalServerError,
}

// CodeForStatus returns the error code for an HTTP status, falling back to
// ErrCodeUnknownAPI for statuses without a dedicated code.
func CodeForStatus(status int) ErrorCode {
	if code, ok := codeByStatus[status]; ok {
		return code
	}
	return ErrCodeUnknownAPI
}

var retryableCodes = map[ErrorCode]bool{
	ErrCodeRequestTimeout:      true,
	ErrCodeInternalServerError: true,
}

// IsRetryableCode returns true if the error code indicates a condition a
// caller may retry. The client itself never retries.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
