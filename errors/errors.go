package errors

import (
	stderrors "errors"
	"fmt"
)

// InvalidURIError reports a request URI that belongs to neither the /api
// nor the /cloudapi namespace. This is a programming error on the caller's
// side, not a server response.
type InvalidURIError struct {
	URI string
}

// Error returns the string representation of the error.
func (e *InvalidURIError) Error() string {
	return fmt.Sprintf("invalid URI %q: valid URI patterns are <host>/api/... and <host>/cloudapi/...", e.URI)
}

// AuthenticationError reports a login the server accepted at the HTTP
// level without establishing a usable session, such as a token response
// with no access token or a bearer validation that matched no session.
type AuthenticationError struct {
	Message string
}

// Error returns the string representation of the error.
func (e *AuthenticationError) Error() string {
	return "authentication failed: " + e.Message
}

// IsAuthenticationError checks if an error is an authentication error.
func IsAuthenticationError(err error) bool {
	var e *AuthenticationError
	return stderrors.As(err, &e)
}
