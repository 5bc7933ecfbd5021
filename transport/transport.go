package transport

import (
	"context"
	"net/http"
	"net/url"
)

// Transport sends a prepared request and returns the raw response. A non-2xx
// status yields both the response and a *StatusError; network failures yield
// a *Error.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// Request describes an outbound HTTP request. URL is absolute; headers and
// query values are sent as given, with no further encoding decisions.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, DELETE, etc).
	Method string
	// URL is the absolute request URL.
	URL string
	// Headers are the request headers.
	Headers http.Header
	// Query values are merged into the URL's query string.
	Query url.Values
	// Body is the encoded request body, nil for bodyless requests.
	Body []byte
}

// Response is the result of an HTTP request.
type Response struct {
	// Status is the HTTP status code.
	Status int
	// Headers are the response headers, repeated values preserved.
	Headers http.Header
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.Status >= 200 && r.Status < 300
}

// Header returns the first value of the named response header.
func (r *Response) Header(name string) string {
	return r.Headers.Get(name)
}
