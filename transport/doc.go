// Package transport is the HTTP layer beneath the API client. It sends
// fully-built requests and returns raw responses, classifying network
// failures and non-2xx statuses into typed errors.
//
// The client above it owns serialization, authentication headers, and the
// mapping of server errors; the transport owns connections, TLS, and
// timeouts. Response headers are kept as an http.Header multimap because
// the server returns repeated Link headers.
package transport
