// Package errors defines the typed errors the client surfaces for failed
// API calls. Every non-2xx response maps to a *ResponseError whose code is
// selected by HTTP status, carrying the request id and the structured
// server error body. Match errors by code with the Is* helpers rather than
// by message.
package errors
