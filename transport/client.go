package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Client is the default Transport backed by net/http with configurable
// TLS and timeouts.
type Client struct {
	httpClient *http.Client
	config     Config
}

var _ Transport = (*Client)(nil)

// New creates a new transport client with the given configuration.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tr := http.DefaultTransport.(*http.Transport).Clone()

	// Apply TLS configuration
	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, NewTLSError(err)
		}
		if tlsCfg != nil {
			tr.TLSClientConfig = tlsCfg
		}
	}

	return &Client{
		httpClient: &http.Client{
			Transport: tr,
			Timeout:   cfg.Timeout,
		},
		config: cfg,
	}, nil
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client {
	return c.httpClient
}

// Do executes an HTTP request and returns the complete response. A
// response that arrives with a non-2xx status is returned together with
// a *StatusError so callers can decode the error body.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyNetworkError(ctx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewConnectionError(fmt.Errorf("read response body: %w", err))
	}

	result := &Response{
		Status:  resp.StatusCode,
		Headers: resp.Header,
		Body:    body,
	}

	if !result.IsSuccess() {
		return result, &StatusError{
			Status:  resp.StatusCode,
			Headers: resp.Header,
			Body:    body,
		}
	}

	return result, nil
}

// buildRequest constructs an *http.Request from the transport request.
func (c *Client) buildRequest(ctx context.Context, req *Request) (*http.Request, error) {
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, NewRequestError(err)
	}

	// Merge query parameters into any already present on the URL
	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, vs := range req.Query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	for k, vs := range req.Headers {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}

	return httpReq, nil
}

// classifyNetworkError converts an error from http.Client.Do into a
// typed transport error.
func classifyNetworkError(ctx context.Context, err error) *Error {
	if ctx.Err() != nil {
		return NewTimeoutError(err)
	}
	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return NewTLSError(err)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return NewTimeoutError(err)
	}
	return NewConnectionError(err)
}
