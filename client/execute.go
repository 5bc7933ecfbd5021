package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/kbukum/vcd/logger"
	"github.com/kbukum/vcd/model"
	"github.com/kbukum/vcd/observability"
	"github.com/kbukum/vcd/schema"
	"github.com/kbukum/vcd/transport"
	"github.com/kbukum/vcd/version"

	vcderrors "github.com/kbukum/vcd/errors"
)

// Response headers specific to vCloud Director.
const (
	headerRequestID   = "X-VMWARE-VCLOUD-REQUEST-ID"
	headerTokenType   = "X-VMWARE-VCLOUD-TOKEN-TYPE"
	headerAccessToken = "X-VMWARE-VCLOUD-ACCESS-TOKEN"
)

// Request describes one API call.
type Request struct {
	// Method is the HTTP method.
	Method string

	// URL is the absolute request URL, usually built with APIURL or
	// CloudAPIURL.
	URL string

	// Query parameters. Values are rendered through the codec, so enums
	// and dates read the same as they would in a body.
	Query map[string]any

	// Headers set for this call, overriding the client defaults.
	Headers map[string]any

	// Body is serialized through the codec when non-nil.
	Body any

	// ContentType overrides the Content-Type header sent with a body.
	// Defaults to application/json.
	ContentType string

	// ResponseType selects the type the response body decodes into.
	// Zero keeps the body raw.
	ResponseType schema.TypeRef
}

// Result is the outcome of one successful API call.
type Result struct {
	// Status is the HTTP status code.
	Status int

	// Headers are the response headers.
	Headers http.Header

	// Body is the raw response body.
	Body []byte

	// Decoded is the body decoded as the request's ResponseType, nil when
	// no type was requested.
	Decoded any

	// Links are the hypermedia links attached to the response.
	Links Links

	// Task is the asynchronous task the response referenced, if any.
	Task *model.Task
}

// Execute runs one API call through the full pipeline: default and
// per-call headers, body serialization, transport, typed error mapping,
// response decoding, and link and task extraction.
func (c *Client) Execute(ctx context.Context, req Request) (*Result, error) {
	requestID := uuid.NewString()
	op := observability.NewOperation("execute", requestID, c.metrics)
	ctx, span := op.StartSpan(ctx, observability.SpanAPIRequest)

	cat, catErr := categoryOf(req.URL)
	observability.SetSpanAttribute(ctx, observability.AttrMethod, req.Method)
	observability.SetSpanAttribute(ctx, observability.AttrURL, req.URL)
	observability.SetSpanAttribute(ctx, observability.AttrCategory, cat.String())
	if v := c.APIVersion(); v != "" {
		observability.SetSpanAttribute(ctx, observability.AttrAPIVersion, v)
	}

	var (
		result *Result
		err    error
	)
	if catErr != nil {
		err = catErr
	} else {
		result, err = c.execute(ctx, req, cat, requestID)
	}

	status := "error"
	if result != nil {
		status = strconv.Itoa(result.Status)
		observability.SetSpanAttribute(ctx, observability.AttrStatusCode, result.Status)
		c.last.Store(result)
	}
	op.End(ctx, span, req.Method, cat.String(), status, err)
	return result, err
}

// execute runs the pipeline for one classified request. Synchronous
// follow-ups (the cloud task Location fetch) re-enter here so they share
// the caller's span and request id.
func (c *Client) execute(ctx context.Context, req Request, cat category, requestID string) (*Result, error) {
	treq, err := c.buildRequest(req, cat)
	if err != nil {
		return nil, err
	}

	c.logRequest(treq, requestID, cat)

	resp, terr := c.transport.Do(ctx, treq)
	if resp == nil {
		return nil, terr
	}

	c.logResponse(resp, requestID)

	if statusErr, ok := transport.AsStatusError(terr); ok {
		rerr := c.responseError(statusErr)
		if c.metrics != nil {
			c.metrics.RecordError(ctx, string(rerr.Code), "client")
		}
		return nil, rerr
	}
	if terr != nil {
		return nil, terr
	}

	result := &Result{
		Status:  resp.Status,
		Headers: resp.Headers,
		Body:    resp.Body,
	}

	if !req.ResponseType.IsZero() {
		decoded, derr := c.codec.DecodeBytes(resp.Body, req.ResponseType)
		if derr != nil {
			return nil, derr
		}
		result.Decoded = decoded
	}

	result.Links = c.extractLinks(cat, result)

	tk, err := c.extractTask(ctx, cat, result, requestID)
	if err != nil {
		return nil, err
	}
	result.Task = tk

	return result, nil
}

// buildRequest renders a Request into a transport request: default
// headers first, then per-call headers on top.
func (c *Client) buildRequest(req Request, cat category) (*transport.Request, error) {
	headers := http.Header{}
	headers.Set("Accept", c.acceptFor(cat))
	headers.Set("User-Agent", version.UserAgent())
	if auth := c.authorizationHeader(); auth != "" {
		headers.Set("Authorization", auth)
	}

	var body []byte
	if req.Body != nil {
		data, err := c.codec.EncodeBytes(req.Body)
		if err != nil {
			return nil, err
		}
		body = data
		ct := req.ContentType
		if ct == "" {
			ct = "application/json"
		}
		headers.Set("Content-Type", ct)
	}

	for k, v := range req.Headers {
		s, err := c.codec.SerializeParam(v)
		if err != nil {
			return nil, err
		}
		headers.Set(k, s)
	}

	query := url.Values{}
	for k, v := range req.Query {
		s, err := c.codec.SerializeParam(v)
		if err != nil {
			return nil, err
		}
		query.Set(k, s)
	}

	return &transport.Request{
		Method:  req.Method,
		URL:     req.URL,
		Headers: headers,
		Query:   query,
		Body:    body,
	}, nil
}

// responseError maps a non-2xx response onto the status-selected typed
// error, decoding the body as a vCloud error record when possible.
func (c *Client) responseError(statusErr *transport.StatusError) *vcderrors.ResponseError {
	requestID := statusErr.Headers.Get(headerRequestID)

	var apiErr *model.APIError
	if len(statusErr.Body) > 0 {
		if decoded, err := c.codec.DecodeBytes(statusErr.Body, schema.Named(model.TypeAPIError)); err == nil {
			apiErr, _ = decoded.(*model.APIError)
		}
	}

	return vcderrors.NewResponseError(statusErr.Status, requestID, apiErr, statusErr)
}

// extractTask finds the asynchronous task a response referenced: the body
// itself, a task list embedded in a legacy body, or a cloud Location
// header resolved with a synchronous follow-up GET.
func (c *Client) extractTask(ctx context.Context, cat category, result *Result, requestID string) (*model.Task, error) {
	if t, ok := result.Decoded.(*model.Task); ok {
		return t, nil
	}

	if cat == categoryLegacy {
		if tasks := model.TasksOf(result.Decoded); len(tasks) > 0 {
			return tasks[0], nil
		}
		return nil, nil
	}

	loc := result.Headers.Get("Location")
	if loc == "" {
		return nil, nil
	}
	locCat, err := categoryOf(loc)
	if err != nil {
		return nil, err
	}
	followUp, err := c.execute(ctx, Request{
		Method:       http.MethodGet,
		URL:          loc,
		ResponseType: schema.Named(model.TypeTask),
	}, locCat, requestID)
	if err != nil {
		return nil, err
	}
	t, _ := followUp.Decoded.(*model.Task)
	return t, nil
}

func (c *Client) logRequest(req *transport.Request, requestID string, cat category) {
	c.log.Debug("api request", logger.Fields(
		logger.FieldRequestID, requestID,
		logger.FieldMethod, req.Method,
		logger.FieldURL, req.URL,
		logger.FieldCategory, cat.String(),
	))
	if c.config.LogHeaders {
		c.log.Debug("request headers", logger.Fields(
			logger.FieldRequestID, requestID,
			"headers", logger.RedactHeaders(req.Headers),
		))
	}
	if c.config.LogBodies && len(req.Body) > 0 {
		c.log.Debug("request body", logger.Fields(
			logger.FieldRequestID, requestID,
			"body", string(req.Body),
		))
	}
}

func (c *Client) logResponse(resp *transport.Response, requestID string) {
	c.log.Debug("api response", logger.Fields(
		logger.FieldRequestID, requestID,
		logger.FieldStatus, resp.Status,
	))
	if c.config.LogHeaders {
		c.log.Debug("response headers", logger.Fields(
			logger.FieldRequestID, requestID,
			"headers", logger.RedactHeaders(resp.Headers),
		))
	}
	if c.config.LogBodies && len(resp.Body) > 0 {
		c.log.Debug("response body", logger.Fields(
			logger.FieldRequestID, requestID,
			"body", string(resp.Body),
		))
	}
}
