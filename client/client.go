package client

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/kbukum/vcd/codec"
	"github.com/kbukum/vcd/logger"
	"github.com/kbukum/vcd/model"
	"github.com/kbukum/vcd/observability"
	"github.com/kbukum/vcd/schema"
	"github.com/kbukum/vcd/task"
	"github.com/kbukum/vcd/transport"
)

// Client executes typed calls against a vCloud Director endpoint.
//
// A Client is safe for concurrent use; credentials and the pinned API
// version are guarded internally. The retained most-recent result is only
// meaningful for single-threaded call sequences, since concurrent calls
// overwrite it in completion order.
type Client struct {
	config    Config
	transport transport.Transport
	codec     *codec.Codec
	log       *logger.Logger
	metrics   *observability.Metrics

	mu         sync.Mutex
	apiVersion string
	authHeader string
	token      string
	session    *model.Session

	last atomic.Pointer[Result]
}

// Option customizes client construction.
type Option func(*options)

type options struct {
	transport transport.Transport
	registry  *schema.Registry
	log       *logger.Logger
	metrics   *observability.Metrics
}

// WithTransport replaces the default HTTP transport.
func WithTransport(t transport.Transport) Option {
	return func(o *options) { o.transport = t }
}

// WithRegistry replaces the default model registry. Use model.NewRegistry
// with extra descriptors to extend the shipped catalog instead of
// replacing it.
func WithRegistry(r *schema.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMetrics attaches metric instruments recorded on every call.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// New creates a client for the configured endpoint.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.transport == nil {
		t, err := transport.New(cfg.Transport)
		if err != nil {
			return nil, err
		}
		o.transport = t
	}
	if o.registry == nil {
		r, err := model.NewRegistry()
		if err != nil {
			return nil, err
		}
		o.registry = r
	}
	if o.log == nil {
		o.log = logger.Nop()
	}

	return &Client{
		config:     cfg,
		transport:  o.transport,
		codec:      codec.New(o.registry),
		log:        o.log.WithComponent("client"),
		metrics:    o.metrics,
		apiVersion: cfg.APIVersion,
	}, nil
}

// Codec returns the codec used for request and response bodies.
func (c *Client) Codec() *codec.Codec {
	return c.codec
}

// APIVersion returns the pinned API version, empty until negotiated or
// set explicitly.
func (c *Client) APIVersion() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apiVersion
}

// SetAPIVersion pins the API version sent on every request.
func (c *Client) SetAPIVersion(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiVersion = v
}

// LastResult returns the most recent successful call's result, nil before
// the first call. Not meaningful when calls run concurrently.
func (c *Client) LastResult() *Result {
	return c.last.Load()
}

// FindLink searches the most recent result's links. See Links.Find.
func (c *Client) FindLink(rel string, attrs map[string]string) *model.Link {
	if r := c.last.Load(); r != nil {
		return r.Links.Find(rel, attrs)
	}
	return nil
}

// WaitForLastTask blocks until the task referenced by the most recent
// result completes, using the given monitor options.
func (c *Client) WaitForLastTask(ctx context.Context, opts ...task.Option) (*model.Task, error) {
	r := c.last.Load()
	if r == nil || r.Task == nil {
		return nil, fmt.Errorf("client: last result carries no task")
	}
	monitor := task.NewMonitor(c, task.WithMonitorLogger(c.log), task.WithMonitorMetrics(c.metrics))
	return monitor.WaitForSuccess(ctx, r.Task, opts...)
}

func (c *Client) authorizationHeader() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authHeader
}
