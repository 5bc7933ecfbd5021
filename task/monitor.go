package task

import (
	"context"
	"fmt"
	"time"

	"github.com/kbukum/vcd/logger"
	"github.com/kbukum/vcd/model"
	"github.com/kbukum/vcd/observability"
)

// Defaults for one wait.
const (
	DefaultTimeout      = 600 * time.Second
	DefaultPollInterval = 5 * time.Second
)

// Getter fetches the current state of a task by href.
type Getter interface {
	GetTask(ctx context.Context, href string) (*model.Task, error)
}

// Monitor polls tasks through a Getter until they reach a terminal
// status. A Monitor is stateless between waits and safe for concurrent
// use.
type Monitor struct {
	getter  Getter
	log     *logger.Logger
	metrics *observability.Metrics
}

// MonitorOption customizes monitor construction.
type MonitorOption func(*Monitor)

// WithMonitorLogger sets the logger. The default discards everything.
func WithMonitorLogger(l *logger.Logger) MonitorOption {
	return func(m *Monitor) {
		if l != nil {
			m.log = l
		}
	}
}

// WithMonitorMetrics attaches metric instruments recorded on every poll
// and completed wait.
func WithMonitorMetrics(metrics *observability.Metrics) MonitorOption {
	return func(m *Monitor) { m.metrics = metrics }
}

// NewMonitor creates a monitor that fetches task state through g.
func NewMonitor(g Getter, opts ...MonitorOption) *Monitor {
	m := &Monitor{
		getter: g,
		log:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type waitOptions struct {
	timeout  time.Duration
	poll     time.Duration
	targets  []string
	failOn   []string
	progress func(*model.Task)
}

// Option customizes one wait.
type Option func(*waitOptions)

// WithTimeout bounds the wait in wall-clock time. The timeout covers the
// whole wait, not individual polls; a hung fetch is bounded by the
// transport's own timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *waitOptions) { o.timeout = d }
}

// WithPollInterval sets the pause between polls.
func WithPollInterval(d time.Duration) Option {
	return func(o *waitOptions) { o.poll = d }
}

// WithTargets replaces the statuses that complete the wait.
func WithTargets(statuses ...string) Option {
	return func(o *waitOptions) { o.targets = statuses }
}

// WithFailOn replaces the statuses treated as failure.
func WithFailOn(statuses ...string) Option {
	return func(o *waitOptions) { o.failOn = statuses }
}

// WithProgress sets a callback invoked with every polled task state,
// before the state is inspected.
func WithProgress(fn func(*model.Task)) Option {
	return func(o *waitOptions) { o.progress = fn }
}

// WaitForSuccess blocks until the task reaches the success status.
// WithTargets is ignored; use WaitForStatus to wait for other statuses.
func (m *Monitor) WaitForSuccess(ctx context.Context, t *model.Task, opts ...Option) (*model.Task, error) {
	opts = append(opts, WithTargets(StatusSuccess))
	return m.WaitForStatus(ctx, t, opts...)
}

// WaitForStatus blocks until the task reaches one of the target statuses
// (success unless WithTargets says otherwise). The task is fetched by
// href once per poll interval; a fail status returns *FailedError, an
// exhausted timeout returns *TimeoutError, and context cancellation is
// honored at every iteration.
func (m *Monitor) WaitForStatus(ctx context.Context, t *model.Task, opts ...Option) (*model.Task, error) {
	o := waitOptions{
		timeout: DefaultTimeout,
		poll:    DefaultPollInterval,
		targets: []string{StatusSuccess},
		failOn:  []string{StatusError, StatusCanceled, StatusAborted},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.timeout <= 0 {
		o.timeout = DefaultTimeout
	}
	if o.poll <= 0 {
		o.poll = DefaultPollInterval
	}

	href := hrefOf(t)
	if href == "" {
		return nil, fmt.Errorf("task: task carries no href")
	}

	ctx, span := observability.StartSpan(ctx, observability.SpanTaskWait)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrTaskHref, href)

	m.log.Debug("waiting for task", logger.Fields(
		logger.FieldTaskHref, href,
		"targets", o.targets,
		"timeout", o.timeout.String(),
	))

	start := time.Now()
	result, err := m.wait(ctx, href, o, start)

	if err != nil {
		observability.SetSpanError(ctx, err)
	} else {
		observability.SetSpanAttribute(ctx, observability.AttrTaskStatus, statusOf(result))
	}
	if m.metrics != nil {
		m.metrics.RecordTaskWait(ctx, waitOutcome(err), time.Since(start))
	}
	return result, err
}

func (m *Monitor) wait(ctx context.Context, href string, o waitOptions, start time.Time) (*model.Task, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fetched, err := m.getter.GetTask(ctx, href)
		if err != nil {
			return nil, err
		}
		if fetched == nil {
			return nil, fmt.Errorf("task: poll returned no task")
		}

		status := statusOf(fetched)
		if m.metrics != nil {
			m.metrics.RecordTaskPoll(ctx, status)
		}
		m.log.Debug("task polled", logger.Fields(
			logger.FieldTaskHref, href,
			logger.FieldTaskStatus, status,
		))

		if o.progress != nil {
			o.progress(fetched)
		}

		if statusMatches(status, o.targets) {
			return fetched, nil
		}
		if statusMatches(status, o.failOn) {
			return nil, &FailedError{Task: fetched, Status: status}
		}

		elapsed := time.Since(start)
		if elapsed >= o.timeout {
			return nil, &TimeoutError{Timeout: o.timeout, Elapsed: elapsed, LastStatus: status}
		}

		timer := time.NewTimer(o.poll)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func waitOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case IsFailed(err):
		return "failed"
	case IsTimeout(err):
		return "timeout"
	default:
		return "error"
	}
}
