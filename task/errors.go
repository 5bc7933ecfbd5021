package task

import (
	"errors"
	"fmt"
	"time"

	"github.com/kbukum/vcd/model"
)

// FailedError reports a task that reached a fail status. The polled task
// is attached, so the server's structured error is available through
// APIError.
type FailedError struct {
	Task   *model.Task
	Status string
}

func (e *FailedError) Error() string {
	msg := fmt.Sprintf("task failed with status %q", e.Status)
	if e.Task != nil && e.Task.Operation != nil {
		msg = fmt.Sprintf("task %q failed with status %q", *e.Task.Operation, e.Status)
	}
	if detail := e.APIError(); detail != nil && detail.Message != nil {
		msg += ": " + *detail.Message
	}
	return msg
}

// APIError returns the structured server error attached to the failed
// task, nil when the server reported none.
func (e *FailedError) APIError() *model.APIError {
	if e.Task == nil {
		return nil
	}
	return e.Task.Error
}

// TimeoutError reports a wait whose task never reached a terminal status
// within the timeout.
type TimeoutError struct {
	Timeout    time.Duration
	Elapsed    time.Duration
	LastStatus string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("task did not complete within %s: last status %q after %s",
		e.Timeout, e.LastStatus, e.Elapsed.Round(time.Millisecond))
}

// IsFailed checks if an error reports a task that reached a fail status.
func IsFailed(err error) bool {
	var e *FailedError
	return errors.As(err, &e)
}

// IsTimeout checks if an error reports an exhausted wait timeout.
func IsTimeout(err error) bool {
	var e *TimeoutError
	return errors.As(err, &e)
}
