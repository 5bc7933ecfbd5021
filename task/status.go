package task

import (
	"strings"

	"github.com/kbukum/vcd/model"
	"github.com/kbukum/vcd/util"
)

// Task status values the server reports. The wire value is a free
// string; all comparisons ignore case.
const (
	StatusQueued     = "queued"
	StatusPreRunning = "preRunning"
	StatusRunning    = "running"
	StatusSuccess    = "success"
	StatusError      = "error"
	StatusCanceled   = "canceled"
	StatusAborted    = "aborted"
)

func statusMatches(status string, set []string) bool {
	for _, s := range set {
		if strings.EqualFold(status, s) {
			return true
		}
	}
	return false
}

func statusOf(t *model.Task) string {
	if t == nil {
		return ""
	}
	return util.Deref(t.Status)
}

func hrefOf(t *model.Task) string {
	if t == nil {
		return ""
	}
	return util.Deref(t.Href)
}
