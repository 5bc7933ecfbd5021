package logger

import (
	"net/http"
	"strings"
)

// RedactedHeaders lists headers whose values never appear in log output.
// Matching is case-insensitive.
var RedactedHeaders = []string{
	"authorization",
	"x-vcloud-authorization",
	"x-vmware-vcloud-access-token",
}

const redactedValue = "[REDACTED]"

// RedactHeaders returns a copy of h with sensitive header values replaced.
// The input is never modified.
func RedactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for name, values := range h {
		if isRedacted(name) {
			out[name] = []string{redactedValue}
			continue
		}
		copied := make([]string, len(values))
		copy(copied, values)
		out[name] = copied
	}
	return out
}

// RedactHeaderValue returns the value to log for a single header.
func RedactHeaderValue(name, value string) string {
	if isRedacted(name) {
		return redactedValue
	}
	return value
}

func isRedacted(name string) bool {
	lower := strings.ToLower(name)
	for _, r := range RedactedHeaders {
		if lower == r {
			return true
		}
	}
	return false
}
