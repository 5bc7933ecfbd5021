// Package logger provides structured logging for the vcd client library
// using zerolog.
//
// It supports JSON and console output formats, level configuration, and
// component-scoped child loggers with structured fields. Clients built
// without a logger use Nop, so the library is silent by default.
//
// # Usage
//
//	log := logger.NewDefault("vcd")
//	log.Info("session established", logger.Fields("org", org, "user", user))
//
// Header values on the redaction list (Authorization and the vCloud token
// headers) must pass through RedactHeaders before being logged.
package logger
