// Package validation provides input validation for client configuration
// and request parameters.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation
// backs config Validate methods; the programmatic form suits per-call
// parameter checks.
//
// # Struct Tag Validation
//
//	type Config struct {
//	    Host string `validate:"required,url"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("type", typ).Min("page", page, 1)
//	if err := v.Validate(); err != nil { ... }
package validation
