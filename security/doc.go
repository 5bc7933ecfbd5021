// Package security provides TLS configuration for the vcd client library.
//
// Cloud Director installations frequently run with private CAs or, in lab
// environments, self-signed certificates. TLSConfig covers both: a CA file
// for verification, optional client certificates for mTLS, and a SkipVerify
// escape hatch equivalent to disabling certificate checks entirely.
//
//	cfg := security.TLSConfig{
//	    CAFile: "/path/to/ca.pem",
//	}
//
//	tlsConfig, err := cfg.Build()
package security
