package transport

import "github.com/kbukum/vcd/security"

// TLSConfig is an alias for the shared security TLS configuration.
// See security.TLSConfig for full documentation.
type TLSConfig = security.TLSConfig
