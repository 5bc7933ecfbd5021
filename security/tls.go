package security

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// TLSConfig controls how the transport verifies the vCloud endpoint.
// The zero value leaves the http.Transport on Go's defaults: system
// roots, verification on.
type TLSConfig struct {
	// SkipVerify disables server certificate verification. Installations
	// still running self-signed certificates set this; production
	// deployments should install a CA instead.
	SkipVerify bool `yaml:"skip_verify" mapstructure:"skip_verify"`

	// CAFile points at a PEM bundle that replaces the system roots,
	// for endpoints behind a private CA.
	CAFile string `yaml:"ca_file" mapstructure:"ca_file"`

	// CertFile and KeyFile hold a client certificate pair for endpoints
	// that require mutual TLS. Both must be set together.
	CertFile string `yaml:"cert_file" mapstructure:"cert_file"`
	KeyFile  string `yaml:"key_file" mapstructure:"key_file"`

	// ServerName overrides the name checked against the server
	// certificate, for endpoints reached through an IP or a CNAME.
	ServerName string `yaml:"server_name" mapstructure:"server_name"`

	// MinVersion is the lowest accepted TLS version. Zero means TLS 1.2.
	MinVersion uint16 `yaml:"min_version" mapstructure:"min_version"`
}

// Validate rejects inconsistent settings before any connection is made.
func (c *TLSConfig) Validate() error {
	if c == nil {
		return nil
	}
	if (c.CertFile == "") != (c.KeyFile == "") {
		return fmt.Errorf("tls: cert_file and key_file must be set together")
	}
	return nil
}

// Build renders the configuration as a *tls.Config for an http.Transport.
// A nil or all-zero configuration builds nil so the transport keeps Go's
// default TLS behavior.
func (c *TLSConfig) Build() (*tls.Config, error) {
	if c == nil || c.isZero() {
		return nil, nil
	}

	cfg := &tls.Config{
		InsecureSkipVerify: c.SkipVerify,
		ServerName:         c.ServerName,
		MinVersion:         c.MinVersion,
	}
	if cfg.MinVersion == 0 {
		cfg.MinVersion = tls.VersionTLS12
	}

	if c.CAFile != "" {
		data, err := os.ReadFile(c.CAFile)
		if err != nil {
			return nil, fmt.Errorf("tls: read ca file: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(data) {
			return nil, fmt.Errorf("tls: no certificates found in %s", c.CAFile)
		}
		cfg.RootCAs = pool
	}

	if c.CertFile != "" && c.KeyFile != "" {
		pair, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("tls: load client certificate: %w", err)
		}
		cfg.Certificates = []tls.Certificate{pair}
	}

	return cfg, nil
}

func (c *TLSConfig) isZero() bool {
	return !c.SkipVerify && c.CAFile == "" && c.CertFile == "" &&
		c.ServerName == "" && c.MinVersion == 0
}
