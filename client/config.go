package client

import (
	"strings"

	"github.com/kbukum/vcd/transport"
	"github.com/kbukum/vcd/validation"
)

// Config configures the vCloud client.
type Config struct {
	// Host is the vCloud Director endpoint, e.g. "https://vcd.example.com".
	Host string `yaml:"host" mapstructure:"host" validate:"required,url"`

	// APIVersion pins the API version sent on every request. Leave empty
	// and call NegotiateVersion to adopt the server's highest supported
	// version instead.
	APIVersion string `yaml:"api_version" mapstructure:"api_version"`

	// Transport configures the underlying HTTP transport.
	Transport transport.Config `yaml:"transport" mapstructure:"transport"`

	// LogHeaders enables request/response header logging at debug level.
	// Sensitive header values are redacted.
	LogHeaders bool `yaml:"log_headers" mapstructure:"log_headers"`

	// LogBodies enables request/response body logging at debug level.
	LogBodies bool `yaml:"log_bodies" mapstructure:"log_bodies"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	c.Host = strings.TrimRight(c.Host, "/")
	c.Transport.ApplyDefaults()
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	return c.Transport.Validate()
}
