package config

import (
	"fmt"

	"github.com/kbukum/vcd/logger"
)

// BaseConfig contains the essential fields an application built on the
// client needs. Projects extend it by embedding:
//
//	type AppConfig struct {
//	    config.BaseConfig `yaml:",inline" mapstructure:",squash"`
//	    VCD client.Config `yaml:"vcd" mapstructure:"vcd"`
//	}
type BaseConfig struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Version     string        `yaml:"version" mapstructure:"version"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
}

// GetBaseConfig returns the base config. When embedded in a larger config
// struct, this method is promoted so the embedding struct can be handled
// generically.
func (c *BaseConfig) GetBaseConfig() *BaseConfig {
	return c
}

// ApplyDefaults applies default values to the base configuration.
// Override this in embedding structs and call c.BaseConfig.ApplyDefaults() first.
func (c *BaseConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the base configuration fields.
// Override this in embedding structs and call c.BaseConfig.Validate() first.
func (c *BaseConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("config.name is required")
	}
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config.environment must be one of [development, staging, production] (got: %s)", c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
