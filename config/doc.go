// Package config provides configuration loading for applications built on
// the vCloud client.
//
// It uses Viper to load configuration from files and environment variables,
// with an optional .env overlay loaded through godotenv.
//
// # Usage
//
//	type AppConfig struct {
//	    config.BaseConfig `yaml:",inline" mapstructure:",squash"`
//	    VCD client.Config `yaml:"vcd" mapstructure:"vcd"`
//	}
//
//	var cfg AppConfig
//	err := config.Load("my-app", &cfg)
//
// Environment variables override file values using the VCD_ prefix with
// underscore-separated paths (e.g., VCD_TRANSPORT_TIMEOUT).
package config
