package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/vcd/logger"
)

// envPrefix scopes automatic environment binding. Only variables with this
// prefix are considered, e.g. VCD_HOST or VCD_TRANSPORT_TIMEOUT.
const envPrefix = "VCD_"

// envConfigFile names an environment variable that points at the config
// file directly, taking precedence over the search paths.
const envConfigFile = "VCD_CONFIG"

// FileSystem abstracts the file probing and .env loading that the
// resolver performs, so tests can substitute an in-memory layout.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem is the FileSystem backed by the OS.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// Resolver handles finding and resolving config and env files.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles is the outcome of file resolution. Empty fields mean
// nothing was found.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles finds config and env files for an application. Explicit
// paths win, then the VCD_CONFIG environment variable, then the search
// locations.
func (cr *Resolver) ResolveFiles(appName string, opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}

	if resolved.ConfigFile == "" {
		resolved.ConfigFile = os.Getenv(envConfigFile)
	}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = cr.findConfigFile(appName)
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = cr.findEnvFile(appName)
	}

	return resolved
}

// findConfigFile searches the working directory, its config/ subdirectory,
// and the user's ~/.vcd directory for a YAML config file.
func (cr *Resolver) findConfigFile(appName string) string {
	searchPaths := []string{
		fmt.Sprintf("./%s.yml", appName),
		"./config.yml",
		fmt.Sprintf("./config/%s.yml", appName),
		"./config/config.yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths,
			filepath.Join(home, ".vcd", appName+".yml"),
			filepath.Join(home, ".vcd", "config.yml"),
		)
	}

	for _, path := range searchPaths {
		if cr.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}

// findEnvFile searches for .env files next to the working directory.
// An app-specific .env.<name> wins over a plain .env.
func (cr *Resolver) findEnvFile(appName string) string {
	searchPaths := []string{
		fmt.Sprintf("./.env.%s", appName),
		"./.env",
		"./config/.env",
	}

	for _, path := range searchPaths {
		if cr.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}

// LoaderConfig collects the loader options before resolution runs.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // explicit config file path, skips the search
	EnvFile    string // explicit .env file path, skips the search
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load loads configuration for an application into the provided cfg struct.
// It resolves a YAML config file and an optional .env file, binds
// VCD_-prefixed environment variables, and unmarshals the result into cfg.
// Environment variables override file values.
func Load(appName string, cfg interface{}, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	files := resolver.ResolveFiles(appName, lc)

	return loadFromResolvedFiles(appName, cfg, files, lc.FileSystem)
}

// loadFromResolvedFiles layers the YAML file, the process environment, and
// the .env overlay, then unmarshals into cfg. Unreadable files are logged
// and skipped rather than failing the load.
func loadFromResolvedFiles(appName string, cfg interface{}, files ResolvedFiles, fs FileSystem) error {
	v := viper.New()

	if files.ConfigFile != "" && fs.Exists(files.ConfigFile) {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			logger.Warn("skipping unreadable config file",
				logger.Fields("path", files.ConfigFile, logger.FieldError, err.Error()))
		}
	}

	v.AutomaticEnv()
	autoBindEnvVars(v)

	if files.EnvFile != "" && fs.Exists(files.EnvFile) {
		if err := fs.LoadEnv(files.EnvFile); err != nil {
			logger.Warn("skipping unreadable .env file",
				logger.Fields("path", files.EnvFile, logger.FieldError, err.Error()))
		} else {
			// Variables from the .env file are now in the process
			// environment and need their own bindings.
			autoBindEnvVars(v)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config for %s: %w", appName, err)
	}

	return nil
}

// autoBindEnvVars binds every VCD_-prefixed environment variable to Viper
// under each nested-key spelling it could correspond to.
func autoBindEnvVars(v *viper.Viper) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}

		key, value := pair[0], pair[1]
		if !strings.HasPrefix(key, envPrefix) {
			continue
		}

		for _, variant := range generateEnvKeyVariants(strings.TrimPrefix(key, envPrefix)) {
			v.Set(variant, value)
		}
	}
}

// generateEnvKeyVariants maps an UPPER_SNAKE environment key (prefix already
// stripped) onto the Viper keys it may address. An underscore can be either
// a nesting separator or part of a field name, so every split is produced:
//
//	HOST              -> [host]
//	TRANSPORT_TIMEOUT -> [transport_timeout, transport.timeout]
//	VCD_LOG_BODIES    -> [vcd_log_bodies, vcd.log_bodies, vcd.log.bodies]
func generateEnvKeyVariants(envKey string) []string {
	key := strings.ToLower(envKey)
	parts := strings.Split(key, "_")

	variants := []string{key}
	for i := 1; i < len(parts); i++ {
		variants = append(variants, strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"))
	}
	return variants
}
