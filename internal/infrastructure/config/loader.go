package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/felixgeelhaar/cxxcodes/pkg/pathutil"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the default directory for cxxcodes config.
	DefaultConfigDir = ".cxxcodes"

	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
)

// SecondaryConfigFiles are searched, in order, when
// .cxxcodes/config.yaml is absent.
var SecondaryConfigFiles = []string{"cxxcodes.yaml", ".cxxcodes.yaml"}

// Loader reads the first config file found on its search path.
type Loader struct {
	searchPaths []string
}

// NewLoader returns a loader over paths, or over .cxxcodes/config.yaml
// followed by SecondaryConfigFiles when none are given.
func NewLoader(paths ...string) *Loader {
	if len(paths) == 0 {
		paths = append([]string{filepath.Join(DefaultConfigDir, DefaultConfigFile)}, SecondaryConfigFiles...)
	}
	return &Loader{searchPaths: paths}
}

// Find returns the first search path that names a regular file.
func (l *Loader) Find() (string, bool) {
	for _, path := range l.searchPaths {
		if isRegularFile(path) {
			return path, true
		}
	}
	return "", false
}

// Load reads the file picked by Find, falling back to DefaultConfig.
func (l *Loader) Load() (*Config, error) {
	path, ok := l.Find()
	if !ok {
		return DefaultConfig(), nil
	}
	return l.LoadFromFile(path)
}

// LoadFromFile reads and validates one config file.
func (l *Loader) LoadFromFile(path string) (*Config, error) {
	clean, err := pathutil.ValidatePath(path)
	if err != nil {
		return nil, fmt.Errorf("invalid config path: %w", err)
	}

	data, err := os.ReadFile(clean) // #nosec G304 - validated
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", clean, err)
	}
	return l.LoadFromBytes(data)
}

// LoadFromBytes decodes YAML over DefaultConfig, so omitted keys keep their
// defaults.
func (l *Loader) LoadFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigErrors{Errors: errs}
	}
	return cfg, nil
}

// LoadWithOverrides is Load followed by the CLI overrides.
func (l *Loader) LoadWithOverrides(overrides *CLIOverrides) (*Config, error) {
	return withOverrides(l.Load())(overrides)
}

// LoadFromFileWithOverrides is LoadFromFile followed by the CLI overrides.
func (l *Loader) LoadFromFileWithOverrides(path string, overrides *CLIOverrides) (*Config, error) {
	return withOverrides(l.LoadFromFile(path))(overrides)
}

func withOverrides(cfg *Config, err error) func(*CLIOverrides) (*Config, error) {
	return func(o *CLIOverrides) (*Config, error) {
		if err != nil || o == nil {
			return cfg, err
		}
		return applyOverrides(cfg, o)
	}
}

// CLIOverrides represents command-line configuration overrides.
type CLIOverrides struct {
	// Output settings
	Format    *string
	Verbosity *string
	NoColor   *bool

	// Unmapped rule policy
	Policy *string

	// Logging
	LogLevel *string

	// Metrics textfile
	MetricsTextfile *string
}

// applyOverrides applies CLI overrides to a config.
func applyOverrides(cfg *Config, overrides *CLIOverrides) (*Config, error) {
	if overrides.Format != nil {
		cfg.Output.Format = *overrides.Format
	}
	if overrides.Verbosity != nil {
		cfg.Output.Verbosity = *overrides.Verbosity
	}
	if overrides.NoColor != nil {
		cfg.Output.Color = !*overrides.NoColor
	}
	if overrides.Policy != nil {
		cfg.Unmapped.Policy = *overrides.Policy
	}
	if overrides.LogLevel != nil {
		cfg.Log.Level = *overrides.LogLevel
	}
	if overrides.MetricsTextfile != nil {
		cfg.Metrics.Textfile = *overrides.MetricsTextfile
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigErrors{Errors: errs}
	}
	return cfg, nil
}

// Write marshals cfg to path, creating parent directories.
func Write(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// WriteDefault writes DefaultConfig to path.
func WriteDefault(path string) error {
	return Write(DefaultConfig(), path)
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ConfigErrors wraps multiple configuration errors.
type ConfigErrors struct {
	Errors []error
}

func (e *ConfigErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no configuration errors"
	}
	if len(e.Errors) == 1 {
		return "configuration error: " + e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d configuration errors:", len(e.Errors))
	for _, err := range e.Errors {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Unwrap returns the underlying errors.
func (e *ConfigErrors) Unwrap() []error {
	return e.Errors
}
