package config

import (
	"github.com/felixgeelhaar/cxxcodes/internal/application/ports"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagnostic"
	"github.com/felixgeelhaar/cxxcodes/internal/infrastructure/logging"
)

// Config represents the complete cxxcodes configuration.
type Config struct {
	Version  string         `yaml:"version" json:"version"`
	Output   OutputConfig   `yaml:"output" json:"output"`
	Unmapped UnmappedConfig `yaml:"unmapped" json:"unmapped"`
	Log      LogConfig      `yaml:"log" json:"log"`
	Metrics  MetricsConfig  `yaml:"metrics" json:"metrics"`
	MCP      MCPConfig      `yaml:"mcp" json:"mcp"`
}

// OutputConfig defines output settings.
type OutputConfig struct {
	Format    string `yaml:"format" json:"format"`       // console, json
	Verbosity string `yaml:"verbosity" json:"verbosity"` // quiet, normal, verbose
	Color     bool   `yaml:"color" json:"color"`
}

// UnmappedConfig decides what happens to rule ids without a code.
type UnmappedConfig struct {
	Policy string `yaml:"policy" json:"policy"` // surface, suppress, fail
}

// LogConfig defines diagnostic logging.
type LogConfig struct {
	Level       string `yaml:"level" json:"level"` // debug, info, warn, error
	Development bool   `yaml:"development" json:"development"`
}

// MetricsConfig defines metrics export.
type MetricsConfig struct {
	// Textfile is written after each run when set.
	Textfile string `yaml:"textfile" json:"textfile"`
}

// MCPConfig defines MCP server settings for output limits.
type MCPConfig struct {
	MaxDiagnostics int `yaml:"max_diagnostics" json:"max_diagnostics"` // 0 = default, -1 = unlimited
}

// DefaultMaxDiagnostics caps MCP report responses unless configured.
const DefaultMaxDiagnostics = 200

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Output: OutputConfig{
			Format:    "console",
			Verbosity: "normal",
			Color:     true,
		},
		Unmapped: UnmappedConfig{
			Policy: string(diagnostic.PolicySurface),
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// GetOutputFormat returns the output format as a ports.OutputFormat.
func (c *Config) GetOutputFormat() ports.OutputFormat {
	if c.Output.Format == string(ports.OutputFormatJSON) {
		return ports.OutputFormatJSON
	}
	return ports.OutputFormatConsole
}

// GetVerbosity returns the verbosity as a ports.Verbosity.
func (c *Config) GetVerbosity() ports.Verbosity {
	return ports.ParseVerbosity(c.Output.Verbosity)
}

// ToOutputConfig converts output settings for the writer factory.
func (c *Config) ToOutputConfig() ports.OutputConfig {
	return ports.OutputConfig{
		Format:    c.GetOutputFormat(),
		Verbosity: c.GetVerbosity(),
		Color:     c.Output.Color,
	}
}

// GetUnmappedPolicy returns the configured policy. Validate guarantees it parses.
func (c *Config) GetUnmappedPolicy() diagnostic.UnmappedPolicy {
	p, err := diagnostic.ParseUnmappedPolicy(c.Unmapped.Policy)
	if err != nil {
		return diagnostic.PolicySurface
	}
	return p
}

// ToLoggingOptions converts log settings for the logger.
func (c *Config) ToLoggingOptions() logging.Options {
	return logging.Options{
		Level:       c.Log.Level,
		Development: c.Log.Development,
	}
}

// GetMaxDiagnostics returns the MCP response cap; 0 means unlimited.
func (c *Config) GetMaxDiagnostics() int {
	switch {
	case c.MCP.MaxDiagnostics == 0:
		return DefaultMaxDiagnostics
	case c.MCP.MaxDiagnostics < 0:
		return 0
	default:
		return c.MCP.MaxDiagnostics
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() []error {
	var errs []error

	if c.Version == "" {
		errs = append(errs, &ValidationError{Field: "version", Message: "version is required"})
	}

	if _, err := ports.ParseOutputFormat(c.Output.Format); err != nil {
		errs = append(errs, &ValidationError{
			Field:   "output.format",
			Message: "must be one of: console, json",
		})
	}

	validVerbosity := map[string]bool{"quiet": true, "normal": true, "verbose": true}
	if c.Output.Verbosity != "" && !validVerbosity[c.Output.Verbosity] {
		errs = append(errs, &ValidationError{
			Field:   "output.verbosity",
			Message: "must be one of: quiet, normal, verbose",
		})
	}

	if _, err := diagnostic.ParseUnmappedPolicy(c.Unmapped.Policy); err != nil {
		errs = append(errs, &ValidationError{
			Field:   "unmapped.policy",
			Message: "must be one of: surface, suppress, fail",
		})
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, &ValidationError{
			Field:   "log.level",
			Message: "must be one of: debug, info, warn, error",
		})
	}

	if c.MCP.MaxDiagnostics < -1 {
		errs = append(errs, &ValidationError{
			Field:   "mcp.max_diagnostics",
			Message: "must be -1, 0 or positive",
		})
	}

	return errs
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
