package config

import (
	"testing"

	"github.com/felixgeelhaar/cxxcodes/internal/application/ports"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagnostic"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, "console", cfg.Output.Format)
	assert.Equal(t, "normal", cfg.Output.Verbosity)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, "surface", cfg.Unmapped.Policy)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.Metrics.Textfile)
	assert.Empty(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"missing version", func(c *Config) { c.Version = "" }, "version"},
		{"bad format", func(c *Config) { c.Output.Format = "sarif" }, "output.format"},
		{"bad verbosity", func(c *Config) { c.Output.Verbosity = "debug" }, "output.verbosity"},
		{"bad policy", func(c *Config) { c.Unmapped.Policy = "ignore" }, "unmapped.policy"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad max diagnostics", func(c *Config) { c.MCP.MaxDiagnostics = -2 }, "mcp.max_diagnostics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			errs := cfg.Validate()

			if assert.Len(t, errs, 1) {
				assert.Equal(t, tt.field, errs[0].(*ValidationError).Field)
			}
		})
	}
}

func TestConfig_Validate_EmptyValuesAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Format = ""
	cfg.Output.Verbosity = ""
	cfg.Unmapped.Policy = ""
	cfg.Log.Level = ""

	assert.Empty(t, cfg.Validate())
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "unmapped.policy", Message: "must be one of: surface, suppress, fail"}

	assert.Equal(t, "unmapped.policy: must be one of: surface, suppress, fail", err.Error())
}

func TestConfig_GetOutputFormat(t *testing.T) {
	tests := []struct {
		format   string
		expected ports.OutputFormat
	}{
		{"console", ports.OutputFormatConsole},
		{"json", ports.OutputFormatJSON},
		{"", ports.OutputFormatConsole},
		{"unknown", ports.OutputFormatConsole},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Output.Format = tt.format
			assert.Equal(t, tt.expected, cfg.GetOutputFormat())
		})
	}
}

func TestConfig_GetVerbosity(t *testing.T) {
	tests := []struct {
		verbosity string
		expected  ports.Verbosity
	}{
		{"quiet", ports.VerbosityQuiet},
		{"normal", ports.VerbosityNormal},
		{"verbose", ports.VerbosityVerbose},
		{"", ports.VerbosityNormal},
	}

	for _, tt := range tests {
		t.Run(tt.verbosity, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Output.Verbosity = tt.verbosity
			assert.Equal(t, tt.expected, cfg.GetVerbosity())
		})
	}
}

func TestConfig_ToOutputConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Format = "json"
	cfg.Output.Color = false

	out := cfg.ToOutputConfig()

	assert.Equal(t, ports.OutputConfig{
		Format:    ports.OutputFormatJSON,
		Verbosity: ports.VerbosityNormal,
		Color:     false,
	}, out)
}

func TestConfig_GetUnmappedPolicy(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, diagnostic.PolicySurface, cfg.GetUnmappedPolicy())

	cfg.Unmapped.Policy = "Fail"
	assert.Equal(t, diagnostic.PolicyFail, cfg.GetUnmappedPolicy())

	cfg.Unmapped.Policy = "bogus"
	assert.Equal(t, diagnostic.PolicySurface, cfg.GetUnmappedPolicy())
}

func TestConfig_ToLoggingOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "debug"
	cfg.Log.Development = true

	opts := cfg.ToLoggingOptions()

	assert.Equal(t, "debug", opts.Level)
	assert.True(t, opts.Development)
}

func TestConfig_GetMaxDiagnostics(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultMaxDiagnostics, cfg.GetMaxDiagnostics())

	cfg.MCP.MaxDiagnostics = -1
	assert.Equal(t, 0, cfg.GetMaxDiagnostics())

	cfg.MCP.MaxDiagnostics = 10
	assert.Equal(t, 10, cfg.GetMaxDiagnostics())
}
