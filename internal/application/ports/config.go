package ports

import "fmt"

// OutputConfig holds output settings for writers.
type OutputConfig struct {
	Format    OutputFormat
	Verbosity Verbosity
	Color     bool
}

// OutputFormat specifies the output format.
type OutputFormat string

// Available output formats.
const (
	OutputFormatConsole OutputFormat = "console"
	OutputFormatJSON    OutputFormat = "json"
)

// ParseOutputFormat converts a format name to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case OutputFormatConsole, "":
		return OutputFormatConsole, nil
	case OutputFormatJSON:
		return OutputFormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format: %s", s)
	}
}

// Verbosity controls output detail level.
type Verbosity string

// Available verbosity levels.
const (
	VerbosityQuiet   Verbosity = "quiet"
	VerbosityNormal  Verbosity = "normal"
	VerbosityVerbose Verbosity = "verbose"
)

// ParseVerbosity converts a verbosity name, defaulting to normal.
func ParseVerbosity(s string) Verbosity {
	switch Verbosity(s) {
	case VerbosityQuiet:
		return VerbosityQuiet
	case VerbosityVerbose:
		return VerbosityVerbose
	default:
		return VerbosityNormal
	}
}

// DefaultOutputConfig returns console output at normal verbosity.
func DefaultOutputConfig() OutputConfig {
	return OutputConfig{
		Format:    OutputFormatConsole,
		Verbosity: VerbosityNormal,
		Color:     true,
	}
}
