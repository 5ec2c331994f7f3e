package writers

import (
	"fmt"
	"io"
	"os"

	"github.com/felixgeelhaar/cxxcodes/internal/application/ports"
	"github.com/felixgeelhaar/cxxcodes/pkg/pathutil"
)

// Factory creates writers based on configuration.
type Factory struct {
	out io.Writer
	err io.Writer
}

// NewFactory creates a new writer factory writing to stdout and stderr.
func NewFactory() *Factory {
	return &Factory{out: os.Stdout, err: os.Stderr}
}

// NewFactoryWithOutput creates a factory writing to the given streams.
func NewFactoryWithOutput(out, err io.Writer) *Factory {
	return &Factory{out: out, err: err}
}

// Create returns a writer for the configured format.
func (f *Factory) Create(config ports.OutputConfig) (ports.ResultWriter, error) {
	switch config.Format {
	case ports.OutputFormatConsole, "":
		return f.CreateConsole(config), nil
	case ports.OutputFormatJSON:
		return f.CreateJSON(f.out, true), nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", config.Format)
	}
}

// CreateConsole returns a console writer.
func (f *Factory) CreateConsole(config ports.OutputConfig) *ConsoleWriter {
	return NewConsoleWriter(
		WithOutput(f.out),
		WithErrorOutput(f.err),
		WithColor(config.Color),
		WithVerbosity(config.Verbosity),
	)
}

// CreateJSON returns a JSON writer.
func (f *Factory) CreateJSON(w io.Writer, pretty bool) *JSONWriter {
	return NewJSONWriter(
		WithJSONOutput(w),
		WithPrettyPrint(pretty),
	)
}

// CreateToFile creates a writer that outputs to a file. The caller closes it.
func (f *Factory) CreateToFile(path string, config ports.OutputConfig) (ports.ResultWriter, io.Closer, error) {
	// Validate path to prevent path traversal attacks
	cleanPath, err := pathutil.ValidatePath(path)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid output path: %w", err)
	}

	switch config.Format {
	case ports.OutputFormatJSON, ports.OutputFormatConsole, "":
	default:
		return nil, nil, fmt.Errorf("unsupported format for file output: %s", config.Format)
	}

	file, err := os.Create(cleanPath) // #nosec G304 - path is validated above
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}

	if config.Format == ports.OutputFormatJSON {
		return NewJSONWriter(WithJSONOutput(file), WithPrettyPrint(true)), file, nil
	}
	return NewConsoleWriter(
		WithOutput(file),
		WithErrorOutput(f.err),
		WithColor(false), // No colors in file output
		WithVerbosity(config.Verbosity),
	), file, nil
}

// Ensure Factory implements the interface.
var _ ports.WriterFactory = (*Factory)(nil)
