package writers

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/felixgeelhaar/cxxcodes/internal/application/ports"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagcode"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagnostic"
)

// ConsoleWriter writes human-readable output to the console.
type ConsoleWriter struct {
	out       io.Writer
	err       io.Writer
	color     bool
	verbosity ports.Verbosity

	// Color functions
	red    func(a ...interface{}) string
	green  func(a ...interface{}) string
	yellow func(a ...interface{}) string
	blue   func(a ...interface{}) string
	cyan   func(a ...interface{}) string
	bold   func(a ...interface{}) string
	dim    func(a ...interface{}) string
}

// NewConsoleWriter creates a new console writer.
func NewConsoleWriter(opts ...ConsoleOption) *ConsoleWriter {
	w := &ConsoleWriter{
		out:       os.Stdout,
		err:       os.Stderr,
		color:     true,
		verbosity: ports.VerbosityNormal,
	}

	for _, opt := range opts {
		opt(w)
	}

	w.initColors()
	return w
}

// ConsoleOption configures the console writer.
type ConsoleOption func(*ConsoleWriter)

// WithOutput sets the output writer.
func WithOutput(out io.Writer) ConsoleOption {
	return func(w *ConsoleWriter) {
		w.out = out
	}
}

// WithErrorOutput sets the error output writer.
func WithErrorOutput(err io.Writer) ConsoleOption {
	return func(w *ConsoleWriter) {
		w.err = err
	}
}

// WithColor enables or disables colored output.
func WithColor(enabled bool) ConsoleOption {
	return func(w *ConsoleWriter) {
		w.color = enabled
	}
}

// WithVerbosity sets the verbosity level.
func WithVerbosity(v ports.Verbosity) ConsoleOption {
	return func(w *ConsoleWriter) {
		w.verbosity = v
	}
}

// initColors initializes color functions based on color setting.
func (w *ConsoleWriter) initColors() {
	if w.color {
		w.red = color.New(color.FgRed).SprintFunc()
		w.green = color.New(color.FgGreen).SprintFunc()
		w.yellow = color.New(color.FgYellow).SprintFunc()
		w.blue = color.New(color.FgBlue).SprintFunc()
		w.cyan = color.New(color.FgCyan).SprintFunc()
		w.bold = color.New(color.Bold).SprintFunc()
		w.dim = color.New(color.Faint).SprintFunc()
	} else {
		noColor := func(a ...interface{}) string { return fmt.Sprint(a...) }
		w.red = noColor
		w.green = noColor
		w.yellow = noColor
		w.blue = noColor
		w.cyan = noColor
		w.bold = noColor
		w.dim = noColor
	}
}

// SetColor enables or disables colored output.
func (w *ConsoleWriter) SetColor(enabled bool) {
	w.color = enabled
	w.initColors()
}

// SetVerbosity sets the output detail level.
func (w *ConsoleWriter) SetVerbosity(v ports.Verbosity) {
	w.verbosity = v
}

// WriteResult writes diagnostics one per line, followed by a summary.
//
//	a.c:4:5: error CXX-W3551 missing return [missingReturn]
func (w *ConsoleWriter) WriteResult(r *diagnostic.Result) error {
	if w.verbosity != ports.VerbosityQuiet {
		for _, d := range r.Diagnostics {
			w.writeDiagnostic(d)
		}
		if len(r.Diagnostics) > 0 {
			fmt.Fprintln(w.out)
		}
	}

	w.writeSummary(r)
	return nil
}

// writeDiagnostic writes a single diagnostic.
func (w *ConsoleWriter) writeDiagnostic(d diagnostic.Diagnostic) {
	where := "<no location>"
	if loc, ok := d.Primary(); ok {
		where = loc.String()
	}

	code := w.cyan(d.Code)
	if !d.Mapped {
		code = w.yellow(d.RuleID)
	}

	fmt.Fprintf(w.out, "%s: %s %s %s", w.bold(where), w.severityString(d.Severity), code, d.Message)
	if d.Mapped {
		fmt.Fprintf(w.out, " %s", w.dim("["+d.RuleID+"]"))
	}
	fmt.Fprintln(w.out)

	if w.verbosity != ports.VerbosityVerbose {
		return
	}
	if d.Detail != "" {
		fmt.Fprintf(w.out, "  %s %s\n", w.dim("Detail:"), d.Detail)
	}
	if d.CWE != "" {
		fmt.Fprintf(w.out, "  %s CWE-%s\n", w.dim("CWE:"), d.CWE)
	}
	if d.Symbol != "" {
		fmt.Fprintf(w.out, "  %s %s\n", w.dim("Symbol:"), d.Symbol)
	}
	if len(d.Locations) > 1 {
		for _, loc := range d.Locations[1:] {
			fmt.Fprintf(w.out, "  %s %s\n", w.dim("Also:"), loc.String())
		}
	}
}

// writeSummary writes the run summary.
func (w *ConsoleWriter) writeSummary(r *diagnostic.Result) {
	fmt.Fprintf(w.out, "%s\n", w.bold("Summary"))
	fmt.Fprintf(w.out, "%s\n", strings.Repeat("-", 40))
	fmt.Fprintf(w.out, "Findings: %d (mapped: %s, unmapped: %s, suppressed: %d)\n",
		r.Total(),
		w.green(r.MappedCount()),
		w.unmappedCount(len(r.Diagnostics)-r.MappedCount()),
		r.Suppressed)

	if w.verbosity == ports.VerbosityVerbose {
		fmt.Fprintf(w.out, "Run ID: %s\n", r.RunID)
		if r.Source != "" {
			fmt.Fprintf(w.out, "Source: %s\n", r.Source)
		}
		if r.ToolVersion != "" {
			fmt.Fprintf(w.out, "Analyzer: cppcheck %s\n", r.ToolVersion)
		}
		fmt.Fprintf(w.out, "Unmapped policy: %s\n", r.Policy)

		counts := r.CountByCode()
		codes := make([]string, 0, len(counts))
		for c := range counts {
			codes = append(codes, c)
		}
		sort.Strings(codes)
		for _, c := range codes {
			fmt.Fprintf(w.out, "  %-28s %d\n", c, counts[c])
		}
	}

	if r.HasUnmapped() {
		fmt.Fprintf(w.out, "%s %s\n", w.yellow("Unmapped rule ids:"), strings.Join(r.Unmapped, ", "))
	}
}

func (w *ConsoleWriter) unmappedCount(n int) string {
	if n > 0 {
		return w.yellow(n)
	}
	return fmt.Sprint(n)
}

// WriteLookups writes one line per rule id.
func (w *ConsoleWriter) WriteLookups(results []ports.LookupResult) error {
	for _, r := range results {
		if r.Mapped {
			fmt.Fprintf(w.out, "%s\t%s\n", r.RuleID, w.green(r.Code))
		} else {
			fmt.Fprintf(w.out, "%s\t%s\n", r.RuleID, w.yellow("(unmapped)"))
		}
	}
	return nil
}

// WriteCodes writes the code table.
func (w *ConsoleWriter) WriteCodes(entries []diagcode.Entry) error {
	if w.verbosity != ports.VerbosityQuiet {
		fmt.Fprintf(w.out, "%s\n", w.bold(fmt.Sprintf("%-12s %s", "CODE", "RULE ID")))
	}
	for _, e := range entries {
		fmt.Fprintf(w.out, "%s %s\n", w.cyan(fmt.Sprintf("%-12s", e.Code)), e.RuleID)
	}
	if w.verbosity != ports.VerbosityQuiet {
		fmt.Fprintf(w.out, "%s\n", w.dim(fmt.Sprintf("%d codes", len(entries))))
	}
	return nil
}

// WriteError writes an error message.
func (w *ConsoleWriter) WriteError(err error) error {
	fmt.Fprintf(w.err, "%s %s\n", w.red("ERROR:"), err.Error())
	return nil
}

// Flush ensures all output is written.
func (w *ConsoleWriter) Flush() error {
	return nil
}

// severityString returns a colored severity string. Severities are
// free-form; the common cppcheck ones get a color.
func (w *ConsoleWriter) severityString(sev string) string {
	switch sev {
	case "error":
		return w.red(sev)
	case "warning":
		return w.yellow(sev)
	case "style", "performance", "portability":
		return w.blue(sev)
	default:
		return w.dim(sev)
	}
}

// Ensure ConsoleWriter implements the interface.
var _ ports.ResultWriter = (*ConsoleWriter)(nil)
