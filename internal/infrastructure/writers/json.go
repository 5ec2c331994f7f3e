package writers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/felixgeelhaar/cxxcodes/internal/application/ports"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagcode"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagnostic"
)

// JSONWriter writes JSON-formatted output.
type JSONWriter struct {
	out    io.Writer
	pretty bool
	now    func() time.Time
}

// JSONOption configures the JSON writer.
type JSONOption func(*JSONWriter)

// WithJSONOutput sets the output writer.
func WithJSONOutput(out io.Writer) JSONOption {
	return func(w *JSONWriter) {
		w.out = out
	}
}

// WithPrettyPrint enables pretty-printed JSON.
func WithPrettyPrint(enabled bool) JSONOption {
	return func(w *JSONWriter) {
		w.pretty = enabled
	}
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(opts ...JSONOption) *JSONWriter {
	w := &JSONWriter{
		out:    os.Stdout,
		pretty: false,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// SetOutput sets the output destination.
func (w *JSONWriter) SetOutput(out io.Writer) {
	w.out = out
}

// SetPretty enables or disables pretty-printed JSON.
func (w *JSONWriter) SetPretty(enabled bool) {
	w.pretty = enabled
}

// Close closes any open file handles.
func (w *JSONWriter) Close() error {
	if closer, ok := w.out.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// WriteResult writes the normalized report as JSON.
func (w *JSONWriter) WriteResult(r *diagnostic.Result) error {
	return w.writeJSON(BuildJSONResult(r))
}

// WriteLookups writes lookup results as JSON.
func (w *JSONWriter) WriteLookups(results []ports.LookupResult) error {
	if results == nil {
		results = []ports.LookupResult{}
	}
	return w.writeJSON(JSONLookups{Lookups: results})
}

// WriteCodes writes the code table as JSON.
func (w *JSONWriter) WriteCodes(entries []diagcode.Entry) error {
	if entries == nil {
		entries = []diagcode.Entry{}
	}
	return w.writeJSON(JSONCodes{
		Namespace: diagcode.Namespace,
		Count:     len(entries),
		Codes:     entries,
	})
}

// WriteError writes an error as JSON.
func (w *JSONWriter) WriteError(err error) error {
	return w.writeJSON(JSONError{
		Type:      "error",
		Message:   err.Error(),
		Timestamp: w.now().UTC(),
	})
}

// Flush ensures all output is written.
func (w *JSONWriter) Flush() error {
	if f, ok := w.out.(interface{ Sync() error }); ok {
		return f.Sync()
	}
	return nil
}

// writeJSON marshals and writes data.
func (w *JSONWriter) writeJSON(data interface{}) error {
	var (
		output []byte
		err    error
	)
	if w.pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := fmt.Fprintln(w.out, string(output)); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

// BuildJSONResult converts a result to its JSON document.
func BuildJSONResult(r *diagnostic.Result) JSONResult {
	diags := r.Diagnostics
	if diags == nil {
		diags = []diagnostic.Diagnostic{}
	}
	unmapped := r.Unmapped
	if unmapped == nil {
		unmapped = []string{}
	}
	return JSONResult{
		Version:     "1",
		RunID:       r.RunID,
		Source:      r.Source,
		ToolVersion: r.ToolVersion,
		Policy:      string(r.Policy),
		Diagnostics: diags,
		Summary: JSONSummary{
			Total:      r.Total(),
			Mapped:     r.MappedCount(),
			Unmapped:   len(r.Diagnostics) - r.MappedCount(),
			Suppressed: r.Suppressed,
			ByCode:     r.CountByCode(),
		},
		UnmappedRuleIDs: unmapped,
	}
}

// JSONResult is the top-level JSON document for a normalized report.
type JSONResult struct {
	Version         string                  `json:"version"`
	RunID           string                  `json:"run_id"`
	Source          string                  `json:"source,omitempty"`
	ToolVersion     string                  `json:"tool_version,omitempty"`
	Policy          string                  `json:"unmapped_policy"`
	Diagnostics     []diagnostic.Diagnostic `json:"diagnostics"`
	Summary         JSONSummary             `json:"summary"`
	UnmappedRuleIDs []string                `json:"unmapped_rule_ids"`
}

// JSONSummary is the summary section of the output.
type JSONSummary struct {
	Total      int            `json:"total"`
	Mapped     int            `json:"mapped"`
	Unmapped   int            `json:"unmapped"`
	Suppressed int            `json:"suppressed"`
	ByCode     map[string]int `json:"by_code"`
}

// JSONLookups wraps lookup results.
type JSONLookups struct {
	Lookups []ports.LookupResult `json:"lookups"`
}

// JSONCodes wraps the code table.
type JSONCodes struct {
	Namespace string           `json:"namespace"`
	Count     int              `json:"count"`
	Codes     []diagcode.Entry `json:"codes"`
}

// JSONError represents an error message.
type JSONError struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Ensure JSONWriter implements the interface.
var _ ports.ResultWriter = (*JSONWriter)(nil)
