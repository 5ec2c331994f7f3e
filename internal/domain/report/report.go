// Package report models one cppcheck analysis run as an immutable tree of findings.
package report

// Report is the parsed output of one analysis run.
// Findings keep the order the analyzer emitted them in.
type Report struct {
	formatVersion string
	toolVersion   string
	findings      []Finding
}

// ReportOption is a functional option for creating reports.
type ReportOption func(*Report)

// WithFormatVersion records the report schema version.
func WithFormatVersion(v string) ReportOption {
	return func(r *Report) { r.formatVersion = v }
}

// WithToolVersion records the analyzer version that produced the report.
func WithToolVersion(v string) ReportOption {
	return func(r *Report) { r.toolVersion = v }
}

// NewReport creates a report over the given findings.
func NewReport(findings []Finding, opts ...ReportOption) *Report {
	r := &Report{
		findings: append([]Finding(nil), findings...),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Findings returns a copy of the findings in report order.
func (r *Report) Findings() []Finding {
	return append([]Finding(nil), r.findings...)
}

// Len returns the number of findings.
func (r *Report) Len() int { return len(r.findings) }

// FormatVersion returns the report schema version, empty if not declared.
func (r *Report) FormatVersion() string { return r.formatVersion }

// ToolVersion returns the analyzer version, empty if not declared.
func (r *Report) ToolVersion() string { return r.toolVersion }

// RuleIDs returns the distinct rule ids in first-seen order.
func (r *Report) RuleIDs() []string {
	seen := make(map[string]struct{}, len(r.findings))
	ids := make([]string, 0, len(r.findings))
	for _, f := range r.findings {
		if _, ok := seen[f.ruleID]; ok {
			continue
		}
		seen[f.ruleID] = struct{}{}
		ids = append(ids, f.ruleID)
	}
	return ids
}
