package diagnostic

// Result is one report re-expressed under internal codes.
type Result struct {
	RunID       string         `json:"run_id"`
	Source      string         `json:"source,omitempty"`
	ToolVersion string         `json:"tool_version,omitempty"`
	Policy      UnmappedPolicy `json:"unmapped_policy"`
	Diagnostics []Diagnostic   `json:"diagnostics"`
	Unmapped    []string       `json:"unmapped,omitempty"`
	Suppressed  int            `json:"suppressed"`
}

// Total returns the number of findings in the source report, suppressed ones included.
func (r *Result) Total() int {
	return len(r.Diagnostics) + r.Suppressed
}

// MappedCount returns the number of diagnostics carrying an internal code.
func (r *Result) MappedCount() int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Mapped {
			n++
		}
	}
	return n
}

// HasUnmapped returns true if any rule id lacked a code.
func (r *Result) HasUnmapped() bool {
	return len(r.Unmapped) > 0
}

// CountByCode groups diagnostics by their display code.
func (r *Result) CountByCode() map[string]int {
	counts := make(map[string]int)
	for _, d := range r.Diagnostics {
		counts[d.DisplayCode()]++
	}
	return counts
}
