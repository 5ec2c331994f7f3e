// Package diagnostic holds findings re-expressed under internal diagnostic codes.
package diagnostic

import (
	"github.com/felixgeelhaar/cxxcodes/internal/domain/report"
)

// Diagnostic is a finding paired with its internal code.
// Code is empty when the rule id is unmapped; RuleID always carries the raw id.
type Diagnostic struct {
	Code           string            `json:"code,omitempty"`
	RuleID         string            `json:"rule_id"`
	Mapped         bool              `json:"mapped"`
	Severity       string            `json:"severity"`
	Message        string            `json:"message"`
	Detail         string            `json:"detail,omitempty"`
	CWE            string            `json:"cwe,omitempty"`
	SourceFileHint string            `json:"source_file_hint,omitempty"`
	Symbol         string            `json:"symbol,omitempty"`
	Locations      []report.Location `json:"locations,omitempty"`
}

// DisplayCode returns the internal code, or the raw rule id when unmapped.
func (d Diagnostic) DisplayCode() string {
	if d.Mapped {
		return d.Code
	}
	return d.RuleID
}

// Primary returns the first location, if any.
func (d Diagnostic) Primary() (report.Location, bool) {
	if len(d.Locations) == 0 {
		return report.Location{}, false
	}
	return d.Locations[0], true
}
