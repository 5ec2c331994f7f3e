package ports

import (
	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagnostic"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/report"
)

// EngineID identifies the analyzer whose report is being processed.
type EngineID string

// Supported engines.
const (
	EngineCppcheck EngineID = "cppcheck"
)

// ReportParser turns the raw text of one analyzer report into a report.
// Implementations fail with report.ErrMalformedReport and never return partial results.
type ReportParser interface {
	Parse(data []byte) (*report.Report, error)
}

// RuleNormalizer maps an analyzer rule id to an internal diagnostic code.
// The second result is false when the rule id is unmapped.
type RuleNormalizer interface {
	Normalize(ruleID string) (string, bool)
}

// FindingNormalizer converts one parsed finding into a diagnostic.
type FindingNormalizer interface {
	Normalize(f report.Finding) diagnostic.Diagnostic
}

// LookupResult is the outcome of normalizing a single rule id.
type LookupResult struct {
	RuleID string `json:"rule_id"`
	Code   string `json:"code,omitempty"`
	Mapped bool   `json:"mapped"`
}

// Lookup normalizes each rule id through n, keeping input order.
func Lookup(n RuleNormalizer, ruleIDs ...string) []LookupResult {
	results := make([]LookupResult, 0, len(ruleIDs))
	for _, id := range ruleIDs {
		code, ok := n.Normalize(id)
		results = append(results, LookupResult{RuleID: id, Code: code, Mapped: ok})
	}
	return results
}

// Engine bundles everything needed to process one analyzer's reports.
type Engine interface {
	// ID returns the engine identifier.
	ID() EngineID

	// Parse converts raw report text to a report.
	Parse(data []byte) (*report.Report, error)

	// Normalize converts one finding to a diagnostic.
	Normalize(f report.Finding) diagnostic.Diagnostic

	// RuleFamily groups rule ids for metrics.
	RuleFamily(ruleID string) string
}

// EngineRegistry resolves engines by id.
type EngineRegistry interface {
	Get(id EngineID) (Engine, bool)
	IDs() []EngineID
}
