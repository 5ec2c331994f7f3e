package cppcheck

import (
	"strings"

	"github.com/felixgeelhaar/cxxcodes/internal/application/ports"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagcode"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagnostic"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/report"
)

// Rule families reported by cppcheck.
const (
	FamilyMISRA   = "misra-c2012"
	FamilyChecker = "cppcheck"
)

// Normalizer converts cppcheck findings to diagnostics.
type Normalizer struct {
	codes ports.RuleNormalizer
}

// NewNormalizer creates a normalizer backed by the built-in code table.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		codes: diagcode.NewNormalizer(),
	}
}

// NewNormalizerWithCodes creates a normalizer with a custom rule id lookup.
func NewNormalizerWithCodes(codes ports.RuleNormalizer) *Normalizer {
	return &Normalizer{
		codes: codes,
	}
}

// Normalize converts one finding. The severity is copied verbatim.
func (n *Normalizer) Normalize(f report.Finding) diagnostic.Diagnostic {
	code, mapped := n.codes.Normalize(f.RuleID())

	d := diagnostic.Diagnostic{
		Code:      code,
		RuleID:    f.RuleID(),
		Mapped:    mapped,
		Severity:  f.Severity(),
		Message:   f.Message(),
		Locations: f.Locations(),
	}

	// verbose duplicates msg for most checkers
	if detail := f.DetailedMessage(); detail != f.Message() {
		d.Detail = detail
	}
	if cwe, ok := f.WeaknessReference(); ok {
		d.CWE = cwe
	}
	if hint, ok := f.SourceFileHint(); ok {
		d.SourceFileHint = hint
	}
	if sym, ok := f.Symbol(); ok {
		d.Symbol = sym
	}

	return d
}

// RuleFamily returns the family a rule id belongs to.
func RuleFamily(ruleID string) string {
	if strings.HasPrefix(ruleID, FamilyMISRA+"-") {
		return FamilyMISRA
	}
	return FamilyChecker
}

// Ensure Normalizer satisfies the use case port.
var _ ports.FindingNormalizer = (*Normalizer)(nil)
