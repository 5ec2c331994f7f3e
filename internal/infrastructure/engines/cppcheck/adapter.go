package cppcheck

import (
	"github.com/felixgeelhaar/cxxcodes/internal/application/ports"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagnostic"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/report"
)

// Adapter exposes the cppcheck parser and normalizer as one engine.
type Adapter struct {
	parser     *Parser
	normalizer *Normalizer
}

// NewAdapter creates a new cppcheck adapter using the built-in code table.
func NewAdapter() *Adapter {
	return &Adapter{
		parser:     NewParser(),
		normalizer: NewNormalizer(),
	}
}

// NewAdapterWithCodes creates an adapter with a custom rule id lookup.
func NewAdapterWithCodes(codes ports.RuleNormalizer) *Adapter {
	return &Adapter{
		parser:     NewParser(),
		normalizer: NewNormalizerWithCodes(codes),
	}
}

// ID returns the engine identifier.
func (a *Adapter) ID() ports.EngineID {
	return ports.EngineCppcheck
}

// Parse converts a cppcheck XML document to a report.
func (a *Adapter) Parse(data []byte) (*report.Report, error) {
	return a.parser.Parse(data)
}

// Normalize converts one finding to a diagnostic.
func (a *Adapter) Normalize(f report.Finding) diagnostic.Diagnostic {
	return a.normalizer.Normalize(f)
}

// RuleFamily returns the family a rule id belongs to.
func (a *Adapter) RuleFamily(ruleID string) string {
	return RuleFamily(ruleID)
}

// Ensure Adapter implements ports.Engine.
var _ ports.Engine = (*Adapter)(nil)
